package command

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
)

// HelpCmd opens the command catalog. With an argument it scrolls the catalog
// to that command's entry.
type HelpCmd struct {
	focus string
}

func NewHelpCmd() *HelpCmd { return &HelpCmd{} }

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Description() string { return "show this command catalog" }

func (c *HelpCmd) Parse(args string) error {
	c.focus = strings.TrimSpace(args)
	return nil
}

func (c *HelpCmd) Spawn(ctx Context) (views.View, error) {
	entries := Manual()
	if c.focus != "" && !entryExists(entries, c.focus) {
		return nil, fmt.Errorf("help: unknown command %q", c.focus)
	}
	return views.NewHelpView(entries, c.focus, ctx.Cfg), nil
}

func entryExists(entries []views.HelpEntry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
		for _, a := range e.Aliases {
			if a == name {
				return true
			}
		}
	}
	return false
}
