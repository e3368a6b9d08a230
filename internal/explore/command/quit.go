package command

import "fmt"

// QuitCmd ends the session. Registered as "quit" with aliases "q" and "q!";
// the pager treats a trailing "!" on the typed token as discard-exit-value.
type QuitCmd struct{}

func NewQuitCmd() *QuitCmd { return &QuitCmd{} }

func (c *QuitCmd) Name() string        { return "quit" }
func (c *QuitCmd) Description() string { return "exit; q! discards the pending exit value" }

func (c *QuitCmd) Parse(args string) error {
	if args != "" {
		return fmt.Errorf("quit takes no arguments")
	}
	return nil
}

func (c *QuitCmd) React() Reaction { return ReactionQuit }
