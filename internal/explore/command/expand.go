package command

import (
	"fmt"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
)

// ExpandCmd drills into the cell under the current frame's cursor.
type ExpandCmd struct{}

func NewExpandCmd() *ExpandCmd { return &ExpandCmd{} }

func (c *ExpandCmd) Name() string        { return "expand" }
func (c *ExpandCmd) Description() string { return "drill into the cell under the cursor" }

func (c *ExpandCmd) Parse(args string) error {
	if args != "" {
		return fmt.Errorf("expand takes no arguments")
	}
	return nil
}

func (c *ExpandCmd) Spawn(ctx Context) (views.View, error) {
	if !ctx.HasCursor {
		return nil, fmt.Errorf("expand: no cell under the cursor")
	}
	return views.ViewFor(ctx.Cursor, ctx.Cfg), nil
}
