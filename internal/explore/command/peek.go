package command

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
)

// PeekCmd evaluates an expression against the current frame's value and
// opens the result.
type PeekCmd struct {
	expr string
}

func NewPeekCmd() *PeekCmd { return &PeekCmd{} }

func (c *PeekCmd) Name() string { return "peek" }
func (c *PeekCmd) Description() string {
	return "evaluate an expression against the current frame and open the result"
}

func (c *PeekCmd) Parse(args string) error {
	c.expr = strings.TrimSpace(args)
	if c.expr == "" {
		return fmt.Errorf("peek: an expression is required")
	}
	return nil
}

func (c *PeekCmd) Spawn(ctx Context) (views.View, error) {
	if !ctx.HasFrame {
		return nil, fmt.Errorf("peek: no value to evaluate against")
	}
	result, err := ctx.Engine.Eval(c.expr, ctx.Frame)
	if err != nil {
		return nil, err
	}
	return views.ViewFor(result, ctx.Cfg), nil
}
