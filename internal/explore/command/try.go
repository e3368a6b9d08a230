package command

import (
	"strings"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// TryCmd opens the scratch pad seeded with the current frame's value.
type TryCmd struct {
	prefill string
}

func NewTryCmd() *TryCmd { return &TryCmd{} }

func (c *TryCmd) Name() string { return "try" }
func (c *TryCmd) Description() string {
	return "open a scratch pad, optionally pre-filled with an expression"
}

func (c *TryCmd) Parse(args string) error {
	c.prefill = strings.TrimSpace(args)
	return nil
}

func (c *TryCmd) Spawn(ctx Context) (views.View, error) {
	seed := values.Nothing()
	if ctx.HasFrame {
		seed = ctx.Frame
	}
	return views.NewTryView(seed, c.prefill, ctx.Engine, ctx.Cfg), nil
}
