package command

import (
	"fmt"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/ingest"
)

// TableCmd re-renders the current frame's value as a row-oriented table.
type TableCmd struct{}

func NewTableCmd() *TableCmd { return &TableCmd{} }

func (c *TableCmd) Name() string        { return "table" }
func (c *TableCmd) Description() string { return "render the current value as a table" }

func (c *TableCmd) Parse(args string) error {
	if args != "" {
		return fmt.Errorf("table takes no arguments")
	}
	return nil
}

func (c *TableCmd) Spawn(ctx Context) (views.View, error) {
	if !ctx.HasFrame {
		return nil, fmt.Errorf("table: no value to render")
	}
	// Row orientation even for a single record, unlike the default view.
	table, err := ingest.Collect(ingest.Single(ctx.Frame))
	if err != nil {
		return nil, err
	}
	return views.NewRecordView(table, ctx.Cfg), nil
}
