package ingest

import (
	"github.com/Dicklesworthstone/peek/internal/values"
)

// Table is realized tabular data: column names (possibly empty for untyped
// rows) and row-major cells. All views operate on realized data.
type Table struct {
	Columns []string
	Rows    [][]values.Value
}

// IsEmpty reports whether the table has neither rows nor columns.
func (t Table) IsEmpty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// SimpleValue returns the single simple value the table holds, if any.
func (t Table) SimpleValue() (values.Value, bool) {
	if len(t.Columns) == 0 && len(t.Rows) == 1 && len(t.Rows[0]) == 1 && t.Rows[0][0].IsSimple() {
		return t.Rows[0][0], true
	}
	return values.Nothing(), false
}

// Collect drains a pipeline into a table. Byte pipelines are not collectable
// here; the classifier routes them to the binary view first.
func Collect(p Pipeline) (Table, error) {
	switch p.Kind {
	case PipelineEmpty:
		return Table{}, nil
	case PipelineValue:
		return tableFromValue(p.Value), nil
	case PipelineList:
		items, err := p.List.Drain()
		if err != nil {
			return Table{}, err
		}
		return tableFromItems(items), nil
	case PipelineBytes:
		data, err := DrainBytes(p.Bytes)
		if err != nil {
			return Table{}, err
		}
		return Table{Rows: [][]values.Value{{values.Binary(data)}}}, nil
	default:
		return Table{}, nil
	}
}

func tableFromValue(v values.Value) Table {
	switch v.Kind {
	case values.KindRecord:
		row := make([]values.Value, 0, v.Record.Len())
		for _, key := range v.Record.Keys {
			row = append(row, v.Record.Fields[key])
		}
		return Table{Columns: append([]string(nil), v.Record.Keys...), Rows: [][]values.Value{row}}
	case values.KindList:
		return tableFromItems(v.Items)
	default:
		return Table{Rows: [][]values.Value{{v}}}
	}
}

// tableFromItems builds a table from a realized list. When every item is a
// record the columns are the union of keys in first-seen order and missing
// fields render as nothing; otherwise each item becomes a one-cell row.
func tableFromItems(items []values.Value) Table {
	if len(items) == 0 {
		return Table{}
	}
	allRecords := true
	for _, item := range items {
		if !item.IsRecord() {
			allRecords = false
			break
		}
	}
	if !allRecords {
		rows := make([][]values.Value, 0, len(items))
		for _, item := range items {
			rows = append(rows, []values.Value{item})
		}
		return Table{Rows: rows}
	}

	var columns []string
	seen := make(map[string]bool)
	for _, item := range items {
		for _, key := range item.Record.Keys {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	rows := make([][]values.Value, 0, len(items))
	for _, item := range items {
		row := make([]values.Value, 0, len(columns))
		for _, col := range columns {
			v, ok := item.Record.Get(col)
			if !ok {
				v = values.Nothing()
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Rows: rows}
}

// SeedValue reduces a pipeline to the single value the try view is seeded
// with: nothing, the value itself, a materialized list, or a binary blob.
func SeedValue(p Pipeline) (values.Value, error) {
	switch p.Kind {
	case PipelineEmpty:
		return values.Nothing(), nil
	case PipelineValue:
		return p.Value, nil
	case PipelineList:
		items, err := p.List.Drain()
		if err != nil {
			return values.Nothing(), err
		}
		return values.List(items), nil
	case PipelineBytes:
		data, err := DrainBytes(p.Bytes)
		if err != nil {
			return values.Nothing(), err
		}
		return values.Binary(data), nil
	default:
		return values.Nothing(), nil
	}
}
