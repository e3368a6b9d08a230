package query

import (
	"fmt"

	"github.com/Dicklesworthstone/peek/internal/values"
)

type getStage struct {
	path []pathStep
}

func (g getStage) apply(v values.Value) (values.Value, error) {
	cur := v
	for _, step := range g.path {
		next, err := follow(cur, step)
		if err != nil {
			return values.Nothing(), err
		}
		cur = next
	}
	return cur, nil
}

// follow resolves one path step. A field step against a list maps over the
// elements, so `users | get name` yields the column of names.
func follow(v values.Value, step pathStep) (values.Value, error) {
	if step.isIdx {
		if v.Kind != values.KindList {
			return values.Nothing(), fmt.Errorf("cannot index into %s", v.Kind)
		}
		idx := step.index
		if idx < 0 {
			idx += len(v.Items)
		}
		if idx < 0 || idx >= len(v.Items) {
			return values.Nothing(), fmt.Errorf("index %d out of range (length %d)", step.index, len(v.Items))
		}
		return v.Items[idx], nil
	}
	switch v.Kind {
	case values.KindRecord:
		field, ok := v.Record.Get(step.key)
		if !ok {
			return values.Nothing(), fmt.Errorf("no field %q", step.key)
		}
		return field, nil
	case values.KindList:
		out := make([]values.Value, 0, len(v.Items))
		for _, item := range v.Items {
			field, err := follow(item, step)
			if err != nil {
				return values.Nothing(), err
			}
			out = append(out, field)
		}
		return values.List(out), nil
	default:
		return values.Nothing(), fmt.Errorf("cannot access field %q of %s", step.key, v.Kind)
	}
}

type firstStage struct{ n int }

func (f firstStage) apply(v values.Value) (values.Value, error) {
	items, err := asList(v, "first")
	if err != nil {
		return values.Nothing(), err
	}
	if f.n == 1 {
		if len(items) == 0 {
			return values.Nothing(), nil
		}
		return items[0], nil
	}
	if f.n > len(items) {
		return values.List(items), nil
	}
	return values.List(items[:f.n]), nil
}

type lastStage struct{ n int }

func (l lastStage) apply(v values.Value) (values.Value, error) {
	items, err := asList(v, "last")
	if err != nil {
		return values.Nothing(), err
	}
	if l.n == 1 {
		if len(items) == 0 {
			return values.Nothing(), nil
		}
		return items[len(items)-1], nil
	}
	if l.n > len(items) {
		return values.List(items), nil
	}
	return values.List(items[len(items)-l.n:]), nil
}

type reverseStage struct{}

func (reverseStage) apply(v values.Value) (values.Value, error) {
	items, err := asList(v, "reverse")
	if err != nil {
		return values.Nothing(), err
	}
	out := make([]values.Value, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return values.List(out), nil
}

type lengthStage struct{}

func (lengthStage) apply(v values.Value) (values.Value, error) {
	switch v.Kind {
	case values.KindList:
		return values.Int(int64(len(v.Items))), nil
	case values.KindString:
		return values.Int(int64(len(v.Str))), nil
	case values.KindBinary:
		return values.Int(int64(len(v.Bytes))), nil
	case values.KindRecord:
		return values.Int(int64(v.Record.Len())), nil
	default:
		return values.Nothing(), fmt.Errorf("length: unsupported for %s", v.Kind)
	}
}

type columnsStage struct{}

func (columnsStage) apply(v values.Value) (values.Value, error) {
	switch v.Kind {
	case values.KindRecord:
		out := make([]values.Value, 0, v.Record.Len())
		for _, key := range v.Record.Keys {
			out = append(out, values.String(key))
		}
		return values.List(out), nil
	case values.KindList:
		seen := make(map[string]bool)
		var out []values.Value
		for _, item := range v.Items {
			if !item.IsRecord() {
				continue
			}
			for _, key := range item.Record.Keys {
				if !seen[key] {
					seen[key] = true
					out = append(out, values.String(key))
				}
			}
		}
		return values.List(out), nil
	default:
		return values.Nothing(), fmt.Errorf("columns: unsupported for %s", v.Kind)
	}
}

type selectStage struct{ cols []string }

func (s selectStage) apply(v values.Value) (values.Value, error) {
	switch v.Kind {
	case values.KindRecord:
		return selectRecord(v, s.cols)
	case values.KindList:
		out := make([]values.Value, 0, len(v.Items))
		for _, item := range v.Items {
			sel, err := selectRecord(item, s.cols)
			if err != nil {
				return values.Nothing(), err
			}
			out = append(out, sel)
		}
		return values.List(out), nil
	default:
		return values.Nothing(), fmt.Errorf("select: unsupported for %s", v.Kind)
	}
}

func selectRecord(v values.Value, cols []string) (values.Value, error) {
	if !v.IsRecord() {
		return values.Nothing(), fmt.Errorf("select: item is %s, not record", v.Kind)
	}
	rec := values.NewRecord()
	for _, col := range cols {
		field, ok := v.Record.Get(col)
		if !ok {
			field = values.Nothing()
		}
		rec.Set(col, field)
	}
	return values.RecordValue(rec), nil
}

type whereStage struct {
	col string
	op  string
	lit values.Value
}

func (w whereStage) apply(v values.Value) (values.Value, error) {
	if v.Kind != values.KindList {
		return values.Nothing(), fmt.Errorf("where: unsupported for %s", v.Kind)
	}
	var out []values.Value
	for _, item := range v.Items {
		if !item.IsRecord() {
			continue
		}
		field, ok := item.Record.Get(w.col)
		if !ok {
			continue
		}
		keep, err := compare(field, w.op, w.lit)
		if err != nil {
			return values.Nothing(), err
		}
		if keep {
			out = append(out, item)
		}
	}
	return values.List(out), nil
}

func compare(a values.Value, op string, b values.Value) (bool, error) {
	switch op {
	case "==":
		return equalValues(a, b), nil
	case "!=":
		return !equalValues(a, b), nil
	}
	// Ordering comparisons need comparable kinds.
	fa, ok := numeric(a)
	fb, okb := numeric(b)
	if ok && okb {
		switch op {
		case ">":
			return fa > fb, nil
		case "<":
			return fa < fb, nil
		case ">=":
			return fa >= fb, nil
		case "<=":
			return fa <= fb, nil
		}
	}
	if a.Kind == values.KindString && b.Kind == values.KindString {
		switch op {
		case ">":
			return a.Str > b.Str, nil
		case "<":
			return a.Str < b.Str, nil
		case ">=":
			return a.Str >= b.Str, nil
		case "<=":
			return a.Str <= b.Str, nil
		}
	}
	return false, fmt.Errorf("cannot compare %s with %s", a.Kind, b.Kind)
}

func numeric(v values.Value) (float64, bool) {
	switch v.Kind {
	case values.KindInt:
		return float64(v.Int), true
	case values.KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

func equalValues(a, b values.Value) bool {
	if fa, ok := numeric(a); ok {
		if fb, okb := numeric(b); okb {
			return fa == fb
		}
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case values.KindNothing:
		return true
	case values.KindBool:
		return a.Bool == b.Bool
	case values.KindString:
		return a.Str == b.Str
	default:
		return false
	}
}

func asList(v values.Value, cmd string) ([]values.Value, error) {
	if v.Kind != values.KindList {
		return nil, fmt.Errorf("%s: unsupported for %s", cmd, v.Kind)
	}
	return v.Items, nil
}
