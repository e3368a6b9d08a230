// Package values defines the structured value model the explorer operates on.
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNothing Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
	KindList
	KindRecord
)

// String returns the lowercase type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union. Exactly one payload field is meaningful,
// selected by Kind.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Bytes  []byte
	Items  []Value
	Record *Record
}

// Record is an ordered field map. Keys preserves insertion order; Fields is
// the lookup index. Mutate only through Set to keep the two in sync.
type Record struct {
	Keys   []string
	Fields map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{Fields: make(map[string]Value)}
}

// Set inserts or replaces a field, preserving first-insertion order.
func (r *Record) Set(key string, v Value) {
	if r.Fields == nil {
		r.Fields = make(map[string]Value)
	}
	if _, ok := r.Fields[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Fields[key] = v
}

// Get returns the field value and whether it exists.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil || r.Fields == nil {
		return Nothing(), false
	}
	v, ok := r.Fields[key]
	return v, ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Keys)
}

func Nothing() Value              { return Value{Kind: KindNothing} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func Int(i int64) Value           { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func String(s string) Value       { return Value{Kind: KindString, Str: s} }
func Binary(b []byte) Value       { return Value{Kind: KindBinary, Bytes: b} }
func List(items []Value) Value    { return Value{Kind: KindList, Items: items} }
func RecordValue(r *Record) Value { return Value{Kind: KindRecord, Record: r} }

// RecordFromPairs builds a record value from alternating key/value pairs.
// Intended for tests and fixtures; panics on an odd number of arguments.
func RecordFromPairs(pairs ...any) Value {
	if len(pairs)%2 != 0 {
		panic("RecordFromPairs: odd number of arguments")
	}
	rec := NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("RecordFromPairs: key must be a string")
		}
		switch v := pairs[i+1].(type) {
		case Value:
			rec.Set(key, v)
		case string:
			rec.Set(key, String(v))
		case int:
			rec.Set(key, Int(int64(v)))
		case int64:
			rec.Set(key, Int(v))
		case float64:
			rec.Set(key, Float(v))
		case bool:
			rec.Set(key, Bool(v))
		case nil:
			rec.Set(key, Nothing())
		default:
			panic(fmt.Sprintf("RecordFromPairs: unsupported value type %T", v))
		}
	}
	return RecordValue(rec)
}

// IsRecord reports whether the value is a record.
func (v Value) IsRecord() bool { return v.Kind == KindRecord }

// IsBinary reports whether the value is a binary blob.
func (v Value) IsBinary() bool { return v.Kind == KindBinary }

// simpleStringLimit bounds what still counts as an inline-renderable string.
const simpleStringLimit = 80

// IsSimple reports whether the value renders inline: a scalar, or a short
// single-line string.
func (v Value) IsSimple() bool {
	switch v.Kind {
	case KindNothing, KindBool, KindInt, KindFloat:
		return true
	case KindString:
		return len(v.Str) <= simpleStringLimit && !strings.ContainsRune(v.Str, '\n')
	default:
		return false
	}
}

// Abbreviated renders any value on a single line, truncated to limit runes
// with an ellipsis. limit <= 0 means no truncation.
func (v Value) Abbreviated(limit int) string {
	s := v.inline()
	if limit > 0 {
		runes := []rune(s)
		if len(runes) > limit {
			s = string(runes[:limit-1]) + "…"
		}
	}
	return s
}

func (v Value) inline() string {
	switch v.Kind {
	case KindNothing:
		return ""
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindBinary:
		return fmt.Sprintf("binary: %d bytes", len(v.Bytes))
	case KindList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, item.inline())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRecord:
		parts := make([]string, 0, v.Record.Len())
		for _, key := range v.Record.Keys {
			field := v.Record.Fields[key]
			parts = append(parts, key+": "+field.inline())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
