// Package query implements the small expression language the explorer
// evaluates in :peek commands and the try view. An expression is a pipeline
// of stages separated by '|':
//
//	users | where age > 30 | select name email | first 5
//
// A bare cell path (dotted fields and numeric list indices) is shorthand
// for get.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/peek/internal/values"
)

// Engine evaluates expressions against a value. It is stateless; the struct
// exists so callers hold one evaluator and configuration has a place to grow.
type Engine struct{}

// NewEngine returns a ready evaluator.
func NewEngine() *Engine {
	return &Engine{}
}

// Eval runs expr against input. Errors are user errors, never panics.
func (e *Engine) Eval(expr string, input values.Value) (values.Value, error) {
	stages, err := parse(expr)
	if err != nil {
		return values.Nothing(), err
	}
	v := input
	for _, st := range stages {
		v, err = st.apply(v)
		if err != nil {
			return values.Nothing(), err
		}
	}
	return v, nil
}

type stage interface {
	apply(values.Value) (values.Value, error)
}

func parse(expr string) ([]stage, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	var stages []stage
	for _, part := range splitPipes(expr) {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty pipeline stage")
		}
		st, err := parseStage(part)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// splitPipes splits on '|' outside of quotes.
func splitPipes(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuote := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0:
			cur.WriteByte(c)
			if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
			cur.WriteByte(c)
		case c == '|':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

func parseStage(s string) (stage, error) {
	fields := tokenize(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty pipeline stage")
	}
	name, args := fields[0], fields[1:]
	switch name {
	case "get":
		if len(args) != 1 {
			return nil, fmt.Errorf("get: want one cell path, got %d arguments", len(args))
		}
		return getStage{path: parsePath(args[0])}, nil
	case "first":
		n, err := optionalCount(args, 1)
		if err != nil {
			return nil, fmt.Errorf("first: %v", err)
		}
		return firstStage{n: n}, nil
	case "last":
		n, err := optionalCount(args, 1)
		if err != nil {
			return nil, fmt.Errorf("last: %v", err)
		}
		return lastStage{n: n}, nil
	case "reverse":
		if len(args) != 0 {
			return nil, fmt.Errorf("reverse: takes no arguments")
		}
		return reverseStage{}, nil
	case "length":
		if len(args) != 0 {
			return nil, fmt.Errorf("length: takes no arguments")
		}
		return lengthStage{}, nil
	case "columns":
		if len(args) != 0 {
			return nil, fmt.Errorf("columns: takes no arguments")
		}
		return columnsStage{}, nil
	case "select":
		if len(args) == 0 {
			return nil, fmt.Errorf("select: want at least one column")
		}
		return selectStage{cols: args}, nil
	case "where":
		if len(args) != 3 {
			return nil, fmt.Errorf("where: want <column> <op> <literal>")
		}
		op := args[1]
		switch op {
		case "==", "!=", ">", "<", ">=", "<=":
		default:
			return nil, fmt.Errorf("where: unknown operator %q", op)
		}
		return whereStage{col: args[0], op: op, lit: parseLiteral(args[2])}, nil
	default:
		if len(args) != 0 {
			return nil, fmt.Errorf("unknown command %q", name)
		}
		// Bare cell path shorthand for get.
		return getStage{path: parsePath(name)}, nil
	}
}

func tokenize(s string) []string {
	var out []string
	var cur strings.Builder
	inQuote := byte(0)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			inQuote = c
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}

type pathStep struct {
	key   string
	index int
	isIdx bool
}

func parsePath(s string) []pathStep {
	parts := strings.Split(s, ".")
	steps := make([]pathStep, 0, len(parts))
	for _, p := range parts {
		if idx, err := strconv.Atoi(p); err == nil {
			steps = append(steps, pathStep{index: idx, isIdx: true})
		} else {
			steps = append(steps, pathStep{key: p})
		}
	}
	return steps
}

func optionalCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("want at most one count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

func parseLiteral(s string) values.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return values.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return values.Float(f)
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return values.Bool(b)
	}
	if s == "null" {
		return values.Nothing()
	}
	return values.String(s)
}
