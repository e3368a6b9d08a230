// Package ingest turns raw input into the pipeline shapes the explorer
// classifies: nothing, a single value, a stream of values, or raw bytes.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Dicklesworthstone/peek/internal/values"
)

// ErrIngest wraps I/O failures while draining input. It is the one ingest
// error the pager treats as fatal.
var ErrIngest = errors.New("input ingest failed")

// PipelineKind discriminates the variants of Pipeline.
type PipelineKind int

const (
	PipelineEmpty PipelineKind = iota
	PipelineValue
	PipelineList
	PipelineBytes
)

// Pipeline is the tagged input variant handed to the classifier.
// Exactly one payload field is meaningful, selected by Kind.
type Pipeline struct {
	Kind  PipelineKind
	Value values.Value
	List  *ListStream
	Bytes io.Reader
}

// ListStream yields values one at a time until exhausted.
type ListStream struct {
	next func() (values.Value, bool, error)
}

// NewListStream wraps a pull function: it returns the next value, whether a
// value was produced, and any error.
func NewListStream(next func() (values.Value, bool, error)) *ListStream {
	return &ListStream{next: next}
}

// SliceStream builds a stream over an in-memory slice.
func SliceStream(items []values.Value) *ListStream {
	i := 0
	return NewListStream(func() (values.Value, bool, error) {
		if i >= len(items) {
			return values.Nothing(), false, nil
		}
		v := items[i]
		i++
		return v, true, nil
	})
}

// Drain materializes the remaining values.
func (s *ListStream) Drain() ([]values.Value, error) {
	var out []values.Value
	for {
		v, ok, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIngest, err)
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

func Empty() Pipeline                        { return Pipeline{Kind: PipelineEmpty} }
func Single(v values.Value) Pipeline         { return Pipeline{Kind: PipelineValue, Value: v} }
func ListOf(s *ListStream) Pipeline          { return Pipeline{Kind: PipelineList, List: s} }
func BytesOf(r io.Reader) Pipeline           { return Pipeline{Kind: PipelineBytes, Bytes: r} }
func ListOfSlice(vs []values.Value) Pipeline { return ListOf(SliceStream(vs)) }

// Options controls input sniffing.
type Options struct {
	// Raw forces the input to be treated as a byte stream.
	Raw bool
}

// File reads and sniffs a file.
func File(path string, opts Options) (Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("%w: %v", ErrIngest, err)
	}
	return Sniff(data, opts), nil
}

// Reader drains r and sniffs the result.
func Reader(r io.Reader, opts Options) (Pipeline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Empty(), fmt.Errorf("%w: %v", ErrIngest, err)
	}
	return Sniff(data, opts), nil
}

// Sniff decides the pipeline shape of data. The order of checks:
// raw flag, emptiness, UTF-8 validity (binary), single JSON document,
// NDJSON (one JSON document per line), YAML document, plain text lines.
func Sniff(data []byte, opts Options) Pipeline {
	if opts.Raw {
		return BytesOf(bytes.NewReader(data))
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Empty()
	}
	if !utf8.Valid(data) {
		return BytesOf(bytes.NewReader(data))
	}
	if v, err := values.FromJSON(trimmed); err == nil {
		return Single(v)
	}
	if stream, ok := ndjsonStream(trimmed); ok {
		return ListOf(stream)
	}
	if looksLikeYAML(trimmed) {
		if v, err := values.FromYAML(trimmed); err == nil {
			return Single(v)
		}
	}
	return ListOf(textLines(string(trimmed)))
}

// ndjsonStream accepts input where every non-blank line is a JSON document
// and at least two lines are present. The stream decodes lazily.
func ndjsonStream(data []byte) (*ListStream, bool) {
	lines := splitLines(string(data))
	if len(lines) < 2 {
		return nil, false
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			return nil, false
		}
	}
	i := 0
	return NewListStream(func() (values.Value, bool, error) {
		if i >= len(lines) {
			return values.Nothing(), false, nil
		}
		v, err := values.FromJSON([]byte(lines[i]))
		if err != nil {
			return values.Nothing(), false, err
		}
		i++
		return v, true, nil
	}), true
}

// looksLikeYAML is a cheap structural check: a top-level "key:" or "- item"
// on the first non-blank line.
func looksLikeYAML(data []byte) bool {
	for _, line := range splitLines(string(data)) {
		if strings.HasPrefix(line, "- ") {
			return true
		}
		if idx := strings.Index(line, ": "); idx > 0 && !strings.ContainsAny(line[:idx], " \t") {
			return true
		}
		if strings.HasSuffix(line, ":") && !strings.ContainsAny(line[:len(line)-1], " \t") {
			return true
		}
		return false
	}
	return false
}

func textLines(s string) *ListStream {
	lines := splitLines(s)
	i := 0
	return NewListStream(func() (values.Value, bool, error) {
		if i >= len(lines) {
			return values.Nothing(), false, nil
		}
		line := lines[i]
		i++
		return values.String(line), true, nil
	})
}

func splitLines(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// DrainBytes materializes a byte stream pipeline.
func DrainBytes(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIngest, err)
	}
	return data, nil
}
