package ingest

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/peek/internal/values"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data string
		raw  bool
		want PipelineKind
	}{
		{name: "empty", data: "", want: PipelineEmpty},
		{name: "whitespace only", data: "  \n\t", want: PipelineEmpty},
		{name: "json scalar", data: "42", want: PipelineValue},
		{name: "json record", data: `{"a":1}`, want: PipelineValue},
		{name: "json array", data: `[{"a":1},{"a":2}]`, want: PipelineValue},
		{name: "ndjson", data: "{\"a\":1}\n{\"a\":2}\n", want: PipelineList},
		{name: "yaml mapping", data: "a: 1\nb: 2\n", want: PipelineValue},
		{name: "text lines", data: "hello\nworld\n", want: PipelineList},
		{name: "binary", data: "\x00\x01\xff\xfe", want: PipelineBytes},
		{name: "raw forces bytes", data: `{"a":1}`, raw: true, want: PipelineBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sniff([]byte(tt.data), Options{Raw: tt.raw})
			if got.Kind != tt.want {
				t.Errorf("Sniff() kind = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestSniff_NDJSONValues(t *testing.T) {
	p := Sniff([]byte("{\"a\":1}\n{\"a\":2}\n"), Options{})
	if p.Kind != PipelineList {
		t.Fatalf("kind = %v, want list", p.Kind)
	}
	items, err := p.List.Drain()
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	want := []values.Value{
		values.RecordFromPairs("a", 1),
		values.RecordFromPairs("a", 2),
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Drain() = %#v, want %#v", items, want)
	}
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name     string
		p        Pipeline
		wantCols []string
		wantRows int
	}{
		{
			name:     "empty",
			p:        Empty(),
			wantCols: nil,
			wantRows: 0,
		},
		{
			name:     "single record",
			p:        Single(values.RecordFromPairs("a", 1, "b", 2)),
			wantCols: []string{"a", "b"},
			wantRows: 1,
		},
		{
			name:     "scalar",
			p:        Single(values.Int(42)),
			wantCols: nil,
			wantRows: 1,
		},
		{
			name: "list of records unions columns",
			p: ListOfSlice([]values.Value{
				values.RecordFromPairs("a", 1),
				values.RecordFromPairs("a", 2, "b", 3),
			}),
			wantCols: []string{"a", "b"},
			wantRows: 2,
		},
		{
			name:     "mixed list",
			p:        ListOfSlice([]values.Value{values.Int(1), values.String("x")}),
			wantCols: nil,
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Collect(tt.p)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if !reflect.DeepEqual(table.Columns, tt.wantCols) {
				t.Errorf("Columns = %v, want %v", table.Columns, tt.wantCols)
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(table.Rows), tt.wantRows)
			}
		})
	}
}

func TestCollect_MissingFieldsAreNothing(t *testing.T) {
	table, err := Collect(ListOfSlice([]values.Value{
		values.RecordFromPairs("a", 1),
		values.RecordFromPairs("b", 2),
	}))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if table.Rows[0][1].Kind != values.KindNothing {
		t.Errorf("row 0 col b = %v, want nothing", table.Rows[0][1].Kind)
	}
	if table.Rows[1][0].Kind != values.KindNothing {
		t.Errorf("row 1 col a = %v, want nothing", table.Rows[1][0].Kind)
	}
}

func TestTable_SimpleValue(t *testing.T) {
	table, err := Collect(Single(values.Int(42)))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	v, ok := table.SimpleValue()
	if !ok || v.Int != 42 {
		t.Errorf("SimpleValue() = %v, %v; want 42, true", v, ok)
	}

	table, err = Collect(Single(values.RecordFromPairs("a", 1)))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if _, ok := table.SimpleValue(); ok {
		t.Error("SimpleValue() = true for a record, want false")
	}
}

func TestSeedValue(t *testing.T) {
	tests := []struct {
		name string
		p    Pipeline
		want values.Value
	}{
		{name: "empty", p: Empty(), want: values.Nothing()},
		{name: "single", p: Single(values.Int(7)), want: values.Int(7)},
		{
			name: "list materializes",
			p:    ListOfSlice([]values.Value{values.Int(1), values.Int(2)}),
			want: values.List([]values.Value{values.Int(1), values.Int(2)}),
		},
		{
			name: "bytes materialize",
			p:    BytesOf(strings.NewReader("\x01\x02")),
			want: values.Binary([]byte{1, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeedValue(tt.p)
			if err != nil {
				t.Fatalf("SeedValue() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SeedValue() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestSeedValue_BytesFailureIsIngestError(t *testing.T) {
	_, err := SeedValue(BytesOf(failingReader{}))
	if !errors.Is(err, ErrIngest) {
		t.Errorf("SeedValue() error = %v, want ErrIngest", err)
	}
}
