package explore

import (
	"errors"
	"testing"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

func testViewConfig(t *testing.T) views.Config {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return views.NewConfig(config.Default(), "/tmp")
}

func classifyFor(t *testing.T, pipe ingest.Pipeline, opts RunOptions) Page {
	t.Helper()
	if opts.App == nil {
		opts.App = config.Default()
	}
	p, err := classify(pipe, opts, query.NewEngine(), testViewConfig(t))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	return p
}

func TestClassify(t *testing.T) {
	record := values.RecordFromPairs("a", 1, "b", 2)
	list := values.List([]values.Value{
		values.RecordFromPairs("a", 1),
		values.RecordFromPairs("a", 2),
	})

	tests := []struct {
		name      string
		pipe      ingest.Pipeline
		opts      RunOptions
		wantView  string
		stackable bool
	}{
		{name: "empty pipeline", pipe: ingest.Empty(), wantView: "help", stackable: false},
		{name: "single scalar", pipe: ingest.Single(values.Int(42)), wantView: "preview", stackable: false},
		{name: "single record", pipe: ingest.Single(record), wantView: "record", stackable: true},
		{name: "list of records", pipe: ingest.Single(list), wantView: "record", stackable: true},
		{name: "binary value", pipe: ingest.Single(values.Binary([]byte{1, 2})), wantView: "binary", stackable: true},
		{name: "try mode", pipe: ingest.Single(record), opts: RunOptions{StartInTry: true}, wantView: "try", stackable: true},
		{name: "long string is not simple", pipe: ingest.Single(values.String(string(make([]byte, 200)))), wantView: "record", stackable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := classifyFor(t, tt.pipe, tt.opts)
			if got := viewKind(p.View); got != tt.wantView {
				t.Errorf("view = %s, want %s", got, tt.wantView)
			}
			if p.Stackable != tt.stackable {
				t.Errorf("stackable = %v, want %v", p.Stackable, tt.stackable)
			}
		})
	}
}

func viewKind(v views.View) string {
	switch v.(type) {
	case *views.HelpView:
		return "help"
	case *views.Preview:
		return "preview"
	case *views.RecordView:
		return "record"
	case *views.BinaryView:
		return "binary"
	case *views.TryView:
		return "try"
	default:
		return "unknown"
	}
}

func TestClassifyRecordOrientation(t *testing.T) {
	p := classifyFor(t, ingest.Single(values.RecordFromPairs("a", 1)), RunOptions{})
	rv := p.View.(*views.RecordView)
	if rv.Orientation() != views.OrientFields {
		t.Error("single record should open in field orientation")
	}

	list := values.List([]values.Value{values.RecordFromPairs("a", 1)})
	p = classifyFor(t, ingest.Single(list), RunOptions{})
	rv = p.View.(*views.RecordView)
	if rv.Orientation() != views.OrientRows {
		t.Error("a list should open in row orientation")
	}
}

func TestClassifyBytesDrainFailure(t *testing.T) {
	pipe := ingest.BytesOf(failingReader{})
	_, err := classify(pipe, RunOptions{App: config.Default()}, query.NewEngine(), testViewConfig(t))
	if !errors.Is(err, ingest.ErrIngest) {
		t.Errorf("err = %v, want ErrIngest", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}
