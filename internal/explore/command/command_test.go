package command

import (
	"strings"
	"testing"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

func testContext(t *testing.T, frame values.Value) Context {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return Context{
		Engine:   query.NewEngine(),
		Cfg:      views.NewConfig(config.Default(), "/tmp"),
		Frame:    frame,
		HasFrame: true,
	}
}

func TestPeekCmd(t *testing.T) {
	ctx := testContext(t, values.RecordFromPairs("name", values.String("ada"), "age", values.Int(36)))

	cmd := NewPeekCmd()
	if err := cmd.Parse(""); err == nil {
		t.Error("empty expression should be rejected")
	}
	if err := cmd.Parse("name"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	view, err := cmd.Spawn(ctx)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	view.Resize(40, 10)
	if !strings.Contains(view.Render(), "ada") {
		t.Errorf("result view missing evaluated value:\n%s", view.Render())
	}

	if err := cmd.Parse("missing"); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.Spawn(ctx); err == nil {
		t.Error("evaluation error should surface from Spawn")
	}
}

func TestTableCmdRowOrientationForRecord(t *testing.T) {
	ctx := testContext(t, values.RecordFromPairs("a", values.Int(1), "b", values.Int(2)))

	cmd := NewTableCmd()
	if err := cmd.Parse("x"); err == nil {
		t.Error("arguments should be rejected")
	}
	if err := cmd.Parse(""); err != nil {
		t.Fatal(err)
	}
	view, err := cmd.Spawn(ctx)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	rv, ok := view.(*views.RecordView)
	if !ok {
		t.Fatalf("Spawn returned %T, want *views.RecordView", view)
	}
	if rv.Orientation() != views.OrientRows {
		t.Error("table command should force row orientation")
	}
}

func TestExpandCmdUsesCursor(t *testing.T) {
	ctx := testContext(t, values.Nothing())
	ctx.Cursor = values.List([]values.Value{values.Int(1), values.Int(2)})
	ctx.HasCursor = true

	cmd := NewExpandCmd()
	if err := cmd.Parse(""); err != nil {
		t.Fatal(err)
	}
	view, err := cmd.Spawn(ctx)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if _, ok := view.(*views.RecordView); !ok {
		t.Errorf("expanding a list should open a record view, got %T", view)
	}

	ctx.HasCursor = false
	if _, err := cmd.Spawn(ctx); err == nil {
		t.Error("expand without a cursor should fail")
	}
}

func TestTryCmdSeedsFrame(t *testing.T) {
	ctx := testContext(t, values.RecordFromPairs("k", values.String("v")))

	cmd := NewTryCmd()
	if err := cmd.Parse("get k"); err != nil {
		t.Fatal(err)
	}
	view, err := cmd.Spawn(ctx)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	tv, ok := view.(*views.TryView)
	if !ok {
		t.Fatalf("Spawn returned %T, want *views.TryView", view)
	}
	tv.Resize(40, 10)
	out := tv.Render()
	if !strings.Contains(out, "get k") {
		t.Errorf("prefill not shown:\n%s", out)
	}
	if !strings.Contains(out, "v") {
		t.Errorf("seed not shown:\n%s", out)
	}
}

func TestHelpCmdFocus(t *testing.T) {
	ctx := testContext(t, values.Nothing())

	cmd := NewHelpCmd()
	if err := cmd.Parse("quit"); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.Spawn(ctx); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	// Aliases focus their canonical entry.
	if err := cmd.Parse("q"); err != nil {
		t.Fatal(err)
	}
	view, err := cmd.Spawn(ctx)
	if err != nil {
		t.Fatalf("Spawn with alias: %v", err)
	}
	view.Resize(80, 20)
	if first := strings.SplitN(view.Render(), "\n", 2)[0]; !strings.Contains(first, ":quit") {
		t.Errorf("alias focus should scroll to its entry, top line = %q", first)
	}

	if err := cmd.Parse("bogus"); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.Spawn(ctx); err == nil {
		t.Error("unknown focus should fail")
	}
}

func TestQuitCmd(t *testing.T) {
	cmd := NewQuitCmd()
	if err := cmd.Parse("now"); err == nil {
		t.Error("arguments should be rejected")
	}
	if err := cmd.Parse(""); err != nil {
		t.Fatal(err)
	}
	if got := cmd.React(); got != ReactionQuit {
		t.Errorf("React() = %v, want ReactionQuit", got)
	}
}
