package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/values"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv("NO_COLOR", "1") // deterministic, style-free output
	return NewConfig(config.Default(), "/tmp")
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func usersTable(t *testing.T) ingest.Table {
	t.Helper()
	table, err := ingest.Collect(ingest.ListOfSlice([]values.Value{
		values.RecordFromPairs("a", 1),
		values.RecordFromPairs("a", 2),
	}))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestRecordView_RowsRender(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)
	v.Resize(40, 10)

	out := v.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 { // header + 2 rows
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "a") {
		t.Errorf("header missing column name: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1") || !strings.Contains(lines[2], "2") {
		t.Errorf("rows missing values:\n%s", out)
	}
}

func TestRecordView_FieldOrientation(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordViewFromValue(values.RecordFromPairs("a", 1, "b", 2), cfg)
	v.Resize(40, 10)

	if v.Orientation() != OrientFields {
		t.Fatal("record value should use fields orientation")
	}
	out := v.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2 field rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[0], "1") {
		t.Errorf("first field row wrong: %q", lines[0])
	}
}

func TestRecordView_DrillOnFieldPushesPreview(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordViewFromValue(values.RecordFromPairs("a", 1, "b", 2), cfg)
	v.Resize(40, 10)

	tr := v.Handle(keyMsg("enter"))
	if tr.Kind != TransitionPush {
		t.Fatalf("Handle(enter) = %v, want push", tr.Kind)
	}
	if _, ok := tr.View.(*Preview); !ok {
		t.Fatalf("drill target = %T, want *Preview", tr.View)
	}
	if !tr.Stackable {
		t.Error("drill-down frames should be stackable")
	}
}

func TestRecordView_DrillIntoNestedRecord(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordViewFromValue(values.RecordFromPairs("inner", values.RecordFromPairs("x", 1)), cfg)

	tr := v.Handle(keyMsg("enter"))
	if tr.Kind != TransitionPush {
		t.Fatalf("Handle(enter) = %v, want push", tr.Kind)
	}
	nested, ok := tr.View.(*RecordView)
	if !ok {
		t.Fatalf("drill target = %T, want *RecordView", tr.View)
	}
	if nested.Orientation() != OrientFields {
		t.Error("nested record should open in fields orientation")
	}
}

func TestRecordView_DrillValueMatchesEnterTarget(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordViewFromValue(values.RecordFromPairs("a", 1, "b", 2), cfg)

	// Fields orientation: the cursor sits on the name cell, but both Enter
	// and the expand command descend into the value.
	got, ok := v.DrillValue()
	if !ok {
		t.Fatal("DrillValue on a field row should succeed")
	}
	if got.Kind != values.KindInt || got.Int != 1 {
		t.Errorf("DrillValue = %v, want 1", got)
	}

	exit, ok := v.ExitValue()
	if !ok || exit.Str != "a" {
		t.Errorf("ExitValue = %v, want the cursor cell \"a\"", exit)
	}
}

func TestRecordView_Navigation(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)
	v.Resize(40, 10)

	if v.cursorRow != 0 {
		t.Fatal("cursor should start at the first row")
	}
	v.Handle(keyMsg("down"))
	if v.cursorRow != 1 {
		t.Errorf("cursorRow = %d after down, want 1", v.cursorRow)
	}
	v.Handle(keyMsg("down")) // clamped at the last row
	if v.cursorRow != 1 {
		t.Errorf("cursorRow = %d, movement should clamp", v.cursorRow)
	}
	v.Handle(keyMsg("up"))
	if v.cursorRow != 0 {
		t.Errorf("cursorRow = %d after up, want 0", v.cursorRow)
	}
	v.Handle(keyMsg("up")) // clamped at the first row
	if v.cursorRow != 0 {
		t.Errorf("cursorRow = %d, movement should clamp at 0", v.cursorRow)
	}
	v.Handle(keyMsg("end"))
	if v.cursorRow != 1 {
		t.Errorf("cursorRow = %d after end, want last", v.cursorRow)
	}
	v.Handle(keyMsg("home"))
	if v.cursorRow != 0 {
		t.Errorf("cursorRow = %d after home, want 0", v.cursorRow)
	}
}

func TestRecordView_TailShowsLastRow(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)
	v.Resize(40, 1) // too small for the header
	v.Tail()

	out := v.Render()
	if strings.Count(out, "\n") != 0 {
		t.Fatalf("height 1 should render one line:\n%q", out)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("tail should show the last row, got %q", out)
	}
}

func TestRecordView_ExitValueIsCursorCell(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)

	got, ok := v.ExitValue()
	if !ok || got.Int != 1 {
		t.Errorf("ExitValue() = %v, %v; want first cell 1", got, ok)
	}
	v.Handle(keyMsg("down"))
	got, ok = v.ExitValue()
	if !ok || got.Int != 2 {
		t.Errorf("ExitValue() after down = %v, %v; want 2", got, ok)
	}
}

func TestRecordView_EmptyTable(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(ingest.Table{}, cfg)
	v.Resize(40, 10)

	if out := v.Render(); !strings.Contains(out, "no data") {
		t.Errorf("empty render = %q", out)
	}
	if _, ok := v.ExitValue(); ok {
		t.Error("empty table should have no exit value")
	}
	if tr := v.Handle(keyMsg("enter")); tr.Kind != TransitionConsumed {
		t.Errorf("enter on empty table = %v, want consumed", tr.Kind)
	}
}

func TestRecordView_StatusLabels(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)
	left, right := v.StatusLabels()
	if left != "table" {
		t.Errorf("left = %q, want table", left)
	}
	if !strings.Contains(right, "[2x1]") {
		t.Errorf("right = %q, want dimensions [2x1]", right)
	}

	fv := NewRecordViewFromValue(values.RecordFromPairs("a", 1), cfg)
	left, _ = fv.StatusLabels()
	if left != "record" {
		t.Errorf("left = %q, want record", left)
	}
}

func TestRecordView_IgnoresUnknownKeys(t *testing.T) {
	cfg := testConfig(t)
	v := NewRecordView(usersTable(t), cfg)
	if tr := v.Handle(keyMsg("x")); tr.Kind != TransitionIgnored {
		t.Errorf("Handle(x) = %v, want ignored", tr.Kind)
	}
}
