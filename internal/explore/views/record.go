package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/tui/components"
	"github.com/Dicklesworthstone/peek/internal/tui/layout"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// Orientation selects how a record view lays out its data.
type Orientation int

const (
	// OrientRows shows one row per item with a column header.
	OrientRows Orientation = iota
	// OrientFields transposes a single record into field/value rows.
	OrientFields
)

// RecordView is the tabular frame over realized data. It is the default view
// for records and lists and the drill-down target for nested structures.
type RecordView struct {
	cfg         Config
	rows        [][]values.Value
	columns     []string // nil for untyped single-column data
	orientation Orientation
	source      values.Value
	hasSource   bool

	cursorRow int
	cursorCol int
	offsetRow int
	offsetCol int

	width  int
	height int
}

type recordKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Drill    key.Binding
}

var recordKeys = recordKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Left:     key.NewBinding(key.WithKeys("left", "h")),
	Right:    key.NewBinding(key.WithKeys("right", "l")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home", "g")),
	End:      key.NewBinding(key.WithKeys("end", "G")),
	Drill:    key.NewBinding(key.WithKeys("enter")),
}

// NewRecordView builds a view over a realized table.
func NewRecordView(table ingest.Table, cfg Config) *RecordView {
	return &RecordView{
		cfg:     cfg,
		rows:    table.Rows,
		columns: table.Columns,
		width:   80,
		height:  24,
	}
}

// NewRecordViewFromValue realizes a record or list value into a table view.
func NewRecordViewFromValue(v values.Value, cfg Config) *RecordView {
	table, _ := ingest.Collect(ingest.Single(v)) // in-memory collect cannot fail
	view := NewRecordView(table, cfg)
	view.source, view.hasSource = v, true
	if v.IsRecord() {
		view.SetOrientation(OrientFields)
	}
	return view
}

// FrameValue implements Framer. When the view was built from a value it is
// returned as-is; otherwise the table is folded back into one.
func (v *RecordView) FrameValue() (values.Value, bool) {
	if v.hasSource {
		return v.source, true
	}
	if len(v.rows) == 0 {
		return values.Value{}, false
	}
	if len(v.columns) > 0 {
		items := make([]values.Value, 0, len(v.rows))
		for _, row := range v.rows {
			rec := values.NewRecord()
			for i, col := range v.columns {
				rec.Set(col, row[i])
			}
			items = append(items, values.RecordValue(rec))
		}
		return values.List(items), true
	}
	if len(v.rows) == 1 && len(v.rows[0]) == 1 {
		return v.rows[0][0], true
	}
	items := make([]values.Value, 0, len(v.rows))
	for _, row := range v.rows {
		items = append(items, row[0])
	}
	return values.List(items), true
}

// SetOrientation switches the layout. Fields orientation only makes sense
// for a single-row table and is ignored otherwise.
func (v *RecordView) SetOrientation(o Orientation) {
	if o == OrientFields {
		if len(v.rows) != 1 || len(v.columns) == 0 {
			return
		}
		fieldRows := make([][]values.Value, 0, len(v.columns))
		for i, col := range v.columns {
			fieldRows = append(fieldRows, []values.Value{values.String(col), v.rows[0][i]})
		}
		v.rows = fieldRows
		v.columns = nil
		v.orientation = OrientFields
		v.cursorRow, v.cursorCol = 0, 0
		return
	}
	v.orientation = o
}

// Orientation returns the current layout.
func (v *RecordView) Orientation() Orientation { return v.orientation }

// Tail scrolls so the last row is visible, for --tail invocations.
func (v *RecordView) Tail() {
	if len(v.rows) > 0 {
		v.cursorRow = len(v.rows) - 1
	}
}

// Resize implements View.
func (v *RecordView) Resize(width, height int) {
	v.width, v.height = width, height
}

// Handle implements View.
func (v *RecordView) Handle(msg tea.KeyMsg) Transition {
	page := v.rowViewport()
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, recordKeys.Up):
		v.moveRow(-1)
		return Consume()
	case key.Matches(msg, recordKeys.Down):
		v.moveRow(1)
		return Consume()
	case key.Matches(msg, recordKeys.Left):
		v.moveCol(-1)
		return Consume()
	case key.Matches(msg, recordKeys.Right):
		v.moveCol(1)
		return Consume()
	case key.Matches(msg, recordKeys.PageUp):
		v.moveRow(-page)
		return Consume()
	case key.Matches(msg, recordKeys.PageDown):
		v.moveRow(page)
		return Consume()
	case key.Matches(msg, recordKeys.Home):
		v.cursorRow = 0
		return Consume()
	case key.Matches(msg, recordKeys.End):
		v.Tail()
		return Consume()
	case key.Matches(msg, recordKeys.Drill):
		cell, ok := v.drillValue()
		if !ok {
			return Consume()
		}
		return Push(ViewFor(cell, v.cfg), true)
	}
	return Ignore()
}

// ExitValue implements View: leaving the view yields the cell under the
// cursor.
func (v *RecordView) ExitValue() (values.Value, bool) {
	cell, ok := v.currentCell()
	if !ok {
		return values.Nothing(), false
	}
	return cell, true
}

// StatusLabels implements View.
func (v *RecordView) StatusLabels() (string, string) {
	left := "table"
	if v.orientation == OrientFields {
		left = "record"
	}
	if len(v.rows) == 0 {
		return left, "empty"
	}
	right := fmt.Sprintf("%d:%d [%dx%d]", v.cursorRow+1, v.cursorCol+1, len(v.rows), v.colCount())
	if pos := v.scrollState().Position(); pos != "" {
		right += " " + pos
	}
	return left, right
}

func (v *RecordView) colCount() int {
	if len(v.columns) > 0 {
		return len(v.columns)
	}
	if len(v.rows) > 0 {
		return len(v.rows[0])
	}
	return 0
}

func (v *RecordView) currentCell() (values.Value, bool) {
	if v.cursorRow >= len(v.rows) {
		return values.Nothing(), false
	}
	row := v.rows[v.cursorRow]
	if v.cursorCol >= len(row) {
		return values.Nothing(), false
	}
	return row[v.cursorCol], true
}

// DrillValue implements Driller.
func (v *RecordView) DrillValue() (values.Value, bool) {
	return v.drillValue()
}

// drillValue picks what Enter descends into. In fields orientation that is
// always the value cell, so Enter on a field name still opens its value.
func (v *RecordView) drillValue() (values.Value, bool) {
	if v.orientation == OrientFields {
		if v.cursorRow >= len(v.rows) {
			return values.Nothing(), false
		}
		return v.rows[v.cursorRow][1], true
	}
	return v.currentCell()
}

func (v *RecordView) moveRow(delta int) {
	v.cursorRow += delta
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
	if v.cursorRow >= len(v.rows) {
		v.cursorRow = len(v.rows) - 1
	}
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
}

func (v *RecordView) moveCol(delta int) {
	v.cursorCol += delta
	if v.cursorCol < 0 {
		v.cursorCol = 0
	}
	if n := v.colCount(); v.cursorCol >= n && n > 0 {
		v.cursorCol = n - 1
	}
}

// rowViewport returns how many data rows fit in the current height.
func (v *RecordView) rowViewport() int {
	h := v.height
	if v.showHeader() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (v *RecordView) showHeader() bool {
	return v.orientation == OrientRows && len(v.columns) > 0 && v.height >= 2
}

func (v *RecordView) scrollState() components.ScrollState {
	vis := v.rowViewport()
	last := v.offsetRow + vis - 1
	if last >= len(v.rows) {
		last = len(v.rows) - 1
	}
	return components.ScrollState{
		FirstVisible: v.offsetRow,
		LastVisible:  last,
		TotalItems:   len(v.rows),
	}
}

// Render implements View.
func (v *RecordView) Render() string {
	if len(v.rows) == 0 {
		return v.cfg.Styles.Dim.Render("(no data)")
	}
	v.clampScroll()

	widths := v.columnWidths()
	gutter := v.indexGutterWidth()
	pad := strings.Repeat(" ", v.cfg.App.Table.Padding)

	var lines []string
	if v.showHeader() {
		lines = append(lines, v.renderHeader(widths, gutter, pad))
	}

	vis := v.rowViewport()
	for i := v.offsetRow; i < len(v.rows) && i-v.offsetRow < vis; i++ {
		lines = append(lines, v.renderRow(i, widths, gutter, pad))
	}
	return strings.Join(lines, "\n")
}

func (v *RecordView) clampScroll() {
	vis := v.rowViewport()
	if v.cursorRow < v.offsetRow {
		v.offsetRow = v.cursorRow
	}
	if v.cursorRow >= v.offsetRow+vis {
		v.offsetRow = v.cursorRow - vis + 1
	}
	if v.offsetRow < 0 {
		v.offsetRow = 0
	}

	visCols := v.visibleColumns()
	if v.cursorCol < v.offsetCol {
		v.offsetCol = v.cursorCol
	}
	if v.cursorCol >= v.offsetCol+visCols {
		v.offsetCol = v.cursorCol - visCols + 1
	}
	if v.offsetCol < 0 {
		v.offsetCol = 0
	}
}

// visibleColumns estimates how many columns fit at the current width. The
// estimate is conservative; renderRow stops when the line is full anyway.
func (v *RecordView) visibleColumns() int {
	widths := v.columnWidths()
	pad := v.cfg.App.Table.Padding
	avail := v.width - v.indexGutterWidth()
	n := 0
	for i := v.offsetCol; i < len(widths); i++ {
		avail -= widths[i]
		if i > v.offsetCol {
			avail -= pad
		}
		if avail < 0 {
			break
		}
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (v *RecordView) indexGutterWidth() int {
	if !v.cfg.App.Table.ShowIndex || v.orientation != OrientRows {
		return 0
	}
	return len(strconv.Itoa(len(v.rows))) + 1
}

func (v *RecordView) maxCellWidth() int {
	if w := v.cfg.App.Table.MaxColumnWidth; w > 0 {
		return w
	}
	return layout.TierForWidth(v.width).MaxCellWidth()
}

func (v *RecordView) columnWidths() []int {
	capWidth := v.maxCellWidth()
	limit := v.cfg.App.Table.AbbreviationLimit
	n := v.colCount()
	widths := make([]int, n)
	for i := 0; i < n && i < len(v.columns); i++ {
		widths[i] = runewidth.StringWidth(v.columns[i])
	}
	for _, row := range v.rows {
		for i, cell := range row {
			if i >= n {
				break
			}
			if w := runewidth.StringWidth(cell.Abbreviated(limit)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > capWidth {
			widths[i] = capWidth
		}
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

func (v *RecordView) renderHeader(widths []int, gutter int, pad string) string {
	var b strings.Builder
	if gutter > 0 {
		b.WriteString(strings.Repeat(" ", gutter))
	}
	used := gutter
	for i := v.offsetCol; i < len(v.columns); i++ {
		cell := padCell(v.columns[i], widths[i])
		if i > v.offsetCol {
			b.WriteString(pad)
			used += len(pad)
		}
		if used+widths[i] > v.width {
			break
		}
		b.WriteString(v.cfg.Styles.TableHeader.Render(cell))
		used += widths[i]
	}
	return b.String()
}

func (v *RecordView) renderRow(rowIdx int, widths []int, gutter int, pad string) string {
	row := v.rows[rowIdx]
	var b strings.Builder
	if gutter > 0 {
		idx := strconv.Itoa(rowIdx + 1)
		b.WriteString(v.cfg.Styles.RowIndex.Render(padLeft(idx, gutter-1)) + " ")
	}
	used := gutter
	limit := v.cfg.App.Table.AbbreviationLimit
	for i := v.offsetCol; i < len(row) && i < len(widths); i++ {
		if i > v.offsetCol {
			b.WriteString(pad)
			used += len(pad)
		}
		if used+widths[i] > v.width {
			break
		}
		cell := padCell(row[i].Abbreviated(limit), widths[i])
		b.WriteString(v.styleCell(row[i], cell, rowIdx == v.cursorRow && i == v.cursorCol))
		used += widths[i]
	}
	return b.String()
}

func (v *RecordView) styleCell(val values.Value, text string, selected bool) string {
	if selected {
		return v.cfg.Styles.CellSelected.Render(text)
	}
	t := v.cfg.Theme
	switch val.Kind {
	case values.KindInt, values.KindFloat:
		return v.cfg.Styles.Normal.Foreground(t.NumberValue).Render(text)
	case values.KindBool:
		return v.cfg.Styles.Normal.Foreground(t.BoolValue).Render(text)
	case values.KindString:
		return v.cfg.Styles.Normal.Render(text)
	case values.KindNothing:
		return v.cfg.Styles.Normal.Foreground(t.NothingHint).Render(text)
	default:
		return v.cfg.Styles.Normal.Foreground(t.Info).Render(text)
	}
}

func padCell(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
