package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// TryView is the scratch pad: an expression editor on top, the result of the
// last evaluation below. The seed value is what expressions evaluate against.
type TryView struct {
	cfg    Config
	engine *query.Engine
	seed   values.Value

	input   textinput.Model
	result  *values.Value
	evalErr string

	width  int
	height int
}

// NewTryView builds a scratch pad over the seed value, optionally pre-filled
// with an expression (not yet evaluated).
func NewTryView(seed values.Value, prefill string, engine *query.Engine, cfg Config) *TryView {
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(prefill)
	input.Focus()
	return &TryView{
		cfg:    cfg,
		engine: engine,
		seed:   seed,
		input:  input,
		width:  80,
		height: 24,
	}
}

// Resize implements View.
func (t *TryView) Resize(width, height int) {
	t.width, t.height = width, height
	t.input.Width = width - len(t.input.Prompt) - 1
}

// FrameValue implements Framer. The last result shadows the seed.
func (t *TryView) FrameValue() (values.Value, bool) {
	if t.result != nil {
		return *t.result, true
	}
	return t.seed, true
}

// Handle implements View. The editor owns every key except Enter (evaluate)
// and Tab (open the result as a table frame).
func (t *TryView) Handle(msg tea.KeyMsg) Transition {
	switch msg.Type {
	case tea.KeyEnter:
		t.evaluate()
		return Consume()
	case tea.KeyTab:
		if t.result != nil {
			return Push(ViewFor(*t.result, t.cfg), true)
		}
		return Consume()
	case tea.KeyEsc:
		// Let the pager pop the frame.
		return Ignore()
	case tea.KeyRunes:
		// A bare q on an empty buffer is a quit, not input.
		if string(msg.Runes) == "q" && t.input.Value() == "" {
			return Ignore()
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	_ = cmd // cursor blink is not driven here
	return Consume()
}

func (t *TryView) evaluate() {
	expr := strings.TrimSpace(t.input.Value())
	if expr == "" {
		return
	}
	result, err := t.engine.Eval(expr, t.seed)
	if err != nil {
		t.evalErr = err.Error()
		t.result = nil
		return
	}
	t.evalErr = ""
	t.result = &result
	t.input.SetValue("")
}

// Render implements View.
func (t *TryView) Render() string {
	s := t.cfg.Styles
	lines := []string{
		s.CmdLine.Render(t.input.View()),
		s.Dim.Render(strings.Repeat("─", minInt(t.width, 200))),
	}

	body := t.bodyLines()
	avail := t.height - len(lines)
	for i := 0; i < avail && i < len(body); i++ {
		lines = append(lines, body[i])
	}
	return strings.Join(lines, "\n")
}

func (t *TryView) bodyLines() []string {
	s := t.cfg.Styles
	if t.evalErr != "" {
		return []string{s.Error.Render("error: " + t.evalErr)}
	}
	shown := t.seed
	if t.result != nil {
		shown = *t.result
	}
	raw := strings.Split(values.Pretty(shown), "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = s.Normal.Render(line)
	}
	return out
}

// ExitValue implements View. The scratch pad never carries a value out; Tab
// opens the result as a real frame when one is wanted.
func (t *TryView) ExitValue() (values.Value, bool) {
	return values.Nothing(), false
}

// StatusLabels implements View.
func (t *TryView) StatusLabels() (string, string) {
	right := "enter: run  tab: open result"
	if t.evalErr != "" {
		right = "error"
	}
	return "try", right
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
