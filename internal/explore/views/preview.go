package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Dicklesworthstone/peek/internal/tui/components"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// Preview is a scrollable text frame. It is the terminal leaf for simple
// values and drilled-into scalars.
type Preview struct {
	cfg    Config
	text   string
	offset int
	width  int
	height int
}

var previewKeys = struct {
	Up, Down, PageUp, PageDown, Home, End key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home", "g")),
	End:      key.NewBinding(key.WithKeys("end", "G")),
}

// NewPreview builds a preview over text.
func NewPreview(text string, cfg Config) *Preview {
	return &Preview{cfg: cfg, text: text, width: 80, height: 24}
}

// Resize implements View.
func (p *Preview) Resize(width, height int) {
	p.width, p.height = width, height
}

// FrameValue implements Framer.
func (p *Preview) FrameValue() (values.Value, bool) {
	return values.String(p.text), true
}

func (p *Preview) lines() []string {
	text := p.text
	if p.cfg.App.Preview.Wrap && p.width > 0 {
		text = wordwrap.String(text, p.width)
	}
	return strings.Split(text, "\n")
}

// Handle implements View.
func (p *Preview) Handle(msg tea.KeyMsg) Transition {
	total := len(p.lines())
	page := p.height
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, previewKeys.Up):
		p.scroll(-1, total)
	case key.Matches(msg, previewKeys.Down):
		p.scroll(1, total)
	case key.Matches(msg, previewKeys.PageUp):
		p.scroll(-page, total)
	case key.Matches(msg, previewKeys.PageDown):
		p.scroll(page, total)
	case key.Matches(msg, previewKeys.Home):
		p.offset = 0
	case key.Matches(msg, previewKeys.End):
		p.offset = total - p.height
		if p.offset < 0 {
			p.offset = 0
		}
	default:
		return Ignore()
	}
	return Consume()
}

func (p *Preview) scroll(delta, total int) {
	p.offset += delta
	maxOffset := total - p.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// Render implements View.
func (p *Preview) Render() string {
	lines := p.lines()
	if p.offset >= len(lines) {
		p.offset = 0
	}
	end := p.offset + p.height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[p.offset:end]
	styled := make([]string, len(visible))
	for i, line := range visible {
		styled[i] = p.cfg.Styles.Normal.Render(line)
	}
	return strings.Join(styled, "\n")
}

// ExitValue implements View. A preview is display-only.
func (p *Preview) ExitValue() (values.Value, bool) {
	return values.Nothing(), false
}

// StatusLabels implements View.
func (p *Preview) StatusLabels() (string, string) {
	total := len(p.lines())
	last := p.offset + p.height - 1
	if last >= total {
		last = total - 1
	}
	state := components.ScrollState{FirstVisible: p.offset, LastVisible: last, TotalItems: total}
	return "preview", state.Position()
}
