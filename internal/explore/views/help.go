package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/peek/internal/tui/components"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// HelpEntry is one row of the command catalog.
type HelpEntry struct {
	Name        string
	Aliases     []string
	Description string
}

// HelpView renders the command catalog. It is a terminal leaf: one pop
// closes it.
type HelpView struct {
	cfg     Config
	entries []HelpEntry
	offset  int
	width   int
	height  int
}

// helpHeaderLines is the fixed preamble lines() emits before the first
// entry: title, intro, blank, column header.
const helpHeaderLines = 4

// NewHelpView builds the catalog view. If focus names a command or one of
// its aliases the view starts scrolled to that entry.
func NewHelpView(entries []HelpEntry, focus string, cfg Config) *HelpView {
	v := &HelpView{cfg: cfg, entries: entries, width: 80, height: 24}
	if focus != "" {
		if i, ok := entryIndex(entries, focus); ok {
			v.offset = helpHeaderLines + i
		}
	}
	return v
}

func entryIndex(entries []HelpEntry, name string) (int, bool) {
	for i, e := range entries {
		if e.Name == name {
			return i, true
		}
		for _, a := range e.Aliases {
			if a == name {
				return i, true
			}
		}
	}
	return 0, false
}

// Resize implements View.
func (h *HelpView) Resize(width, height int) {
	h.width, h.height = width, height
}

// Handle implements View.
func (h *HelpView) Handle(msg tea.KeyMsg) Transition {
	total := len(h.lines())
	page := h.height
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, previewKeys.Up):
		h.scroll(-1, total)
	case key.Matches(msg, previewKeys.Down):
		h.scroll(1, total)
	case key.Matches(msg, previewKeys.PageUp):
		h.scroll(-page, total)
	case key.Matches(msg, previewKeys.PageDown):
		h.scroll(page, total)
	case key.Matches(msg, previewKeys.Home):
		h.offset = 0
	case key.Matches(msg, previewKeys.End):
		h.offset = total - h.height
		if h.offset < 0 {
			h.offset = 0
		}
	default:
		return Ignore()
	}
	return Consume()
}

func (h *HelpView) scroll(delta, total int) {
	h.offset += delta
	maxOffset := total - h.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.offset > maxOffset {
		h.offset = maxOffset
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

func (h *HelpView) lines() []string {
	s := h.cfg.Styles

	nameWidth := len("command")
	aliasWidth := len("aliases")
	for _, e := range h.entries {
		if w := runewidth.StringWidth(":" + e.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(strings.Join(e.Aliases, ", ")); w > aliasWidth {
			aliasWidth = w
		}
	}

	lines := []string{
		s.Highlight.Render("Commands"),
		s.Dim.Render("Type : to enter a command, Esc to go back, :q to quit."),
		"",
		s.TableHeader.Render(padCell("command", nameWidth) + "  " + padCell("aliases", aliasWidth) + "  description"),
	}
	for _, e := range h.entries {
		line := s.Bold.Render(padCell(":"+e.Name, nameWidth)) + "  " +
			s.Dim.Render(padCell(strings.Join(e.Aliases, ", "), aliasWidth)) + "  " +
			s.Normal.Render(e.Description)
		lines = append(lines, line)
	}
	return lines
}

// Render implements View.
func (h *HelpView) Render() string {
	lines := h.lines()
	if h.offset >= len(lines) {
		h.offset = 0
	}
	end := h.offset + h.height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[h.offset:end], "\n")
}

// ExitValue implements View.
func (h *HelpView) ExitValue() (values.Value, bool) {
	return values.Nothing(), false
}

// StatusLabels implements View.
func (h *HelpView) StatusLabels() (string, string) {
	total := len(h.lines())
	last := h.offset + h.height - 1
	if last >= total {
		last = total - 1
	}
	state := components.ScrollState{FirstVisible: h.offset, LastVisible: last, TotalItems: total}
	return "help", state.Position()
}
