// Package components provides shared TUI building blocks.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/peek/internal/tui/theme"
)

// ScrollState tracks scroll position within a viewport of items.
type ScrollState struct {
	FirstVisible int // Index of first visible item (0-indexed)
	LastVisible  int // Index of last visible item (0-indexed, inclusive)
	TotalItems   int // Total number of items
}

// HasMoreAbove returns true if there's content above the viewport.
func (s ScrollState) HasMoreAbove() bool {
	return s.FirstVisible > 0
}

// HasMoreBelow returns true if there's content below the viewport.
func (s ScrollState) HasMoreBelow() bool {
	return s.TotalItems > 0 && s.LastVisible < s.TotalItems-1
}

// AllVisible returns true if all items fit in the viewport.
func (s ScrollState) AllVisible() bool {
	return !s.HasMoreAbove() && !s.HasMoreBelow()
}

// Indicator returns the arrow indicator string based on scroll state.
// Returns "▲▼" when content above and below, "▲" for above only,
// "▼" for below only, or "" when all content is visible.
func (s ScrollState) Indicator() string {
	switch {
	case s.HasMoreAbove() && s.HasMoreBelow():
		return "▲▼"
	case s.HasMoreAbove():
		return "▲"
	case s.HasMoreBelow():
		return "▼"
	default:
		return ""
	}
}

// Position renders a compact "12-24/300 ▼" position label for status bars.
// Returns "" when everything is visible.
func (s ScrollState) Position() string {
	if s.AllVisible() {
		return ""
	}
	label := fmt.Sprintf("%d-%d/%d", s.FirstVisible+1, s.LastVisible+1, s.TotalItems)
	if ind := s.Indicator(); ind != "" {
		label += " " + ind
	}
	return label
}

// StyledPosition renders Position with the current theme's dim style.
func (s ScrollState) StyledPosition() string {
	pos := s.Position()
	if pos == "" {
		return ""
	}
	t := theme.Current()
	return lipgloss.NewStyle().Foreground(t.Overlay).Render(pos)
}
