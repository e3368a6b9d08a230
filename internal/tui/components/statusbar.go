package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/Dicklesworthstone/peek/internal/tui/theme"
)

// StatusBarOptions configures a single status line.
type StatusBarOptions struct {
	Left  string // Left-aligned label (view name, message, error)
	Right string // Right-aligned label (position, dimensions)
	Width int
	Style lipgloss.Style
}

// RenderStatusBar lays out left and right labels on one line of exactly
// Width cells. The left label wins space; the right label is dropped before
// it would collide.
func RenderStatusBar(opts StatusBarOptions) string {
	width := opts.Width
	if width <= 0 {
		return ""
	}

	left := singleLine(opts.Left)
	right := singleLine(opts.Right)

	left = truncate.StringWithTail(left, uint(width), "…")
	leftWidth := runewidth.StringWidth(left)

	rightWidth := runewidth.StringWidth(right)
	gap := width - leftWidth - rightWidth
	if gap < 1 && right != "" {
		right = ""
		gap = width - leftWidth
	}

	if gap < 0 {
		gap = 0
	}
	line := left + strings.Repeat(" ", gap) + right
	if runewidth.StringWidth(line) < width {
		line += strings.Repeat(" ", width-runewidth.StringWidth(line))
	}
	return opts.Style.Render(line)
}

// DefaultStatusStyle returns the themed status bar style.
func DefaultStatusStyle() lipgloss.Style {
	return theme.DefaultStyles().StatusBar
}

// singleLine collapses multi-line content to its first line plus an ellipsis.
func singleLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx] + "…"
	}
	return s
}
