package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/tui/components"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// BinaryView is the hex dump frame: offset gutter, hex bytes, ASCII gutter.
type BinaryView struct {
	cfg    Config
	data   []byte
	offset int // first visible line
	width  int
	height int
}

// NewBinaryView builds a hex view over realized bytes.
func NewBinaryView(data []byte, cfg Config) *BinaryView {
	return &BinaryView{cfg: cfg, data: data, width: 80, height: 24}
}

func (b *BinaryView) bytesPerLine() int {
	if n := b.cfg.App.Binary.BytesPerLine; n > 0 {
		return n
	}
	return 16
}

func (b *BinaryView) totalLines() int {
	per := b.bytesPerLine()
	return (len(b.data) + per - 1) / per
}

// Resize implements View.
func (b *BinaryView) Resize(width, height int) {
	b.width, b.height = width, height
}

// FrameValue implements Framer.
func (b *BinaryView) FrameValue() (values.Value, bool) {
	return values.Binary(b.data), true
}

// Handle implements View.
func (b *BinaryView) Handle(msg tea.KeyMsg) Transition {
	total := b.totalLines()
	page := b.height
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, previewKeys.Up):
		b.scroll(-1, total)
	case key.Matches(msg, previewKeys.Down):
		b.scroll(1, total)
	case key.Matches(msg, previewKeys.PageUp):
		b.scroll(-page, total)
	case key.Matches(msg, previewKeys.PageDown):
		b.scroll(page, total)
	case key.Matches(msg, previewKeys.Home):
		b.offset = 0
	case key.Matches(msg, previewKeys.End):
		b.offset = total - b.height
		if b.offset < 0 {
			b.offset = 0
		}
	default:
		return Ignore()
	}
	return Consume()
}

func (b *BinaryView) scroll(delta, total int) {
	b.offset += delta
	maxOffset := total - b.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if b.offset > maxOffset {
		b.offset = maxOffset
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// Render implements View.
func (b *BinaryView) Render() string {
	if len(b.data) == 0 {
		return b.cfg.Styles.Dim.Render("(empty)")
	}
	per := b.bytesPerLine()
	total := b.totalLines()
	end := b.offset + b.height
	if end > total {
		end = total
	}

	var lines []string
	for line := b.offset; line < end; line++ {
		start := line * per
		stop := start + per
		if stop > len(b.data) {
			stop = len(b.data)
		}
		lines = append(lines, b.renderLine(start, b.data[start:stop], per))
	}
	return strings.Join(lines, "\n")
}

func (b *BinaryView) renderLine(addr int, chunk []byte, per int) string {
	var hex strings.Builder
	var ascii strings.Builder
	for i := 0; i < per; i++ {
		if i > 0 {
			hex.WriteByte(' ')
			if i%8 == 0 {
				hex.WriteByte(' ')
			}
		}
		if i < len(chunk) {
			fmt.Fprintf(&hex, "%02x", chunk[i])
			c := chunk[i]
			if c >= 0x20 && c < 0x7f {
				ascii.WriteByte(c)
			} else {
				ascii.WriteByte('.')
			}
		} else {
			hex.WriteString("  ")
			ascii.WriteByte(' ')
		}
	}

	s := b.cfg.Styles
	return s.RowIndex.Render(fmt.Sprintf("%08x", addr)) + "  " +
		s.Normal.Foreground(b.cfg.Theme.NumberValue).Render(hex.String()) + "  " +
		s.Dim.Render(ascii.String())
}

// ExitValue implements View. The hex view is display-only.
func (b *BinaryView) ExitValue() (values.Value, bool) {
	return values.Nothing(), false
}

// StatusLabels implements View.
func (b *BinaryView) StatusLabels() (string, string) {
	total := b.totalLines()
	last := b.offset + b.height - 1
	if last >= total {
		last = total - 1
	}
	state := components.ScrollState{FirstVisible: b.offset, LastVisible: last, TotalItems: total}
	right := fmt.Sprintf("%d bytes", len(b.data))
	if pos := state.Position(); pos != "" {
		right += " " + pos
	}
	return "binary", right
}
