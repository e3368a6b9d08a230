// Package theme defines the color palettes and prebuilt styles for the
// explorer UI.
package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines a complete color palette for the explorer.
type Theme struct {
	// Base colors
	Base     lipgloss.Color // Background
	Surface0 lipgloss.Color // Surface
	Surface1 lipgloss.Color // Surface highlight
	Surface2 lipgloss.Color // Surface bright

	// Text colors
	Text    lipgloss.Color // Primary text
	Subtext lipgloss.Color // Secondary text
	Overlay lipgloss.Color // Dimmed text

	// Accent colors
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Mauve    lipgloss.Color
	Lavender lipgloss.Color

	// Semantic colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Value-kind colors used by the data views
	NumberValue lipgloss.Color
	StringValue lipgloss.Color
	BoolValue   lipgloss.Color
	NothingHint lipgloss.Color
}

// CatppuccinMocha is the flagship dark theme.
var CatppuccinMocha = Theme{
	Base:     lipgloss.Color("#1e1e2e"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Surface2: lipgloss.Color("#585b70"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),

	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Mauve:    lipgloss.Color("#cba6f7"),
	Lavender: lipgloss.Color("#b4befe"),

	Primary: lipgloss.Color("#89b4fa"),
	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
	Info:    lipgloss.Color("#89dceb"),

	NumberValue: lipgloss.Color("#fab387"),
	StringValue: lipgloss.Color("#a6e3a1"),
	BoolValue:   lipgloss.Color("#cba6f7"),
	NothingHint: lipgloss.Color("#6c7086"),
}

// CatppuccinLatte is the light theme for light terminals.
var CatppuccinLatte = Theme{
	Base:     lipgloss.Color("#eff1f5"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#7c7f93"),

	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Teal:     lipgloss.Color("#179299"),
	Blue:     lipgloss.Color("#1e66f5"),
	Mauve:    lipgloss.Color("#8839ef"),
	Lavender: lipgloss.Color("#7287fd"),

	Primary: lipgloss.Color("#1e66f5"),
	Success: lipgloss.Color("#40a02b"),
	Warning: lipgloss.Color("#df8e1d"),
	Error:   lipgloss.Color("#d20f39"),
	Info:    lipgloss.Color("#04a5e5"),

	NumberValue: lipgloss.Color("#fe640b"),
	StringValue: lipgloss.Color("#40a02b"),
	BoolValue:   lipgloss.Color("#8839ef"),
	NothingHint: lipgloss.Color("#7c7f93"),
}

// Nord is the arctic theme.
var Nord = Theme{
	Base:     lipgloss.Color("#2e3440"),
	Surface0: lipgloss.Color("#3b4252"),
	Surface1: lipgloss.Color("#434c5e"),
	Surface2: lipgloss.Color("#4c566a"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Overlay: lipgloss.Color("#7b88a1"),

	Red:      lipgloss.Color("#bf616a"),
	Peach:    lipgloss.Color("#d08770"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Green:    lipgloss.Color("#a3be8c"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Blue:     lipgloss.Color("#5e81ac"),
	Mauve:    lipgloss.Color("#b48ead"),
	Lavender: lipgloss.Color("#81a1c1"),

	Primary: lipgloss.Color("#88c0d0"),
	Success: lipgloss.Color("#a3be8c"),
	Warning: lipgloss.Color("#ebcb8b"),
	Error:   lipgloss.Color("#bf616a"),
	Info:    lipgloss.Color("#81a1c1"),

	NumberValue: lipgloss.Color("#d08770"),
	StringValue: lipgloss.Color("#a3be8c"),
	BoolValue:   lipgloss.Color("#b48ead"),
	NothingHint: lipgloss.Color("#7b88a1"),
}

// Plain is a no-color theme that uses terminal defaults. Used when NO_COLOR
// is set or for accessibility needs.
var Plain = Theme{}

// NoColorEnabled returns true if color output should be disabled.
// Respects the NO_COLOR standard (https://no-color.org/):
// - If NO_COLOR exists in environment (any value), colors are disabled
// - PEEK_NO_COLOR=1 also disables colors
// - PEEK_NO_COLOR=0 forces colors ON (overrides NO_COLOR)
func NoColorEnabled() bool {
	peekNoColor := strings.TrimSpace(os.Getenv("PEEK_NO_COLOR"))
	switch strings.ToLower(peekNoColor) {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}
	_, noColorSet := os.LookupEnv("NO_COLOR")
	return noColorSet
}

// FromName returns a theme by name.
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "nord":
		return Nord
	case "latte", "light":
		return CatppuccinLatte
	case "mocha", "dark":
		return CatppuccinMocha
	default:
		return autoTheme()
	}
}

// Current returns the active theme based on the PEEK_THEME env var.
func Current() Theme {
	return FromName(os.Getenv("PEEK_THEME"))
}

// detectDarkBackground inspects the terminal to determine if a dark
// background is in use. Defined as a variable for testability.
var detectDarkBackground = func() bool {
	output := termenv.NewOutput(os.Stdout)
	return output.HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha

		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()

		if !detectDarkBackground() {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Normal    lipgloss.Style
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	TableHeader  lipgloss.Style
	CellSelected lipgloss.Style
	RowIndex     lipgloss.Style

	StatusBar lipgloss.Style
	CmdLine   lipgloss.Style
}

// NewStyles creates a Styles instance from a theme.
func NewStyles(t Theme) Styles {
	styles := Styles{
		Normal: lipgloss.NewStyle().
			Foreground(t.Text),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),

		Dim: lipgloss.NewStyle().
			Foreground(t.Overlay),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),

		Info: lipgloss.NewStyle().
			Foreground(t.Info),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		CellSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Base).
			Background(t.Primary),

		RowIndex: lipgloss.NewStyle().
			Foreground(t.Overlay),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Surface0),

		CmdLine: lipgloss.NewStyle().
			Foreground(t.Text),
	}

	// Low-color guard rails: selection must not depend on background shades
	// and warnings must not rely on color alone.
	if t == Plain {
		styles.CellSelected = lipgloss.NewStyle().Bold(true).Reverse(true)
		styles.Warning = styles.Warning.Underline(true)
		styles.Error = styles.Error.Underline(true)
	}

	return styles
}

// DefaultStyles returns styles for the current theme.
func DefaultStyles() Styles {
	return NewStyles(Current())
}
