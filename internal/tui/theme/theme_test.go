package theme

import (
	"os"
	"testing"
)

func TestFromName(t *testing.T) {
	t.Setenv("PEEK_NO_COLOR", "0") // force colors on regardless of CI env

	tests := []struct {
		name  string
		input string
		want  Theme
	}{
		{name: "mocha", input: "mocha", want: CatppuccinMocha},
		{name: "dark alias", input: "dark", want: CatppuccinMocha},
		{name: "latte", input: "latte", want: CatppuccinLatte},
		{name: "light alias", input: "light", want: CatppuccinLatte},
		{name: "nord", input: "nord", want: Nord},
		{name: "plain", input: "plain", want: Plain},
		{name: "case insensitive", input: "  NORD ", want: Nord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.input); got != tt.want {
				t.Errorf("FromName(%q) returned the wrong theme", tt.input)
			}
		})
	}
}

func TestNoColorEnabled(t *testing.T) {
	tests := []struct {
		name        string
		noColor     *string
		peekNoColor string
		want        bool
	}{
		{name: "nothing set", want: false},
		{name: "NO_COLOR present", noColor: ptr("1"), want: true},
		{name: "NO_COLOR empty still counts", noColor: ptr(""), want: true},
		{name: "PEEK_NO_COLOR on", peekNoColor: "1", want: true},
		{name: "PEEK_NO_COLOR overrides NO_COLOR", noColor: ptr("1"), peekNoColor: "0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "x") // register restore, then control precisely
			os.Unsetenv("NO_COLOR")
			if tt.noColor != nil {
				os.Setenv("NO_COLOR", *tt.noColor)
			}
			t.Setenv("PEEK_NO_COLOR", tt.peekNoColor)
			if got := NoColorEnabled(); got != tt.want {
				t.Errorf("NoColorEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }

func TestNewStyles_PlainUsesReverseSelection(t *testing.T) {
	styles := NewStyles(Plain)
	if !styles.CellSelected.GetReverse() {
		t.Error("plain theme selection should use reverse video")
	}
	if !styles.Error.GetUnderline() {
		t.Error("plain theme errors should be underlined")
	}
}
