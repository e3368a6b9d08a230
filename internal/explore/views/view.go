// Package views contains the frames the pager can display and the capability
// contract they satisfy.
package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/tui/theme"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// View is the capability set every displayed frame must satisfy. Render must
// be idempotent and free of side effects; Handle must not block.
type View interface {
	// Resize sets the viewport the next Render fills.
	Resize(width, height int)
	// Render draws the full viewport as lines joined by newlines.
	Render() string
	// Handle reacts to one key event.
	Handle(msg tea.KeyMsg) Transition
	// ExitValue is consulted when the view is popped as the last frame.
	ExitValue() (values.Value, bool)
	// StatusLabels returns the left and right status bar labels.
	StatusLabels() (left, right string)
}

// Framer is implemented by views backed by a single value. Commands such as
// :peek and :table operate on that value.
type Framer interface {
	FrameValue() (values.Value, bool)
}

// Driller is implemented by views with a drill target under the cursor.
// :expand descends into the same cell Enter would.
type Driller interface {
	DrillValue() (values.Value, bool)
}

// Config is the frozen, read-only snapshot of display settings threaded to
// every view at construction.
type Config struct {
	App    *config.Config
	Theme  theme.Theme
	Styles theme.Styles
	Cwd    string
}

// NewConfig builds a view config snapshot from the app config.
func NewConfig(app *config.Config, cwd string) Config {
	t := theme.FromName(app.Theme)
	return Config{
		App:    app,
		Theme:  t,
		Styles: theme.NewStyles(t),
		Cwd:    cwd,
	}
}

// TransitionKind discriminates the variants of Transition.
type TransitionKind int

const (
	// TransitionIgnored means the view did not use the event.
	TransitionIgnored TransitionKind = iota
	// TransitionConsumed means the view used the event internally.
	TransitionConsumed
	// TransitionPush asks the pager to push a new frame.
	TransitionPush
	// TransitionPop asks the pager to pop the current frame.
	TransitionPop
	// TransitionPopWith pops and carries a value out of the layer.
	TransitionPopWith
	// TransitionRunCommand asks the pager to dispatch a command line.
	TransitionRunCommand
	// TransitionQuit ends the pager session.
	TransitionQuit
)

// Transition is the closed result type of View.Handle.
type Transition struct {
	Kind      TransitionKind
	View      View
	Stackable bool
	Value     values.Value
	HasValue  bool
	Command   string
}

func Ignore() Transition  { return Transition{Kind: TransitionIgnored} }
func Consume() Transition { return Transition{Kind: TransitionConsumed} }
func Quit() Transition    { return Transition{Kind: TransitionQuit} }
func Pop() Transition     { return Transition{Kind: TransitionPop} }

func Push(v View, stackable bool) Transition {
	return Transition{Kind: TransitionPush, View: v, Stackable: stackable}
}

func PopWith(v values.Value) Transition {
	return Transition{Kind: TransitionPopWith, Value: v, HasValue: true}
}

func RunCommand(line string) Transition {
	return Transition{Kind: TransitionRunCommand, Command: line}
}

// ViewFor picks the natural view for a value: records and lists get a record
// view, binary gets the hex view, anything else a text preview.
func ViewFor(v values.Value, cfg Config) View {
	switch v.Kind {
	case values.KindRecord:
		return NewRecordViewFromValue(v, cfg)
	case values.KindList:
		return NewRecordViewFromValue(v, cfg)
	case values.KindBinary:
		return NewBinaryView(v.Bytes, cfg)
	default:
		return NewPreview(values.Pretty(v), cfg)
	}
}
