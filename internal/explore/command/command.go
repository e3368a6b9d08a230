// Package command implements the :command surface of the pager.
package command

import (
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// Command is the metadata every command carries.
type Command interface {
	// Name is the canonical command name, without the leading colon.
	Name() string
	// Description is the one-line catalog text.
	Description() string
}

// ViewCommand spawns a new frame from its arguments and the current frame's
// value. Parse receives the raw argument text verbatim.
type ViewCommand interface {
	Command
	Parse(args string) error
	Spawn(ctx Context) (views.View, error)
}

// Reaction is the result of a reactive command.
type Reaction int

const (
	// ReactionContinue keeps the pager running.
	ReactionContinue Reaction = iota
	// ReactionQuit ends the session, surfacing the top frame's exit value.
	ReactionQuit
	// ReactionQuitDiscard ends the session and discards any exit value.
	ReactionQuitDiscard
)

// ReactiveCommand mutates pager state without producing a frame.
type ReactiveCommand interface {
	Command
	Parse(args string) error
	React() Reaction
}

// Context is what a view spawner sees of the pager: the evaluator, the view
// config snapshot, and the values of the current frame.
type Context struct {
	Engine *query.Engine
	Cfg    views.Config

	// Frame is the current frame's value, when the frame has one.
	Frame    values.Value
	HasFrame bool

	// Cursor is the value under the frame's cursor, when there is one.
	Cursor    values.Value
	HasCursor bool
}

// Manual is the static catalog rendered by :help. It must list every
// registered command with its aliases.
func Manual() []views.HelpEntry {
	return []views.HelpEntry{
		{Name: "peek", Description: "evaluate an expression against the current frame and open the result"},
		{Name: "table", Description: "render the current value as a table"},
		{Name: "expand", Aliases: []string{"e"}, Description: "drill into the cell under the cursor"},
		{Name: "try", Aliases: []string{"T"}, Description: "open a scratch pad, optionally pre-filled with an expression"},
		{Name: "help", Aliases: []string{"h"}, Description: "show this command catalog"},
		{Name: "quit", Aliases: []string{"q", "q!"}, Description: "exit; q! discards the pending exit value"},
	}
}
