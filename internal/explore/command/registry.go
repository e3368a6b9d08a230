package command

import "fmt"

type entry struct {
	view      ViewCommand
	reactive  ReactiveCommand
	stackable bool
}

// Registry maps command names and aliases to their implementations. Aliases
// expand exactly one step and may never shadow a canonical name.
type Registry struct {
	entries map[string]entry
	aliases map[string]string
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
		aliases: make(map[string]string),
	}
}

func (r *Registry) register(name string, e entry) error {
	if name == "" {
		return fmt.Errorf("register: empty command name")
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register: duplicate command %q", name)
	}
	if _, ok := r.aliases[name]; ok {
		return fmt.Errorf("register: command %q collides with an alias", name)
	}
	r.entries[name] = e
	r.order = append(r.order, name)
	return nil
}

// RegisterView adds a frame-spawning command. Stackable controls whether the
// spawned frame pushes onto or replaces the current one.
func (r *Registry) RegisterView(cmd ViewCommand, stackable bool) error {
	return r.register(cmd.Name(), entry{view: cmd, stackable: stackable})
}

// RegisterReactive adds a command that acts on the pager itself.
func (r *Registry) RegisterReactive(cmd ReactiveCommand) error {
	return r.register(cmd.Name(), entry{reactive: cmd})
}

// Alias points alias at canonical. The target must already be registered.
func (r *Registry) Alias(alias, canonical string) error {
	if _, ok := r.entries[alias]; ok {
		return fmt.Errorf("alias %q shadows a command", alias)
	}
	if _, ok := r.aliases[alias]; ok {
		return fmt.Errorf("duplicate alias %q", alias)
	}
	if _, ok := r.entries[canonical]; !ok {
		return fmt.Errorf("alias %q points at unknown command %q", alias, canonical)
	}
	r.aliases[alias] = canonical
	return nil
}

// Resolved is a name lookup result. Exactly one of View and Reactive is set.
type Resolved struct {
	Name      string
	View      ViewCommand
	Reactive  ReactiveCommand
	Stackable bool
}

// Resolve looks name up, expanding an alias at most once.
func (r *Registry) Resolve(name string) (Resolved, bool) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	e, ok := r.entries[name]
	if !ok {
		return Resolved{}, false
	}
	return Resolved{Name: name, View: e.view, Reactive: e.reactive, Stackable: e.stackable}, true
}

// Names returns canonical command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
