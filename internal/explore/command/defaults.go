package command

// DefaultRegistry wires the built-in command set and its aliases.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	views := []struct {
		cmd       ViewCommand
		stackable bool
	}{
		{NewPeekCmd(), true},
		{NewTableCmd(), true},
		{NewExpandCmd(), false},
		{NewTryCmd(), false},
		{NewHelpCmd(), false},
	}
	for _, v := range views {
		if err := r.RegisterView(v.cmd, v.stackable); err != nil {
			return nil, err
		}
	}
	if err := r.RegisterReactive(NewQuitCmd()); err != nil {
		return nil, err
	}
	aliases := [][2]string{
		{"e", "expand"},
		{"T", "try"},
		{"h", "help"},
		{"q", "quit"},
		{"q!", "quit"},
	}
	for _, a := range aliases {
		if err := r.Alias(a[0], a[1]); err != nil {
			return nil, err
		}
	}
	return r, nil
}
