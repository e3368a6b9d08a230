package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/explore/command"
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/tui/components"
	"github.com/Dicklesworthstone/peek/internal/values"
)

type pagerMode int

const (
	modeView pagerMode = iota
	modeCommand
)

// reloadMsg replaces the whole stack with a freshly classified frame. Sent
// by the follow watcher when the input file changes.
type reloadMsg struct {
	page Page
}

// pagerModel is the root bubbletea model: the view stack, the command line,
// and the two message tiers.
type pagerModel struct {
	stack    Stack
	mode     pagerMode
	cmdline  textinput.Model
	registry *command.Registry
	engine   *query.Engine
	vcfg     views.Config

	banner string // transient, cleared on the next keystroke
	errMsg string // sticky, cleared on the next dispatch

	width  int
	height int

	done      bool
	exitValue *values.Value
}

func newPagerModel(initial Page, reg *command.Registry, engine *query.Engine, vcfg views.Config, banner string) *pagerModel {
	input := textinput.New()
	input.Prompt = ":"
	m := &pagerModel{
		registry: reg,
		engine:   engine,
		vcfg:     vcfg,
		cmdline:  input,
		banner:   banner,
		width:    80,
		height:   24,
	}
	m.stack.Push(initial)
	m.resizeTop()
	return m
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) viewportHeight() int {
	// Two bottom rows: status bar and command line.
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *pagerModel) resizeTop() {
	if top := m.stack.Top(); top != nil {
		top.View.Resize(m.width, m.viewportHeight())
	}
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.cmdline.Width = m.width - 2
		m.resizeTop()
		return m, nil
	case reloadMsg:
		m.stack = Stack{}
		m.stack.Push(msg.page)
		m.resizeTop()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *pagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.banner = ""

	if msg.Type == tea.KeyCtrlC {
		return m, m.quit(false)
	}
	if m.mode == modeCommand {
		return m.handleCommandKey(msg)
	}
	return m.handleViewKey(msg)
}

func (m *pagerModel) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveCommandMode()
		return m, nil
	case tea.KeyEnter:
		line := m.cmdline.Value()
		m.leaveCommandMode()
		return m, m.dispatch(line)
	}
	var cmd tea.Cmd
	m.cmdline, cmd = m.cmdline.Update(msg)
	return m, cmd
}

func (m *pagerModel) leaveCommandMode() {
	m.cmdline.SetValue("")
	m.cmdline.Blur()
	m.mode = modeView
}

func (m *pagerModel) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes && string(msg.Runes) == ":" {
		m.mode = modeCommand
		m.cmdline.SetValue("")
		m.cmdline.Focus()
		return m, nil
	}

	top := m.stack.Top()
	if top == nil {
		return m, m.quit(false)
	}

	tr, err := safeHandle(top.View, msg)
	if err != nil {
		m.popBrokenFrame(err)
		return m, m.maybeDone()
	}

	switch tr.Kind {
	case views.TransitionConsumed:
		return m, nil
	case views.TransitionPush:
		tr.View.Resize(m.width, m.viewportHeight())
		m.stack.Spawn(Page{View: tr.View, Stackable: tr.Stackable})
		return m, nil
	case views.TransitionPop:
		return m, m.pop(nil)
	case views.TransitionPopWith:
		v := tr.Value
		return m, m.pop(&v)
	case views.TransitionRunCommand:
		return m, m.dispatch(tr.Command)
	case views.TransitionQuit:
		return m, m.quit(false)
	}

	// The view ignored the event; fall back to the pager bindings.
	switch {
	case msg.Type == tea.KeyEsc:
		return m, m.pop(nil)
	case msg.Type == tea.KeyRunes && string(msg.Runes) == "q":
		return m, m.quit(false)
	}
	return m, nil
}

// pop removes the top frame. When the stack empties the session ends and the
// popped frame supplies the exit value, unless override carries one already.
func (m *pagerModel) pop(override *values.Value) tea.Cmd {
	popped, ok := m.stack.Pop()
	if !ok {
		return m.quit(false)
	}
	if m.stack.Len() == 0 {
		m.done = true
		if override != nil {
			m.exitValue = override
		} else if v, has := popped.View.ExitValue(); has {
			m.exitValue = &v
		}
		return tea.Quit
	}
	m.resizeTop()
	return nil
}

// quit ends the session from the current top frame.
func (m *pagerModel) quit(discard bool) tea.Cmd {
	m.done = true
	if !discard {
		if top := m.stack.Top(); top != nil {
			if v, has := top.View.ExitValue(); has {
				m.exitValue = &v
			}
		}
	}
	if discard {
		m.exitValue = nil
	}
	return tea.Quit
}

func (m *pagerModel) popBrokenFrame(err error) {
	m.stack.Pop()
	m.errMsg = fmt.Sprintf("view error: %v", err)
	m.resizeTop()
}

func (m *pagerModel) maybeDone() tea.Cmd {
	if m.stack.Len() == 0 {
		m.done = true
		return tea.Quit
	}
	return nil
}

// dispatch parses and runs one command line. Errors never abort the pager;
// they land on the status line.
func (m *pagerModel) dispatch(line string) tea.Cmd {
	m.errMsg = ""
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, rest := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		name, rest = line[:i], line[i+1:]
	}

	res, ok := m.registry.Resolve(name)
	if !ok {
		m.errMsg = fmt.Sprintf("unknown command: %s", name)
		return nil
	}

	if res.Reactive != nil {
		if err := res.Reactive.Parse(rest); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		switch res.Reactive.React() {
		case command.ReactionQuit:
			// The typed token decides discard: q! is an alias of quit.
			return m.quit(strings.HasSuffix(name, "!"))
		case command.ReactionQuitDiscard:
			return m.quit(true)
		}
		return nil
	}

	if err := res.View.Parse(rest); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	view, err := res.View.Spawn(m.commandContext())
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	view.Resize(m.width, m.viewportHeight())
	m.stack.Spawn(Page{View: view, Stackable: res.Stackable})
	return nil
}

// commandContext snapshots what view spawners may see of the current frame.
func (m *pagerModel) commandContext() command.Context {
	ctx := command.Context{
		Engine: m.engine,
		Cfg:    m.vcfg,
	}
	top := m.stack.Top()
	if top == nil {
		return ctx
	}
	if f, ok := top.View.(views.Framer); ok {
		ctx.Frame, ctx.HasFrame = f.FrameValue()
	}
	if d, ok := top.View.(views.Driller); ok {
		ctx.Cursor, ctx.HasCursor = d.DrillValue()
	} else {
		ctx.Cursor, ctx.HasCursor = top.View.ExitValue()
	}
	return ctx
}

// completionHint is the first registered command the buffer prefixes.
func (m *pagerModel) completionHint() string {
	buf := strings.TrimSpace(m.cmdline.Value())
	if buf == "" {
		return ""
	}
	for _, name := range m.registry.Names() {
		if strings.HasPrefix(name, buf) {
			return name
		}
	}
	return ""
}

func (m *pagerModel) statusLine() string {
	st := m.vcfg.Styles
	var left, right string

	top := m.stack.Top()
	if top != nil {
		left, right = top.View.StatusLabels()
	}

	style := st.StatusBar
	switch {
	case m.errMsg != "":
		left = m.errMsg
		style = st.Error
	case m.mode == modeCommand:
		if hint := m.completionHint(); hint != "" {
			left = ":" + hint
		}
	case m.banner != "":
		left = m.banner
		style = st.Info
	}

	return components.RenderStatusBar(components.StatusBarOptions{
		Left:  left,
		Right: right,
		Width: m.width,
		Style: style,
	})
}

func (m *pagerModel) View() string {
	if m.done {
		return ""
	}

	body := ""
	if top := m.stack.Top(); top != nil {
		rendered, err := safeRender(top.View)
		if err != nil {
			m.popBrokenFrame(err)
			if next := m.stack.Top(); next != nil {
				rendered, _ = safeRender(next.View)
			}
		}
		body = rendered
	}

	lines := strings.Split(body, "\n")
	vp := m.viewportHeight()
	if len(lines) > vp {
		lines = lines[:vp]
	}
	for len(lines) < vp {
		lines = append(lines, "")
	}

	cmdRow := ""
	if m.mode == modeCommand {
		cmdRow = m.cmdline.View()
	}

	return strings.Join(lines, "\n") + "\n" + m.statusLine() + "\n" + cmdRow
}

// safeHandle guards against a panicking view; the frame is popped instead of
// taking the terminal down.
func safeHandle(v views.View, msg tea.KeyMsg) (tr views.Transition, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return v.Handle(msg), nil
}

func safeRender(v views.View) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return v.Render(), nil
}
