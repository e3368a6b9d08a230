package explore

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/explore/command"
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
	"github.com/Dicklesworthstone/peek/internal/watch"
)

// RunOptions configures one pager session.
type RunOptions struct {
	App        *config.Config
	Cwd        string
	StartInTry bool
	Tail       bool
	Raw        bool

	// FollowPath, when set, reloads the session whenever the file changes.
	FollowPath string
}

const (
	tryBanner  = "Started in :try mode. Enter evaluates, Tab opens the result."
	helpBanner = "For help type :help"
)

// startupBanner picks the transient message for the first frame. The help
// frame is the one place the hint would be noise.
func startupBanner(opts RunOptions, initial Page) string {
	if opts.StartInTry {
		return tryBanner
	}
	if _, ok := initial.View.(*views.HelpView); ok {
		return ""
	}
	return helpBanner
}

// Run classifies the pipeline, runs the pager over the terminal, and returns
// the exit value the user left on, if any. The registry is built fresh per
// invocation.
func Run(engine *query.Engine, pipe ingest.Pipeline, opts RunOptions) (*values.Value, error) {
	reg, err := command.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	vcfg := views.NewConfig(opts.App, opts.Cwd)

	initial, err := classify(pipe, opts, engine, vcfg)
	if err != nil {
		return nil, err
	}

	model := newPagerModel(initial, reg, engine, vcfg, startupBanner(opts, initial))
	prog := tea.NewProgram(model, tea.WithAltScreen())

	if opts.FollowPath != "" {
		follower, err := watch.Follow(opts.FollowPath, func() {
			reloaded, err := ingest.File(opts.FollowPath, ingest.Options{Raw: opts.Raw})
			if err != nil {
				return
			}
			page, err := classify(reloaded, opts, engine, vcfg)
			if err != nil {
				return
			}
			prog.Send(reloadMsg{page: page})
		})
		if err != nil {
			return nil, err
		}
		defer follower.Close()
	}

	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	return final.(*pagerModel).exitValue, nil
}
