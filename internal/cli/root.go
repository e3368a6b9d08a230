// Package cli wires the peek command line: flag parsing, input ingestion,
// and handing the pipeline to the pager.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/peek/internal/config"
	"github.com/Dicklesworthstone/peek/internal/explore"
	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

var (
	cfgFile   string
	themeName string
	startTry  bool
	tail      bool
	follow    bool
	rawInput  bool
	peekExpr  string

	// Build information - set by goreleaser via ldflags
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "peek [file]",
	Short: "Interactive explorer for structured data",
	Long: `Peek opens JSON, NDJSON, YAML, plain text, or raw bytes in an
interactive pager: tables for records and lists, a hex view for binary
data, and a scratch pad for trying small query expressions.

Quick Start:
  peek data.json                 # Explore a file
  cat data.json | peek           # Explore a pipe
  peek --try data.json           # Start in the :try scratch pad
  peek --peek "get users" x.json # Evaluate and print, no pager
  peek --tail --follow app.log   # Watch a growing file`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ~/.config/peek/config.toml)")
	flags.StringVar(&themeName, "theme", "", "color theme: mocha, latte, nord, plain, auto")
	flags.BoolVar(&startTry, "try", false, "start in the :try scratch pad")
	flags.BoolVar(&tail, "tail", false, "start scrolled to the last row")
	flags.BoolVar(&follow, "follow", false, "reload when the input file changes (implies --tail)")
	flags.BoolVar(&rawInput, "raw", false, "skip format detection, show raw bytes")
	flags.StringVar(&peekExpr, "peek", "", "evaluate an expression and print the result without the pager")
	rootCmd.Version = Version
}

// Execute runs the root command. Errors are printed to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "peek:", err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if follow && path == "" {
		return fmt.Errorf("--follow needs a file argument")
	}

	pipe, err := openInput(path)
	if err != nil {
		return err
	}

	engine := query.NewEngine()

	if peekExpr != "" {
		return evalAndPrint(cmd, engine, pipe)
	}

	opts := explore.RunOptions{
		App:        cfg,
		Cwd:        workingDir(),
		StartInTry: startTry,
		Tail:       tail || follow,
		Raw:        rawInput,
	}
	if follow {
		opts.FollowPath = path
	}
	if opts.Tail && !terminalSizeReadable() {
		opts.Tail = false
	}

	result, err := explore.Run(engine, pipe, opts)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Fprintln(cmd.OutOrStdout(), values.ToJSON(*result))
	}
	return nil
}

func openInput(path string) (ingest.Pipeline, error) {
	iopts := ingest.Options{Raw: rawInput}
	if path != "" {
		return ingest.File(path, iopts)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		// Nothing piped in; the classifier turns this into the help view.
		return ingest.Empty(), nil
	}
	return ingest.Reader(os.Stdin, iopts)
}

func evalAndPrint(cmd *cobra.Command, engine *query.Engine, pipe ingest.Pipeline) error {
	seed, err := ingest.SeedValue(pipe)
	if err != nil {
		return err
	}
	result, err := engine.Eval(peekExpr, seed)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), values.ToJSON(result))
	return nil
}

func terminalSizeReadable() bool {
	_, _, err := term.GetSize(int(os.Stdout.Fd()))
	return err == nil
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
