package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const manual = `# peek

Peek is an interactive explorer for structured data. It reads JSON, NDJSON,
YAML, plain text, or raw bytes and opens the view that fits: a table for
records and lists, a text preview for scalars, a hex dump for binary data.

## Keys

| Key | Action |
|-----|--------|
| arrows, hjkl | move the cursor |
| PgUp / PgDn / Home / End | page and jump |
| Enter | drill into the cell under the cursor |
| Esc | go back one frame |
| : | open the command line |
| q | quit |
| Ctrl-C | quit |

## Commands

- ` + "`:peek <expr>`" + ` evaluates an expression against the current frame
  and opens the result.
- ` + "`:table`" + ` renders the current value as a table.
- ` + "`:expand`" + ` (` + "`e`" + `) drills into the cell under the cursor.
- ` + "`:try [<expr>]`" + ` (` + "`T`" + `) opens the scratch pad.
- ` + "`:help [<name>]`" + ` (` + "`h`" + `) shows the command catalog.
- ` + "`:quit`" + ` (` + "`q`" + `, ` + "`q!`" + `) exits; ` + "`q!`" + ` discards the exit value.

## Expressions

A pipeline of stages separated by ` + "`|`" + `:

    get users.0.name
    where age >= 30 | select name age | first 5
    columns

Stages: get, first, last, reverse, length, columns, select, where. A bare
cell path is shorthand for get.

## Exit value

Quitting from a table prints the cell under the cursor to stdout as JSON,
so peek composes with shell pipelines. Use q! to suppress it.
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the manual",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderManual()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func renderManual() (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(docsWidth()),
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath("notty"))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(manual)
}

func docsWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || w > 100 {
		return 100
	}
	return w
}
