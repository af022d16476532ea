package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/leaptable/pkg/grid"
	"github.com/leapstack-labs/leaptable/pkg/render"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the table once and exit",
		Long: `Render the configured table to stdout in a single shot.

The auto format picks the pretty table on a terminal and CSV when the
output is piped, so render works both interactively and in scripts.`,
		Example: `  # Render a CSV file as a table
  leaptable render --csv fish.csv

  # Machine-readable output for pipes
  leaptable render --csv fish.csv -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd)
			log := LoggerFrom(cmd)

			s, err := newSession(cmd.Context(), cfg, log, renderMode(cfg.Selection), nil, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Render(out, s.binder, resolveFormat(cfg.Output, out))
		},
	}
}

// renderMode strips the native selection modes: a one-shot render has no
// host widget, and an empty native selection renders the same as none.
func renderMode(mode grid.Mode) grid.Mode {
	if mode == grid.ModeCheckbox {
		return mode
	}
	return grid.ModeNone
}

// resolveFormat resolves "auto": pretty table on a terminal, CSV otherwise.
func resolveFormat(format string, out io.Writer) string {
	if format != "" && format != "auto" {
		return format
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "table"
	}
	return "csv"
}
