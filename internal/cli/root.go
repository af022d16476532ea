// Package cli provides the command-line interface for leaptable.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaptable/internal/cli/commands"
	"github.com/leapstack-labs/leaptable/internal/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leaptable",
		Short: "leaptable - declarative tables in the terminal",
		Long: `leaptable binds tabular data to an interactive terminal table.

Declare columns, sorting, selection and row actions in leaptable.yaml,
point it at a CSV file or SQLite query, then browse the result or render
it for scripting.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if used := config.ConfigFileUsed(); used != "" {
				log.Debug("using config file", "path", used)
			}

			cmd.SetContext(commands.WithLogger(commands.WithConfig(cmd.Context(), cfg), log))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags; these layer over leaptable.yaml.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./leaptable.yaml)")
	rootCmd.PersistentFlags().String("csv", "", "CSV file to load")
	rootCmd.PersistentFlags().String("sqlite", "", "SQLite database to load")
	rootCmd.PersistentFlags().String("query", "", "SQL query for SQLite sources")
	rootCmd.PersistentFlags().String("selection", "", "Selection mode (none|single|multi|checkbox)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Render format (auto|table|csv|json|md)")
	rootCmd.PersistentFlags().Bool("watch", false, "Reload when the source file changes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "table", "csv", "json", "md"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("selection", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "single", "multi", "checkbox"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
