package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leaptable/internal/source"
	"github.com/leapstack-labs/leaptable/internal/tui"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the table interactively",
		Long: `Open the configured table in an interactive terminal session.

Navigate with the arrow keys, sort with s, filter with /, toggle checkbox
selection with space and trigger actions with the digit keys. With --watch
a CSV source reloads automatically when the file changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd)
			log := LoggerFrom(cmd)

			host := &tui.Host{}
			confirm := &tui.Confirm{}
			s, err := newSession(cmd.Context(), cfg, log, cfg.Selection, host, confirm)
			if err != nil {
				return err
			}

			opts := tui.Options{
				Title:   cfg.Title,
				Binder:  s.binder,
				Host:    host,
				Confirm: confirm,
				Logger:  log,
			}
			if cfg.Source.CSV != "" {
				opts.Reload = s.reloadRows
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				defer cancel()
				return tui.Run(ctx, opts, func(p *tea.Program) {
					if !cfg.Watch || cfg.Source.CSV == "" {
						return
					}
					g.Go(func() error {
						err := source.Watch(ctx, log, cfg.Source.CSV, func() {
							p.Send(tui.ReloadMsg{})
						})
						if errors.Is(err, context.Canceled) {
							return nil
						}
						return err
					})
				})
			})
			return g.Wait()
		},
	}
}
