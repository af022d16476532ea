package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaptable/internal/config"
	"github.com/leapstack-labs/leaptable/internal/source"
	"github.com/leapstack-labs/leaptable/pkg/grid"
)

// session wires a loaded dataset into a configured binder. It owns the
// dataset so the remove action can mutate it and push the change back.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	dataset *source.Dataset
	binder  *grid.Binder[*source.Row]
}

// newSession loads the configured data source and builds the binder around
// it. Host and confirm may be nil when mode does not need them.
func newSession(ctx context.Context, cfg *config.Config, log *slog.Logger,
	mode grid.Mode, host grid.Host, confirm grid.Confirmer) (*session, error) {

	dataset, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("dataset loaded", "name", dataset.Name, "columns", len(dataset.Columns), "rows", len(dataset.Rows))

	s := &session{cfg: cfg, log: log, dataset: dataset}

	cols, err := buildColumns(cfg, dataset)
	if err != nil {
		return nil, err
	}

	b, err := grid.New(grid.Options[*source.Row]{
		Content:   dataset.Rows,
		Columns:   cols,
		Actions:   s.buildActions(),
		Mode:      mode,
		Host:      host,
		Confirmer: confirm,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}
	s.binder = b

	if len(cfg.Sort) > 0 {
		directives := make([]grid.Directive, 0, len(cfg.Sort))
		for _, sc := range cfg.Sort {
			directives = append(directives, grid.Directive{ColumnID: sc.Column, Ascending: sc.Ascending})
		}
		b.SetDirectives(directives)
	}
	return s, nil
}

func loadDataset(ctx context.Context, cfg *config.Config) (*source.Dataset, error) {
	if cfg.Source.CSV != "" {
		return source.LoadCSV(cfg.Source.CSV)
	}
	return source.LoadQuery(ctx, cfg.Source.SQLite, cfg.Source.Query)
}

// reloadRows re-reads the CSV source in place. Only CSV sources support
// live reload.
func (s *session) reloadRows() ([]*source.Row, error) {
	dataset, err := source.LoadCSV(s.cfg.Source.CSV)
	if err != nil {
		return nil, err
	}
	s.dataset = dataset
	return dataset.Rows, nil
}

// buildColumns translates the column declarations into grid columns. With no
// declarations every dataset column is bound as text.
func buildColumns(cfg *config.Config, dataset *source.Dataset) ([]grid.Column[*source.Row], error) {
	if len(cfg.Columns) == 0 {
		cols := make([]grid.Column[*source.Row], len(dataset.Columns))
		for i, name := range dataset.Columns {
			cols[i] = grid.Column[*source.Row]{
				ID:    name,
				Name:  name,
				Value: textExtractor(i),
				Width: grid.WidthM,
			}
		}
		return cols, nil
	}

	cols := make([]grid.Column[*source.Row], 0, len(cfg.Columns))
	for _, cc := range cfg.Columns {
		idx := dataset.ColumnIndex(cc.Field)
		if idx < 0 {
			return nil, fmt.Errorf("column %q: dataset %s has no field %q", cc.Name, dataset.Name, cc.Field)
		}

		col := grid.Column[*source.Row]{
			ID:    cc.ID,
			Name:  cc.Name,
			Width: cc.Width,
			Align: cc.Align,
		}
		if col.ID == "" {
			col.ID = cc.Field
		}
		if col.Name == "" {
			col.Name = cc.Field
		}
		if cc.Numeric {
			col.Value = numberExtractor(idx)
		} else {
			col.Value = textExtractor(idx)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func textExtractor(index int) func(*source.Row) grid.Value {
	return func(r *source.Row) grid.Value {
		return grid.NewText(r.Cell(index))
	}
}

func numberExtractor(index int) func(*source.Row) grid.Value {
	return func(r *source.Row) grid.Value {
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Cell(index)), 64)
		if err != nil {
			return grid.NewText(r.Cell(index))
		}
		return grid.NewNumber(n)
	}
}

func (s *session) buildActions() []grid.Action[*source.Row] {
	actions := make([]grid.Action[*source.Row], 0, len(s.cfg.Actions))
	for _, ac := range s.cfg.Actions {
		switch ac.Kind {
		case "remove":
			actions = append(actions, grid.Action[*source.Row]{
				Label:             ac.Label,
				NeedsConfirmation: ac.Confirm,
				Apply:             s.removeRows,
			})
		case "export":
			actions = append(actions, grid.Action[*source.Row]{
				Label:             ac.Label,
				NeedsConfirmation: ac.Confirm,
				Apply:             s.exportRows,
			})
		}
	}
	return actions
}

// removeRows deletes the targets from the dataset and pushes the shrunken
// set back through the binder.
func (s *session) removeRows(targets []*source.Row) error {
	drop := make(map[*source.Row]struct{}, len(targets))
	for _, t := range targets {
		drop[t] = struct{}{}
	}

	kept := s.dataset.Rows[:0]
	for _, r := range s.dataset.Rows {
		if _, gone := drop[r]; !gone {
			kept = append(kept, r)
		}
	}
	s.dataset.Rows = kept
	s.binder.SetContent(kept)
	s.log.Debug("rows removed", "count", len(targets), "remaining", len(kept))
	return nil
}

// exportRows writes the targets to a CSV file next to the working directory.
func (s *session) exportRows(targets []*source.Row) error {
	name := filepath.Base(s.dataset.Name)
	if name == "" || name == "." {
		name = "leaptable"
	}
	path := name + "-export.csv"

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(s.dataset.Columns); err != nil {
		return err
	}
	for _, r := range targets {
		if err := w.Write(r.Cells); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	s.log.Info("rows exported", "count", len(targets), "path", path)
	return nil
}
