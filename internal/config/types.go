// Package config loads the declarative table description for the leaptable
// CLI: data source, column list, initial sort, actions and selection mode.
// Configuration layers, highest priority last: built-in defaults, the
// leaptable.yaml file, LEAPTABLE_* environment variables, command flags.
package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leaptable/pkg/grid"
)

// Config is the root configuration.
type Config struct {
	// Title is shown in the TUI header.
	Title string `koanf:"title"`

	// Source selects where rows come from.
	Source SourceConfig `koanf:"source"`

	// Columns declares the bound columns. When empty, every dataset column
	// is bound with medium width.
	Columns []ColumnConfig `koanf:"columns"`

	// Sort is the initial sort directive list, in priority order.
	Sort []SortConfig `koanf:"sort"`

	// Actions declares the contextual actions offered on rows.
	Actions []ActionConfig `koanf:"actions"`

	// Selection is the selection mode: none, single, multi or checkbox.
	Selection grid.Mode `koanf:"selection"`

	// Watch reloads the source file on change (CSV sources only).
	Watch bool `koanf:"watch"`

	// Output is the render format: auto, table, csv, json or md.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// SourceConfig selects the data source. Exactly one of CSV or SQLite must
// be set; SQLite sources also need a query.
type SourceConfig struct {
	CSV    string `koanf:"csv"`
	SQLite string `koanf:"sqlite"`
	Query  string `koanf:"query"`
}

// ColumnConfig declares one bound column.
type ColumnConfig struct {
	// ID is the optional stable identifier; derived when empty.
	ID string `koanf:"id"`

	// Name is the header label. Defaults to the field name.
	Name string `koanf:"name"`

	// Field names the dataset column the value is extracted from.
	Field string `koanf:"field"`

	// Numeric extracts cells as numbers so they sort numerically.
	Numeric bool `koanf:"numeric"`

	// Width is a preset (S, M, L, XL) or an exact pixel size ("120px").
	Width grid.WidthClass `koanf:"width"`

	// Align is left, center or right.
	Align grid.Alignment `koanf:"align"`
}

// SortConfig is one initial sort directive. Direction defaults to the
// engine's descending contract; set ascending explicitly for smallest-first.
type SortConfig struct {
	Column    string `koanf:"column"`
	Ascending bool   `koanf:"ascending"`
}

// ActionConfig declares one contextual action.
type ActionConfig struct {
	// Label is the menu label.
	Label string `koanf:"label"`

	// Kind is the built-in behavior: "remove" or "export".
	Kind string `koanf:"kind"`

	// Confirm gates the action behind a confirmation step.
	Confirm bool `koanf:"confirm"`
}

// Validate checks the configuration for contradictions that would produce
// an unusable table.
func (c *Config) Validate() error {
	hasCSV := c.Source.CSV != ""
	hasSQLite := c.Source.SQLite != ""
	switch {
	case !hasCSV && !hasSQLite:
		return errors.New("no data source configured: set source.csv or source.sqlite")
	case hasCSV && hasSQLite:
		return errors.New("ambiguous data source: set only one of source.csv and source.sqlite")
	case hasSQLite && c.Source.Query == "":
		return errors.New("sqlite source requires source.query")
	}

	for i, a := range c.Actions {
		switch a.Kind {
		case "remove", "export":
		default:
			return fmt.Errorf("actions[%d]: unknown kind %q (want remove or export)", i, a.Kind)
		}
		if a.Label == "" {
			return fmt.Errorf("actions[%d]: label is required", i)
		}
	}

	switch c.Output {
	case "", "auto", "table", "csv", "json", "md", "markdown":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
