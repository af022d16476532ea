// Package render writes a bound table to an io.Writer. It is the static
// counterpart to the interactive TUI: same binder, one-shot output in a
// handful of formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"

	"github.com/leapstack-labs/leaptable/pkg/grid"
)

const selectedMark = "✓"

// Render writes the binder's current row order to w in the given format:
// "table" (default), "csv", "json" or "md"/"markdown".
func Render[T comparable](w io.Writer, b *grid.Binder[T], format string) error {
	switch format {
	case "json":
		return renderJSON(w, b)
	case "csv":
		return renderCSV(w, b)
	case "md", "markdown":
		return renderMarkdown(w, b)
	default:
		return Table(w, b)
	}
}

// Table renders the go-pretty table format: styled when w supports color,
// plain box drawing otherwise. In checkbox mode a marker column shows the
// manual selection.
func Table[T comparable](w io.Writer, b *grid.Binder[T]) error {
	if b.RowCount() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	cols := b.Columns()
	marked := b.Mode() == grid.ModeCheckbox

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle(w))
	t.SetColumnConfigs(columnConfigs(cols, marked))

	header := make(table.Row, 0, len(cols)+1)
	if marked {
		header = append(header, "")
	}
	for _, col := range cols {
		header = append(header, col.Name)
	}
	t.AppendHeader(header)

	for i := 0; i < b.RowCount(); i++ {
		row := make(table.Row, 0, len(cols)+1)
		if marked {
			row = append(row, markerFor(b, i))
		}
		for _, col := range cols {
			cell, _ := b.CellAt(i, col.ID)
			row = append(row, cell.String())
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", b.RowCount())
	return nil
}

func renderJSON[T comparable](w io.Writer, b *grid.Binder[T]) error {
	cols := b.Columns()
	results := make([]map[string]any, 0, b.RowCount())
	for i := 0; i < b.RowCount(); i++ {
		row := make(map[string]any, len(cols))
		for _, col := range cols {
			cell, _ := b.CellAt(i, col.ID)
			row[col.Name] = jsonValue(cell)
		}
		results = append(results, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderCSV[T comparable](w io.Writer, b *grid.Binder[T]) error {
	cols := b.Columns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = escapeCSV(col.Name)
	}
	_, _ = fmt.Fprintln(w, strings.Join(names, ","))

	for i := 0; i < b.RowCount(); i++ {
		values := make([]string, len(cols))
		for j, col := range cols {
			cell, _ := b.CellAt(i, col.ID)
			values[j] = escapeCSV(cell.String())
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown[T comparable](w io.Writer, b *grid.Binder[T]) error {
	if b.RowCount() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	cols := b.Columns()
	names := make([]string, len(cols))
	seps := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
		switch col.Align {
		case grid.AlignRight:
			seps[i] = "---:"
		case grid.AlignCenter:
			seps[i] = ":---:"
		default:
			seps[i] = "---"
		}
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(names, " | "))
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for i := 0; i < b.RowCount(); i++ {
		values := make([]string, len(cols))
		for j, col := range cols {
			cell, _ := b.CellAt(i, col.ID)
			values[j] = cell.String()
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

// tableStyle picks a colored style when the destination supports it and a
// plain light style otherwise, so piped and test output stays undecorated.
func tableStyle(w io.Writer) table.Style {
	if termenv.NewOutput(w).ColorProfile() != termenv.Ascii {
		return table.StyleColoredBright
	}
	return table.StyleLight
}

// columnConfigs translates width and alignment hints into go-pretty column
// configuration. Pixel widths assume roughly 8px per character cell.
func columnConfigs[T comparable](cols []grid.Column[T], marked bool) []table.ColumnConfig {
	offset := 1
	if marked {
		offset = 2
	}
	configs := make([]table.ColumnConfig, 0, len(cols))
	for i, col := range cols {
		configs = append(configs, table.ColumnConfig{
			Number:   i + offset,
			WidthMax: widthChars(col.Width),
			Align:    alignFor(col.Align),
		})
	}
	return configs
}

func widthChars(w grid.WidthClass) int {
	chars := w.Pixels() / 8
	if chars < 4 {
		chars = 4
	}
	return chars
}

func alignFor(a grid.Alignment) text.Align {
	switch a {
	case grid.AlignRight:
		return text.AlignRight
	case grid.AlignCenter:
		return text.AlignCenter
	default:
		return text.AlignLeft
	}
}

func markerFor[T comparable](b *grid.Binder[T], row int) string {
	sel := b.Selection()
	if sel == nil {
		return ""
	}
	obj, ok := b.RowAt(row)
	if !ok || !sel.IsSelected(obj) {
		return ""
	}
	return selectedMark
}

// jsonValue keeps numbers and booleans typed in JSON output instead of
// flattening everything to strings.
func jsonValue(v grid.Value) any {
	switch v.Kind {
	case grid.KindNumber:
		return v.Number
	case grid.KindBool:
		return v.Bool
	default:
		return v.String()
	}
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
