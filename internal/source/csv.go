package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadCSV reads a CSV file into a Dataset. The first record is the header.
// Ragged records are tolerated: short rows read as empty cells.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return d, nil
}

// ReadCSV reads CSV content from a reader. The first record is the header.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header record")
	}
	if err != nil {
		return nil, err
	}

	d := &Dataset{Columns: make([]string, len(header))}
	for i, col := range header {
		d.Columns[i] = strings.TrimSpace(col)
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		d.Rows = append(d.Rows, &Row{Cells: record})
	}
	return d, nil
}
