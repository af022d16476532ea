package source

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "name,habitat,length\nCod,Atlantic,3\nShark,Pacific,5\n"
	d, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if !reflect.DeepEqual(d.Columns, []string{"name", "habitat", "length"}) {
		t.Errorf("columns = %v", d.Columns)
	}
	if len(d.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(d.Rows))
	}
	if got := d.Rows[1].Cell(0); got != "Shark" {
		t.Errorf("Rows[1].Cell(0) = %q", got)
	}
}

func TestReadCSV_RaggedRows(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := d.Rows[0].Cell(2); got != "" {
		t.Errorf("short row should read empty cell, got %q", got)
	}
	if got := d.Rows[0].Cell(-1); got != "" {
		t.Errorf("negative index should read empty cell, got %q", got)
	}
}

func TestReadCSV_EmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for missing header")
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fish.csv")
	if err := os.WriteFile(path, []byte("name\nCod\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if d.Name != "fish" {
		t.Errorf("dataset name = %q, want fish", d.Name)
	}
	if d.ColumnIndex("name") != 0 || d.ColumnIndex("missing") != -1 {
		t.Errorf("ColumnIndex lookup broken: %v", d.Columns)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
