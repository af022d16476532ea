package grid

import (
	"errors"
	"testing"
)

func TestNewRegistry_DuplicateExplicitID(t *testing.T) {
	_, err := NewRegistry([]Column[string]{
		{ID: "name", Name: "Name", Value: func(s string) Value { return NewText(s) }},
		{ID: "name", Name: "Other", Value: func(s string) Value { return NewText(s) }},
	})
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Fatalf("expected ErrDuplicateColumn, got %v", err)
	}
}

func TestNewRegistry_DerivedIDsAreUnique(t *testing.T) {
	// Two columns sharing a display name must still get distinct IDs.
	reg, err := NewRegistry([]Column[string]{
		{Name: "Value", Value: func(s string) Value { return NewText(s) }},
		{Name: "Value", Value: func(s string) Value { return NewText(s) }},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	cols := reg.Columns()
	if cols[0].ID == "" || cols[1].ID == "" {
		t.Fatal("derived IDs must not be empty")
	}
	if cols[0].ID == cols[1].ID {
		t.Errorf("derived IDs collide: %q", cols[0].ID)
	}
	for _, col := range cols {
		if _, ok := reg.Lookup(col.ID); !ok {
			t.Errorf("derived ID %q not resolvable", col.ID)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := NewRegistry([]Column[string]{
		{ID: "word", Name: "Word", Value: func(s string) Value { return NewText(s) }},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if col, ok := reg.Lookup("word"); !ok || col.Name != "Word" {
		t.Errorf("Lookup(word) = %+v, %v", col, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report not found")
	}
}

func TestNewRegistry_DoesNotMutateInput(t *testing.T) {
	input := []Column[string]{{Name: "Value", Value: func(s string) Value { return NewText(s) }}}
	if _, err := NewRegistry(input); err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if input[0].ID != "" {
		t.Errorf("caller slice mutated: ID = %q", input[0].ID)
	}
}

func TestWidthClass_Presets(t *testing.T) {
	tests := []struct {
		width WidthClass
		want  int
	}{
		{WidthS, 25},
		{WidthM, 150},
		{WidthL, 300},
		{WidthXL, 500},
		{WidthPixels(42), 42},
	}
	for _, tt := range tests {
		if got := tt.width.Pixels(); got != tt.want {
			t.Errorf("Pixels() = %d, want %d", got, tt.want)
		}
	}
}
