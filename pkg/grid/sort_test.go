package grid

import (
	"reflect"
	"testing"
)

// wordColumns is the column set used across the sorting tests: the word
// itself and its length, both relying on the best-effort comparator.
func wordColumns(t *testing.T) *Registry[string] {
	t.Helper()
	reg, err := NewRegistry([]Column[string]{
		{ID: "word", Name: "Word", Value: func(s string) Value { return NewText(s) }},
		{ID: "length", Name: "Length", Value: func(s string) Value { return NewNumber(float64(len(s))) }},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func sortWords(reg *Registry[string], directives []Directive, words []string) []string {
	p := NewProjection[string]()
	p.SetComparator(ResolveComparator(directives, reg))
	p.SetContent(words)
	return p.Rows()
}

func TestResolveComparator_AscendingLength(t *testing.T) {
	reg := wordColumns(t)
	got := sortWords(reg, []Directive{{ColumnID: "length", Ascending: true}},
		[]string{"Shark", "Hammer", "Cod"})
	want := []string{"Cod", "Shark", "Hammer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ascending length sort = %v, want %v", got, want)
	}
}

func TestResolveComparator_DefaultDirectionIsDescending(t *testing.T) {
	reg := wordColumns(t)
	got := sortWords(reg, []Directive{{ColumnID: "length"}},
		[]string{"Cod", "Shark", "Hammer"})
	want := []string{"Hammer", "Shark", "Cod"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unflagged directive should sort descending: got %v, want %v", got, want)
	}
}

func TestResolveComparator_UnknownColumnSkipped(t *testing.T) {
	reg := wordColumns(t)
	directives := []Directive{
		{ColumnID: "stale-column"},
		{ColumnID: "length", Ascending: true},
	}
	got := sortWords(reg, directives, []string{"Hammer", "Cod", "Shark"})
	want := []string{"Cod", "Shark", "Hammer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stale directive should be ignored: got %v, want %v", got, want)
	}
}

func TestResolveComparator_AllUnknownYieldsNil(t *testing.T) {
	reg := wordColumns(t)
	if cmp := ResolveComparator([]Directive{{ColumnID: "gone"}}, reg); cmp != nil {
		t.Error("expected nil comparator when no directive resolves")
	}
	if cmp := ResolveComparator(nil, reg); cmp != nil {
		t.Error("expected nil comparator for empty directives")
	}
}

func TestResolveComparator_TieBreakPreservesOrder(t *testing.T) {
	reg := wordColumns(t)
	// All words share length 3; the unflagged directive compares them equal,
	// so the original relative order must survive.
	got := sortWords(reg, []Directive{{ColumnID: "length"}},
		[]string{"Cod", "Eel", "Ray"})
	want := []string{"Cod", "Eel", "Ray"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal keys must keep original order: got %v, want %v", got, want)
	}
}

func TestResolveComparator_SecondaryDirective(t *testing.T) {
	reg := wordColumns(t)
	directives := []Directive{
		{ColumnID: "length", Ascending: true},
		{ColumnID: "word", Ascending: true},
	}
	got := sortWords(reg, directives, []string{"Ray", "Cod", "Shark", "Eel"})
	want := []string{"Cod", "Eel", "Ray", "Shark"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("secondary directive not applied: got %v, want %v", got, want)
	}
}

func TestResolveComparator_ExplicitComparatorWins(t *testing.T) {
	reg, err := NewRegistry([]Column[string]{{
		ID:    "rev",
		Name:  "Reversed",
		Value: func(s string) Value { return NewText(s) },
		// Reverse lexicographic, to prove the explicit comparator is used
		// instead of the best-effort fallback.
		Compare: func(a, b string) int {
			switch {
			case a < b:
				return 1
			case a > b:
				return -1
			default:
				return 0
			}
		},
	}})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := sortWords(reg, []Directive{{ColumnID: "rev", Ascending: true}},
		[]string{"a", "c", "b"})
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("explicit comparator ignored: got %v, want %v", got, want)
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int // sign only
	}{
		{"numbers numerically", NewNumber(2), NewNumber(10), -1},
		{"text case-insensitive equal", NewText("shark"), NewText("SHARK"), 0},
		{"text ordered", NewText("cod"), NewText("shark"), -1},
		{"mixed coerced to string", NewNumber(10), NewText("2"), -1},
		{"bool coerced", NewBool(false), NewBool(true), -1},
		{"image refs", NewImage("a.png"), NewImage("b.png"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareValues(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareValues(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
			if back := CompareValues(tt.b, tt.a); sign(back) != -tt.want {
				t.Errorf("comparison not antisymmetric: %d vs %d", got, back)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
