package grid

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Directive is a single (column, direction) sort instruction. Zero or more
// directives may be active at once, in priority order: the first directive
// is the primary sort key.
//
// The default direction for an unflagged directive is DESCENDING. This is an
// intentional, fixed contract, not a bug: set Ascending explicitly to sort
// smallest-first.
type Directive struct {
	ColumnID  string
	Ascending bool
}

// textCollator orders text case-insensitively. The engine is single-threaded
// by contract, so the shared collator needs no locking.
var textCollator = collate.New(language.Und, collate.IgnoreCase)

// ResolveComparator derives a total order over rows from the active
// directives. Directives naming unknown columns are silently skipped, so a
// stale directive left over from a column set change never breaks sorting.
// Directives combine lexicographically: the first non-equal comparison wins,
// and rows equal under every directive keep their relative order (the caller
// must sort stably). With no usable directives the result is nil, meaning
// the filtered set keeps its existing order.
func ResolveComparator[T comparable](directives []Directive, reg *Registry[T]) func(a, b T) int {
	type key struct {
		compare   func(a, b T) int
		ascending bool
	}

	var keys []key
	for _, d := range directives {
		col, ok := reg.Lookup(d.ColumnID)
		if !ok {
			continue
		}
		compare := col.Compare
		if compare == nil {
			compare = bestEffortComparator(col.Value)
		}
		keys = append(keys, key{compare: compare, ascending: d.Ascending})
	}
	if len(keys) == 0 {
		return nil
	}

	return func(a, b T) int {
		for _, k := range keys {
			c := k.compare(a, b)
			if !k.ascending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	}
}

// bestEffortComparator builds a comparator from a display value extractor
// for columns that did not supply one. Numbers compare numerically, text
// compares case-insensitively, and any other pairing falls back to string
// coercion of both operands, so a total order is always producible and the
// comparison never fails.
func bestEffortComparator[T comparable](extract func(T) Value) func(a, b T) int {
	return func(a, b T) int {
		return CompareValues(extract(a), extract(b))
	}
}

// CompareValues is the best-effort three-way comparison over display values.
func CompareValues(a, b Value) int {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		return cmp.Compare(a.Number, b.Number)
	}
	if a.Kind == KindText && b.Kind == KindText {
		return textCollator.CompareString(a.Text, b.Text)
	}
	return textCollator.CompareString(a.String(), b.String())
}
