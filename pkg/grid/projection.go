package grid

import "sort"

// Projection owns the canonical object collection and derives the row order
// presented to the renderer: sort(filter(canonical)). Every mutation
// recomputes synchronously on the calling goroutine, so callers observe a
// fully updated row order as soon as SetContent, SetFilter or SetComparator
// returns. A Projection is owned by exactly one table binding; projections
// never share a backing collection.
type Projection[T comparable] struct {
	content []T
	filter  func(T) bool
	compare func(a, b T) int
	rows    []T
	refresh func()
}

// NewProjection returns an empty projection.
func NewProjection[T comparable]() *Projection[T] {
	return &Projection[T]{}
}

// SetRefreshFunc installs the callback invoked after every recompute,
// typically the renderer's "reload all rows" signal.
func (p *Projection[T]) SetRefreshFunc(fn func()) { p.refresh = fn }

// SetContent replaces the canonical set wholesale and recomputes. The input
// slice is copied; later mutation by the caller does not leak in.
func (p *Projection[T]) SetContent(items []T) {
	p.content = append([]T(nil), items...)
	p.Recompute()
}

// SetFilter replaces the filter predicate and recomputes. A nil predicate
// means no filtering.
func (p *Projection[T]) SetFilter(pred func(T) bool) {
	p.filter = pred
	p.Recompute()
}

// SetComparator replaces the row comparator and recomputes. A nil comparator
// leaves the filtered set in its existing order.
func (p *Projection[T]) SetComparator(compare func(a, b T) int) {
	p.compare = compare
	p.Recompute()
}

// Recompute rebuilds the row order from the canonical set: filter, then a
// stable sort so rows equal under the comparator keep their relative order.
// Calling it twice without an intervening state change yields an identical
// row order.
func (p *Projection[T]) Recompute() {
	rows := make([]T, 0, len(p.content))
	for _, item := range p.content {
		if p.filter == nil || p.filter(item) {
			rows = append(rows, item)
		}
	}
	if p.compare != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			return p.compare(rows[i], rows[j]) < 0
		})
	}
	p.rows = rows
	if p.refresh != nil {
		p.refresh()
	}
}

// RowAt returns the object at the given position in the row order. Negative
// or out-of-range indexes return the zero value and false rather than
// failing.
func (p *Projection[T]) RowAt(index int) (T, bool) {
	if index < 0 || index >= len(p.rows) {
		var zero T
		return zero, false
	}
	return p.rows[index], true
}

// Len returns the number of rows in the current row order.
func (p *Projection[T]) Len() int { return len(p.rows) }

// Rows returns a snapshot of the current row order.
func (p *Projection[T]) Rows() []T {
	return append([]T(nil), p.rows...)
}

// Content returns a snapshot of the canonical (unfiltered, unsorted) set.
func (p *Projection[T]) Content() []T {
	return append([]T(nil), p.content...)
}

// IndicesOf translates objects back to their positions in the row order,
// used by native selection to drive index-based host APIs. Objects not
// present in the row order are dropped. Each object costs a linear scan, so
// the whole batch is O(n·m); value types are only guaranteed comparable, not
// usefully hashable, and row counts here are widget-sized.
func (p *Projection[T]) IndicesOf(objects []T) []int {
	indexes := make([]int, 0, len(objects))
	for _, obj := range objects {
		for i, row := range p.rows {
			if row == obj {
				indexes = append(indexes, i)
				break
			}
		}
	}
	return indexes
}
