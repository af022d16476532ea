package grid

import "sort"

// Mode selects the selection strategy for a binding.
type Mode int

const (
	// ModeNone disables selection entirely.
	ModeNone Mode = iota
	// ModeSingleNative delegates single-row selection to the host widget.
	ModeSingleNative
	// ModeMultiNative delegates multi-row selection to the host widget.
	ModeMultiNative
	// ModeCheckbox tracks an explicit set of selected objects independent
	// of the host widget's row selection.
	ModeCheckbox
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSingleNative:
		return "single"
	case ModeMultiNative:
		return "multi"
	case ModeCheckbox:
		return "checkbox"
	default:
		return "unknown"
	}
}

// Selection is the capability set shared by both selection strategies.
type Selection[T comparable] interface {
	// Selected returns the currently selected objects in selection order.
	Selected() []T
	// Select replaces the selection with exactly the given objects, or adds
	// them to the existing selection when extend is true.
	Select(objects []T, extend bool)
	// IsSelected reports whether the object is part of the selection.
	IsSelected(obj T) bool
}

// Host is the index-set owner a native selection delegates to, implemented
// by the embedding widget. Indexes refer to positions in the current row
// order; the host is expected to drop indexes that disappear when rows are
// reloaded, per native widget semantics.
type Host interface {
	SelectedIndexes() []int
	SetSelectedIndexes(indexes []int)
}

// NativeSelection delegates selection state to a host widget's index set
// and translates between objects and row-order positions. Because the host
// stores positions, selection by index does not survive unrelated
// reordering; callers that need stability across content changes should use
// the checkbox model instead.
type NativeSelection[T comparable] struct {
	proj   *Projection[T]
	host   Host
	single bool
}

// NewNativeSelection returns a selection delegating to the given host.
func NewNativeSelection[T comparable](proj *Projection[T], host Host, single bool) *NativeSelection[T] {
	return &NativeSelection[T]{proj: proj, host: host, single: single}
}

// Selected maps the host's index set through the current row order. Indexes
// the host reports that fall outside the row order are skipped.
func (s *NativeSelection[T]) Selected() []T {
	indexes := s.host.SelectedIndexes()
	objects := make([]T, 0, len(indexes))
	for _, i := range indexes {
		if obj, ok := s.proj.RowAt(i); ok {
			objects = append(objects, obj)
		}
	}
	return objects
}

// Select translates objects to row-order indexes and applies them to the
// host. Objects not present in the row order are dropped. In single mode
// only the first resolved index is applied.
func (s *NativeSelection[T]) Select(objects []T, extend bool) {
	indexes := s.proj.IndicesOf(objects)
	if extend {
		indexes = mergeIndexes(s.host.SelectedIndexes(), indexes)
	}
	if s.single && len(indexes) > 1 {
		indexes = indexes[:1]
	}
	s.host.SetSelectedIndexes(indexes)
}

// IsSelected reports whether the object is in the host's selection.
func (s *NativeSelection[T]) IsSelected(obj T) bool {
	for _, sel := range s.Selected() {
		if sel == obj {
			return true
		}
	}
	return false
}

// mergeIndexes unions two index sets, deduplicated and in ascending order.
func mergeIndexes(existing, added []int) []int {
	seen := make(map[int]struct{}, len(existing)+len(added))
	merged := make([]int, 0, len(existing)+len(added))
	for _, i := range append(append([]int(nil), existing...), added...) {
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		merged = append(merged, i)
	}
	sort.Ints(merged)
	return merged
}

// ManualSelection tracks an explicit, ordered, equality-deduplicated set of
// selected objects, independent of the host widget (the checkbox model).
// The selection is stable across row order changes because it stores
// objects, not positions, and it is deliberately NOT pruned when the
// canonical set changes: callers that want pruning re-sync explicitly.
type ManualSelection[T comparable] struct {
	items     []T
	observers []func([]T)
}

// NewManualSelection returns an empty manual selection.
func NewManualSelection[T comparable]() *ManualSelection[T] {
	return &ManualSelection[T]{}
}

// Subscribe registers an observer invoked synchronously, in registration
// order, after every selection change and before the mutating call returns.
// Observers may read the updated selection during the callback. An observer
// that mutates the selection again is the caller's responsibility: the
// engine is single-threaded and places no reentrancy guard here.
func (s *ManualSelection[T]) Subscribe(fn func(selected []T)) {
	s.observers = append(s.observers, fn)
}

// Selected returns the selected objects in selection order.
func (s *ManualSelection[T]) Selected() []T {
	return append([]T(nil), s.items...)
}

// Select replaces the selection with exactly the given objects
// (deduplicated, order preserved), or adds them when extend is true.
// Observers are notified even if the resulting set is unchanged, since the
// caller performed an explicit bulk operation.
func (s *ManualSelection[T]) Select(objects []T, extend bool) {
	if !extend {
		s.items = dedup(objects)
		s.notify()
		return
	}
	for _, obj := range objects {
		if !s.contains(obj) {
			s.items = append(s.items, obj)
		}
	}
	s.notify()
}

// SetSelected sets the selection state of a single object, as driven by a
// per-row checkbox control. It notifies through the same path as Select,
// but only when the state actually changed.
func (s *ManualSelection[T]) SetSelected(obj T, selected bool) {
	if selected == s.contains(obj) {
		return
	}
	if selected {
		s.items = append(s.items, obj)
	} else {
		kept := s.items[:0]
		for _, item := range s.items {
			if item != obj {
				kept = append(kept, item)
			}
		}
		s.items = kept
	}
	s.notify()
}

// IsSelected reports whether the object is part of the selection.
func (s *ManualSelection[T]) IsSelected(obj T) bool { return s.contains(obj) }

func (s *ManualSelection[T]) contains(obj T) bool {
	for _, item := range s.items {
		if item == obj {
			return true
		}
	}
	return false
}

func (s *ManualSelection[T]) notify() {
	for _, fn := range s.observers {
		fn(s.Selected())
	}
}

// dedup removes duplicates by equality, preserving first-occurrence order.
func dedup[T comparable](objects []T) []T {
	out := make([]T, 0, len(objects))
	for _, obj := range objects {
		dup := false
		for _, kept := range out {
			if kept == obj {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, obj)
		}
	}
	return out
}
