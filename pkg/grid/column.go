package grid

import (
	"fmt"

	"github.com/google/uuid"
)

// WidthClass is a presentation hint for column width, expressed in pixels.
// The named presets cover the common cases; any other positive value is an
// exact pixel width. The core never enforces widths, it only carries them
// for the rendering layer.
type WidthClass int

const (
	// WidthS is a small column (25px), suitable for icons and toggles.
	WidthS WidthClass = 25
	// WidthM is a medium column (150px).
	WidthM WidthClass = 150
	// WidthL is a large column (300px).
	WidthL WidthClass = 300
	// WidthXL is an extra large column (500px).
	WidthXL WidthClass = 500
)

// WidthPixels returns an exact pixel width.
func WidthPixels(px int) WidthClass { return WidthClass(px) }

// Pixels returns the width in pixels.
func (w WidthClass) Pixels() int { return int(w) }

// Alignment is a presentation hint for horizontal cell alignment.
type Alignment int

const (
	// AlignLeft aligns cell content to the left.
	AlignLeft Alignment = iota
	// AlignCenter centers cell content.
	AlignCenter
	// AlignRight aligns cell content to the right.
	AlignRight
)

// String returns the string representation of an Alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Column declares one table column over values of type T.
type Column[T comparable] struct {
	// ID is the stable identifier used by sort directives and cell lookups.
	// If empty, the registry derives one from the name plus a random token,
	// so two columns may share a display name without colliding.
	ID string

	// Name is the display name shown in the column header.
	Name string

	// Value extracts the display value for one row.
	Value func(T) Value

	// Compare is an optional three-way comparator over rows, returning a
	// negative, zero or positive result in the conventional Go sense
	// (negative when a orders before b ascending). When nil, sorting falls
	// back to a best-effort comparison of the extracted display values.
	Compare func(a, b T) int

	// Width and Align are presentation hints for the rendering layer.
	Width WidthClass
	Align Alignment
}

// Registry holds the active column set and resolves columns by identifier.
type Registry[T comparable] struct {
	cols []Column[T]
	byID map[string]int
}

// NewRegistry validates the column set and builds the identifier lookup.
// Columns without an explicit ID get one derived from their name plus a
// random token. Two columns with the same explicit ID are a configuration
// error and fail fast with ErrDuplicateColumn.
func NewRegistry[T comparable](cols []Column[T]) (*Registry[T], error) {
	r := &Registry[T]{
		cols: make([]Column[T], len(cols)),
		byID: make(map[string]int, len(cols)),
	}
	copy(r.cols, cols)

	for i := range r.cols {
		col := &r.cols[i]
		if col.ID == "" {
			col.ID = deriveColumnID(col.Name, r.byID)
		} else if _, taken := r.byID[col.ID]; taken {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.ID)
		}
		r.byID[col.ID] = i
	}
	return r, nil
}

// deriveColumnID builds an identifier from the column name and a random
// token. The token keeps same-named columns apart; the loop guards against
// the (vanishingly unlikely) token collision.
func deriveColumnID(name string, taken map[string]int) string {
	for {
		id := fmt.Sprintf("%s-%s", name, uuid.NewString()[:8])
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

// Lookup returns the column with the given identifier.
func (r *Registry[T]) Lookup(id string) (Column[T], bool) {
	i, ok := r.byID[id]
	if !ok {
		return Column[T]{}, false
	}
	return r.cols[i], true
}

// Columns returns the registered columns in declaration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry[T]) Columns() []Column[T] { return r.cols }

// Len returns the number of registered columns.
func (r *Registry[T]) Len() int { return len(r.cols) }
