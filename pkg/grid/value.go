// Package grid implements a declarative binding layer between an ordered
// collection of application values and a table presentation. It derives
// columns from caller-supplied extraction functions, maintains a
// filtered/sorted projection of the data, tracks row selection, and resolves
// the targets of contextual actions. Rendering is out of scope: the package
// only signals a renderer through callbacks and answers cell lookups.
//
// The engine is generic over any comparable value type. Identity is value
// equality, so two rows carrying equal values are indistinguishable to
// selection and index translation. Callers that need to tell duplicates
// apart should bind pointers or an identifying key instead.
package grid

import (
	"fmt"
	"strconv"
)

// Kind discriminates the closed set of displayable cell value variants.
type Kind int

const (
	// KindText is a plain text value.
	KindText Kind = iota
	// KindNumber is a numeric value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindImage references an image resource by name.
	KindImage
	// KindControl references an embedded control by identifier.
	KindControl
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindImage:
		return "Image"
	case KindControl:
		return "Control"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Value is the display value a column extractor produces for one cell.
// It is a tagged variant: exactly one payload field is meaningful, selected
// by Kind.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	// Ref names an image resource or embedded control, depending on Kind.
	Ref string
}

// NewText returns a text value.
func NewText(s string) Value { return Value{Kind: KindText, Text: s} }

// NewNumber returns a numeric value.
func NewNumber(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NewImage returns a value referencing an image resource.
func NewImage(ref string) Value { return Value{Kind: KindImage, Ref: ref} }

// NewControl returns a value referencing an embedded control.
func NewControl(ref string) Value { return Value{Kind: KindControl, Ref: ref} }

// String coerces the value to text. Every kind has a defined coercion, so
// renderers and the fallback comparator never fail on an unexpected variant.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindImage, KindControl:
		return v.Ref
	default:
		return ""
	}
}
