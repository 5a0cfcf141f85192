package schema

import (
	"errors"
	"fmt"

	"github.com/hupe1980/arenago/internal/naming"
	"github.com/hupe1980/arenago/view"
)

var (
	// ErrEmpty is returned when a schema declares no fields.
	ErrEmpty = errors.New("schema has no fields")
	// ErrFieldName is returned when a field name is not a valid identifier.
	ErrFieldName = errors.New("invalid field name")
	// ErrFieldKind is returned when a field kind names no element type.
	ErrFieldKind = errors.New("invalid field kind")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")
)

// Field describes one property of a partition: a name, an element kind and
// the value every row starts with. Initial is declared as float64 and
// converted to the element type on fill; integer kinds truncate.
type Field struct {
	Name    string
	Kind    view.Kind
	Initial float64
}

// WithInitial returns a copy of f whose rows start at v instead of zero.
func (f Field) WithInitial(v float64) Field {
	f.Initial = v
	return f
}

// Schema is an ordered list of fields. Declaration order is layout order.
type Schema []Field

// Validate checks that the schema is non-empty, every field has a valid
// name and kind, and no two fields share a name.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return ErrEmpty
	}

	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if err := naming.Validate(f.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrFieldName, err)
		}
		if !f.Kind.Valid() {
			return fmt.Errorf("%w: field %q has kind %d", ErrFieldKind, f.Name, f.Kind)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Field returns the field with the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RowBytes returns the per-row payload size in bytes: the sum of the field
// widths, without alignment padding.
func (s Schema) RowBytes() int {
	total := 0
	for _, f := range s {
		total += f.Kind.Width()
	}
	return total
}

// MaxAlign returns the largest field alignment, where a field's alignment
// is its element width rounded up to at least MinAlign.
func (s Schema) MaxAlign() int {
	maxAlign := 0
	for _, f := range s {
		a := f.Kind.Width()
		if a < MinAlign {
			a = MinAlign
		}
		if a > maxAlign {
			maxAlign = a
		}
	}
	return maxAlign
}

// MinAlign is the smallest alignment any field is placed at, regardless of
// element width. It keeps every property offset usable for 8-byte views.
const MinAlign = 8
