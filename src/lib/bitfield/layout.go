package bitfield

import (
	"fmt"
	"strings"
)

// Layout is the ordered field decomposition of registers with layout type L.
// It is built once, normally during package initialization.
type Layout[T Width, L any] struct {
	name   string
	fields []Field[T, L]
	used   T
}

func NewLayout[T Width, L any](name string) *Layout[T, L] {
	return &Layout[T, L]{name: name}
}

// AddField validates a field against the layout and appends it. Fields may
// not share bits and names must be unique.
func (l *Layout[T, L]) AddField(name string, offset, width uint8, variants ...Variant[T]) (Field[T, L], error) {
	f, err := NewField[T, L](name, offset, width, variants...)
	if err != nil {
		err.(*LayoutError).Layout = l.name
		return Field[T, L]{}, err
	}
	if _, dup := l.Lookup(name); dup {
		return Field[T, L]{}, &LayoutError{Layout: l.name, Field: name, Reason: "duplicate field name"}
	}
	if overlap := l.used & f.ShiftedMask(); overlap != 0 {
		for _, other := range l.fields {
			if other.ShiftedMask()&overlap != 0 {
				return Field[T, L]{}, &LayoutError{Layout: l.name, Field: name,
					Reason: fmt.Sprintf("overlaps %s", other)}
			}
		}
	}
	l.used |= f.ShiftedMask()
	l.fields = append(l.fields, f)
	return f, nil
}

// Field is AddField for static descriptions: an invalid field panics.
func (l *Layout[T, L]) Field(name string, offset, width uint8, variants ...Variant[T]) Field[T, L] {
	f, err := l.AddField(name, offset, width, variants...)
	if err != nil {
		panic(err)
	}
	return f
}

func (l *Layout[T, L]) Name() string { return l.name }

// Width returns the backing width in bits.
func (l *Layout[T, L]) Width() uint8 { return bitsOf[T]() }

// Fields returns the fields in declaration order. The slice is shared.
func (l *Layout[T, L]) Fields() []Field[T, L] { return l.fields }

// Covered returns the mask of all bits claimed by some field.
func (l *Layout[T, L]) Covered() T { return l.used }

func (l *Layout[T, L]) Lookup(name string) (Field[T, L], bool) {
	for _, f := range l.fields {
		if f.name == name {
			return f, true
		}
	}
	return Field[T, L]{}, false
}

// Describe renders v field by field, using variant names where the bits
// decode to one.
func (l *Layout[T, L]) Describe(v Value[T, L]) string {
	var b strings.Builder
	b.WriteString(l.name)
	b.WriteByte('{')
	for i, f := range l.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		if e, ok := v.ReadEnum(f); ok {
			b.WriteString(e.Name)
			continue
		}
		fmt.Fprintf(&b, "%#x", uint64(v.Read(f)))
	}
	if rest := v.bits &^ l.used; rest != 0 {
		if len(l.fields) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "other=%#x", uint64(rest))
	}
	b.WriteByte('}')
	return b.String()
}
