package bitfield

import "fmt"

// Variant is one symbolic value of an enumerated field.
type Variant[T Width] struct {
	Name  string
	Value T
}

// Field is a contiguous bit range of a register with layout L.
type Field[T Width, L any] struct {
	name     string
	shift    uint8
	width    uint8
	mask     T // unshifted
	variants []Variant[T]
}

// NewField validates and builds a field outside of any layout. Most callers
// want Layout.AddField, which also checks for overlap with sibling fields.
func NewField[T Width, L any](name string, offset, width uint8, variants ...Variant[T]) (Field[T, L], error) {
	fail := func(format string, args ...any) (Field[T, L], error) {
		return Field[T, L]{}, &LayoutError{Field: name, Reason: fmt.Sprintf(format, args...)}
	}
	if width == 0 {
		return fail("width must be at least 1")
	}
	if total := bitsOf[T](); int(offset)+int(width) > int(total) {
		return fail("bits [%d:%d] exceed %d bit register", int(offset)+int(width)-1, offset, total)
	}
	mask := lowMask[T](width)
	for i, v := range variants {
		if v.Value&^mask != 0 {
			return fail("variant %s=%#x does not fit in %d bits", v.Name, uint64(v.Value), width)
		}
		for _, prev := range variants[:i] {
			if prev.Name == v.Name {
				return fail("duplicate variant name %s", v.Name)
			}
			if prev.Value == v.Value {
				return fail("variants %s and %s share value %#x", prev.Name, v.Name, uint64(v.Value))
			}
		}
	}
	return Field[T, L]{
		name:     name,
		shift:    offset,
		width:    width,
		mask:     mask,
		variants: variants,
	}, nil
}

func (f Field[T, L]) Name() string  { return f.name }
func (f Field[T, L]) Offset() uint8 { return f.shift }
func (f Field[T, L]) Width() uint8  { return f.width }

// Mask returns the unshifted mask of the field, 2^width - 1.
func (f Field[T, L]) Mask() T { return f.mask }

// ShiftedMask returns the mask in register position.
func (f Field[T, L]) ShiftedMask() T { return f.mask << f.shift }

// Variants returns the declared symbolic values in declaration order. The
// slice is shared and must not be modified.
func (f Field[T, L]) Variants() []Variant[T] { return f.variants }

// Val builds a FieldValue, rejecting raw values wider than the field.
func (f Field[T, L]) Val(raw T) (FieldValue[T, L], error) {
	if raw&^f.mask != 0 {
		return FieldValue[T, L]{}, &OutOfRangeError{Field: f.name, Width: f.width, Value: uint64(raw)}
	}
	return f.Truncate(raw), nil
}

// MustVal is Val for values known to fit; it panics otherwise.
func (f Field[T, L]) MustVal(raw T) FieldValue[T, L] {
	fv, err := f.Val(raw)
	if err != nil {
		panic(err)
	}
	return fv
}

// Truncate builds a FieldValue keeping only the low width bits of raw.
func (f Field[T, L]) Truncate(raw T) FieldValue[T, L] {
	return FieldValue[T, L]{
		mask:  f.mask << f.shift,
		value: (raw & f.mask) << f.shift,
	}
}

// Variant returns the FieldValue of the named symbolic value.
func (f Field[T, L]) Variant(name string) (FieldValue[T, L], bool) {
	for _, v := range f.variants {
		if v.Name == name {
			return f.Truncate(v.Value), true
		}
	}
	return FieldValue[T, L]{}, false
}

// Read extracts the field from raw register bits.
func (f Field[T, L]) Read(raw T) T {
	return (raw >> f.shift) & f.mask
}

// Decode maps a raw field value to its symbolic value. The first declared
// variant wins; false means the encoding is reserved or undeclared.
func (f Field[T, L]) Decode(raw T) (Variant[T], bool) {
	for _, v := range f.variants {
		if v.Value == raw {
			return v, true
		}
	}
	return Variant[T]{}, false
}

func (f Field[T, L]) String() string {
	if f.width == 1 {
		return fmt.Sprintf("%s[%d]", f.name, f.shift)
	}
	return fmt.Sprintf("%s[%d:%d]", f.name, f.shift+f.width-1, f.shift)
}
