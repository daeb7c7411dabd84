package bitfield

// FieldValue is the setting of one or more fields of layout L, held in
// register position together with the mask of the bits it covers.
type FieldValue[T Width, L any] struct {
	mask  T
	value T
}

// Or combines settings. For disjoint fields the result does not depend on
// the order of the operands.
func (fv FieldValue[T, L]) Or(others ...FieldValue[T, L]) FieldValue[T, L] {
	for _, o := range others {
		fv.mask |= o.mask
		fv.value |= o.value
	}
	return fv
}

// Mask returns the register bits this value covers.
func (fv FieldValue[T, L]) Mask() T { return fv.mask }

// Bits returns the register bits this value sets.
func (fv FieldValue[T, L]) Bits() T { return fv.value }

// Read extracts one field from the combined setting.
func (fv FieldValue[T, L]) Read(f Field[T, L]) T { return f.Read(fv.value) }

// Matches reports whether every covered bit of v equals this setting.
func (fv FieldValue[T, L]) Matches(v Value[T, L]) bool {
	return v.bits&fv.mask == fv.value
}

// Value returns the register value with this setting and every other bit
// zero.
func (fv FieldValue[T, L]) Value() Value[T, L] { return Value[T, L]{bits: fv.value} }

// Value is the full contents of a register with layout L.
type Value[T Width, L any] struct {
	bits T
}

// ValueOf wraps raw register bits.
func ValueOf[T Width, L any](raw T) Value[T, L] { return Value[T, L]{bits: raw} }

// Bits returns the raw register bits.
func (v Value[T, L]) Bits() T { return v.bits }

func (v Value[T, L]) Read(f Field[T, L]) T { return f.Read(v.bits) }

// ReadEnum decodes a field to its symbolic value; false when the bits hold
// an encoding with no declared variant.
func (v Value[T, L]) ReadEnum(f Field[T, L]) (Variant[T], bool) {
	return f.Decode(f.Read(v.bits))
}

// IsSet reports whether any bit of the field is set.
func (v Value[T, L]) IsSet(f Field[T, L]) bool { return f.Read(v.bits) != 0 }

// MatchesAll reports whether v agrees with every setting. No settings
// match trivially.
func (v Value[T, L]) MatchesAll(fvs ...FieldValue[T, L]) bool {
	for _, fv := range fvs {
		if !fv.Matches(v) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether v agrees with at least one setting.
func (v Value[T, L]) MatchesAny(fvs ...FieldValue[T, L]) bool {
	for _, fv := range fvs {
		if fv.Matches(v) {
			return true
		}
	}
	return false
}

// Modify returns v with the covered bits replaced by the settings. Bits no
// setting covers are left as they were.
func (v Value[T, L]) Modify(fvs ...FieldValue[T, L]) Value[T, L] {
	for _, fv := range fvs {
		v.bits = v.bits&^fv.mask | fv.value
	}
	return v
}
