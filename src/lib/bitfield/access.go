package bitfield

// Readable is the capability to read a register with layout L.
//
// Implementations backed by hardware require the caller to run at an
// exception level where the register exists; that is not checked.
type Readable[T Width, L any] interface {
	Get() Value[T, L]
}

// Writeable is the capability to write a register with layout L. The same
// exception level precondition as Readable applies.
type Writeable[T Width, L any] interface {
	Set(Value[T, L])
}

type ReadWriteable[T Width, L any] interface {
	Readable[T, L]
	Writeable[T, L]
}

// Read reads the register and extracts one field.
func Read[T Width, L any](r Readable[T, L], f Field[T, L]) T {
	return r.Get().Read(f)
}

func ReadEnum[T Width, L any](r Readable[T, L], f Field[T, L]) (Variant[T], bool) {
	return r.Get().ReadEnum(f)
}

func IsSet[T Width, L any](r Readable[T, L], f Field[T, L]) bool {
	return r.Get().IsSet(f)
}

func MatchesAll[T Width, L any](r Readable[T, L], fvs ...FieldValue[T, L]) bool {
	return r.Get().MatchesAll(fvs...)
}

func MatchesAny[T Width, L any](r Readable[T, L], fvs ...FieldValue[T, L]) bool {
	return r.Get().MatchesAny(fvs...)
}

// Write stores the combined settings; every bit they do not cover is
// written as zero.
func Write[T Width, L any](w Writeable[T, L], fvs ...FieldValue[T, L]) {
	var v Value[T, L]
	w.Set(v.Modify(fvs...))
}

// ModifyFields rewrites the covered bits and preserves the rest. It is a
// read followed by a write and is not atomic.
func ModifyFields[T Width, L any](rw ReadWriteable[T, L], fvs ...FieldValue[T, L]) {
	rw.Set(rw.Get().Modify(fvs...))
}

// Modify writes fn applied to the current value. Like ModifyFields it is
// two accesses; a write by another agent in between is lost.
func Modify[T Width, L any](rw ReadWriteable[T, L], fn func(Value[T, L]) Value[T, L]) {
	rw.Set(fn(rw.Get()))
}
