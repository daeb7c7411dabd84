package bitfield

// Fake is a register kept in ordinary memory. It stands in for hardware in
// tests of code written against Readable and Writeable. A Fake is not safe
// for concurrent use.
type Fake[T Width, L any] struct {
	bits  T
	fixed T // bits writes cannot change

	Reads  int
	Writes int
}

// NewFake returns a fake holding reset.
func NewFake[T Width, L any](reset T) *Fake[T, L] {
	return &Fake[T, L]{bits: reset}
}

// Fix makes the bits in mask read-only, keeping their current value. It
// models registers with RES0/RES1 or status bits.
func (f *Fake[T, L]) Fix(mask T) *Fake[T, L] {
	f.fixed |= mask
	return f
}

func (f *Fake[T, L]) Get() Value[T, L] {
	f.Reads++
	return Value[T, L]{bits: f.bits}
}

func (f *Fake[T, L]) Set(v Value[T, L]) {
	f.Writes++
	f.bits = f.bits&f.fixed | v.bits&^f.fixed
}

// Raw returns the stored bits without counting a read.
func (f *Fake[T, L]) Raw() T { return f.bits }

// Poke changes the stored bits without counting a write, the way hardware
// updates a status bit behind the program's back.
func (f *Fake[T, L]) Poke(raw T) { f.bits = raw }
