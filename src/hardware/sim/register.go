package sim

import "cortexa/src/lib/bitfield"

// Register is a core's view of a memory-mapped register at addr. It
// satisfies bitfield.ReadWriteable, so code written against register
// capabilities runs unchanged on simulated cores.
type Register[T bitfield.Width, L any] struct {
	core *Core
	addr string
}

func NewRegister[T bitfield.Width, L any](c *Core, addr string) *Register[T, L] {
	return &Register[T, L]{core: c, addr: addr}
}

func (r *Register[T, L]) Get() bitfield.Value[T, L] {
	return bitfield.ValueOf[T, L](T(r.core.Load(r.addr)))
}

func (r *Register[T, L]) Set(v bitfield.Value[T, L]) {
	r.core.Store(r.addr, uint64(v.Bits()))
}
