package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripThroughFake(t *testing.T) {
	reg := NewFake[uint64, flags](0)
	for raw := uint64(0); raw < 8; raw++ {
		v := flagA.MustVal(raw & 1).Or(flagB.MustVal(raw >> 1 & 1)).Or(flagC.MustVal(raw >> 2 & 1)).Value()
		reg.Set(v)
		assert.Equal(t, v, reg.Get())
	}
	assert.Equal(t, 8, reg.Writes)
	assert.Equal(t, 8, reg.Reads)
}

func TestWriteZeroesUncoveredBits(t *testing.T) {
	reg := NewFake[uint64, ctl](^uint64(0))
	Write[uint64, ctl](reg, ctlEnable.MustVal(1), ctlMode.MustVal(2))
	assert.Equal(t, uint64(1|2<<4), reg.Raw())
}

func TestModifyFieldsPreservesOthers(t *testing.T) {
	reg := NewFake[uint64, ctl](0xffff_0000_0000_0007)
	ModifyFields[uint64, ctl](reg, ctlMask.MustVal(0), ctlMode.MustVal(1))
	assert.Equal(t, uint64(0xffff_0000_0000_0015), reg.Raw())
	assert.Equal(t, 1, reg.Reads)
	assert.Equal(t, 1, reg.Writes)
}

func TestModifyAppliesFunction(t *testing.T) {
	reg := NewFake[uint64, ctl](0)
	Modify[uint64, ctl](reg, func(v Value[uint64, ctl]) Value[uint64, ctl] {
		return v.Modify(ctlAddress.MustVal(v.Read(ctlAddress) + 1))
	})
	Modify[uint64, ctl](reg, func(v Value[uint64, ctl]) Value[uint64, ctl] {
		return v.Modify(ctlAddress.MustVal(v.Read(ctlAddress) + 1))
	})
	assert.Equal(t, uint64(2), Read[uint64, ctl](reg, ctlAddress))
}

func TestReadHelpers(t *testing.T) {
	reg := NewFake[uint64, ctl](1 | 2<<4)
	assert.True(t, IsSet[uint64, ctl](reg, ctlEnable))
	assert.False(t, IsSet[uint64, ctl](reg, ctlStatus))
	e, ok := ReadEnum[uint64, ctl](reg, ctlMode)
	require.True(t, ok)
	assert.Equal(t, "C", e.Name)
	assert.True(t, MatchesAll[uint64, ctl](reg, ctlEnable.MustVal(1), ctlMode.MustVal(2)))
	assert.False(t, MatchesAny[uint64, ctl](reg, ctlMask.MustVal(1), ctlMode.MustVal(0)))
}

// A write landing between the two halves of a read-modify-write is lost.
func TestModifyIsNotAtomic(t *testing.T) {
	reg := NewFake[uint64, flags](0)
	racer := &interleaved{Fake: reg, between: func() { reg.Poke(reg.Raw() | 1<<2) }}
	ModifyFields[uint64, flags](racer, flagA.MustVal(1))
	assert.Equal(t, uint64(0b001), reg.Raw())
}

type interleaved struct {
	*Fake[uint64, flags]
	between func()
}

func (i *interleaved) Get() Value[uint64, flags] {
	v := i.Fake.Get()
	i.between()
	return v
}

func TestFakeFixedBits(t *testing.T) {
	reg := NewFake[uint32, ctl](0b100).Fix(0b100)
	reg.Set(ValueOf[uint32, ctl](0b011))
	assert.Equal(t, uint32(0b111), reg.Raw())
	reg.Set(ValueOf[uint32, ctl](0))
	assert.Equal(t, uint32(0b100), reg.Raw())
}

func TestUnsupportedError(t *testing.T) {
	err := Unsupported("MRS MIDR_EL1")
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
	assert.Contains(t, err.Error(), "MRS MIDR_EL1")
}
