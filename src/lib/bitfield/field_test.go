package bitfield

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctl struct{}

var (
	ctlLayout  = NewLayout[uint64, ctl]("CTL")
	ctlEnable  = ctlLayout.Field("ENABLE", 0, 1)
	ctlMask    = ctlLayout.Field("IMASK", 1, 1)
	ctlStatus  = ctlLayout.Field("ISTATUS", 2, 1)
	ctlMode    = ctlLayout.Field("MODE", 4, 2, Variant[uint64]{Name: "A", Value: 0}, Variant[uint64]{Name: "B", Value: 1}, Variant[uint64]{Name: "C", Value: 2})
	ctlAddress = ctlLayout.Field("ADDR", 16, 48)
)

func TestFieldValBoundaries(t *testing.T) {
	top, err := ctlMode.Val(0b11)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b11<<4), top.Bits())
	assert.Equal(t, uint64(0b11<<4), top.Mask())

	_, err = ctlMode.Val(0b100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, "MODE", oor.Field)
	assert.Equal(t, uint8(2), oor.Width)
	assert.Equal(t, uint64(4), oor.Value)

	_, err = ctlMode.Val(0b110)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFieldTruncateKeepsLowBits(t *testing.T) {
	fv := ctlMode.Truncate(0b110)
	assert.Equal(t, uint64(0b10), fv.Read(ctlMode))
	assert.Equal(t, uint64(0b10<<4), fv.Bits())
}

func TestFieldMustValPanics(t *testing.T) {
	assert.NotPanics(t, func() { ctlEnable.MustVal(1) })
	assert.Panics(t, func() { ctlEnable.MustVal(2) })
}

func TestFieldFullWidth(t *testing.T) {
	type wide struct{}
	f, err := NewField[uint64, wide]("ALL", 0, 64)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), f.Mask())
	fv, err := f.Val(^uint64(0))
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), fv.Bits())

	f32, err := NewField[uint32, wide]("HIGH", 31, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<31), f32.ShiftedMask())
}

func TestNewFieldRejects(t *testing.T) {
	type r struct{}
	cases := []struct {
		name     string
		offset   uint8
		width    uint8
		variants []Variant[uint32]
	}{
		{name: "zero width", offset: 0, width: 0},
		{name: "past end", offset: 30, width: 3},
		{name: "variant too wide", offset: 0, width: 2, variants: []Variant[uint32]{{Name: "X", Value: 4}}},
		{name: "duplicate value", offset: 0, width: 2, variants: []Variant[uint32]{{Name: "X", Value: 1}, {Name: "Y", Value: 1}}},
		{name: "duplicate name", offset: 0, width: 2, variants: []Variant[uint32]{{Name: "X", Value: 1}, {Name: "X", Value: 2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewField[uint32, r]("F", c.offset, c.width, c.variants...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLayout)
		})
	}
}

func TestFieldVariantLookup(t *testing.T) {
	b, ok := ctlMode.Variant("B")
	require.True(t, ok)
	assert.Equal(t, ctlMode.MustVal(1), b)

	_, ok = ctlMode.Variant("D")
	assert.False(t, ok)

	v, ok := ctlMode.Decode(2)
	require.True(t, ok)
	assert.Equal(t, "C", v.Name)
	_, ok = ctlMode.Decode(3)
	assert.False(t, ok)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "ENABLE[0]", ctlEnable.String())
	assert.Equal(t, "MODE[5:4]", ctlMode.String())
	assert.Equal(t, "ADDR[63:16]", ctlAddress.String())
}
