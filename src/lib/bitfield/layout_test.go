package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutRejectsOverlap(t *testing.T) {
	type r struct{}
	l := NewLayout[uint32, r]("R")
	_, err := l.AddField("LOW", 0, 4)
	require.NoError(t, err)

	_, err = l.AddField("MID", 3, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLayout)
	assert.Contains(t, err.Error(), "R.MID")
	assert.Contains(t, err.Error(), "LOW[3:0]")

	_, err = l.AddField("LOW", 8, 1)
	assert.ErrorIs(t, err, ErrLayout)

	_, err = l.AddField("HIGH", 4, 28)
	require.NoError(t, err)
	assert.Equal(t, ^uint32(0), l.Covered())
	assert.Len(t, l.Fields(), 2)
}

func TestLayoutFieldPanicsOnInvalid(t *testing.T) {
	type r struct{}
	l := NewLayout[uint8, r]("R")
	assert.Panics(t, func() { l.Field("BAD", 7, 2) })
	assert.NotPanics(t, func() { l.Field("OK", 7, 1) })
}

func TestLayoutErrorNamesLayout(t *testing.T) {
	type r struct{}
	l := NewLayout[uint16, r]("SPSel")
	_, err := l.AddField("SP", 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPSel.SP")
}

func TestLayoutLookupAndWidth(t *testing.T) {
	f, ok := ctlLayout.Lookup("MODE")
	require.True(t, ok)
	assert.Equal(t, uint8(4), f.Offset())
	_, ok = ctlLayout.Lookup("NOPE")
	assert.False(t, ok)
	assert.Equal(t, uint8(64), ctlLayout.Width())
	assert.Equal(t, "CTL", ctlLayout.Name())
}

func TestLayoutDescribe(t *testing.T) {
	v := ctlEnable.MustVal(1).Or(ctlMode.MustVal(2)).Value()
	assert.Equal(t, "CTL{ENABLE=0x1, IMASK=0x0, ISTATUS=0x0, MODE=C, ADDR=0x0}", ctlLayout.Describe(v))

	v = ValueOf[uint64, ctl](0b11<<4 | 1<<8)
	assert.Equal(t, "CTL{ENABLE=0x0, IMASK=0x0, ISTATUS=0x0, MODE=0x3, ADDR=0x0, other=0x100}", ctlLayout.Describe(v))
}
