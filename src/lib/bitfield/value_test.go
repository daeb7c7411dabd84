package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// three one-bit fields at offsets 0, 1 and 2 of a 64 bit register
type flags struct{}

var (
	flagsLayout = NewLayout[uint64, flags]("FLAGS")
	flagA       = flagsLayout.Field("A", 0, 1)
	flagB       = flagsLayout.Field("B", 1, 1)
	flagC       = flagsLayout.Field("C", 2, 1)
)

func TestFieldIsolation(t *testing.T) {
	for start := uint64(0); start < 8; start++ {
		v := ValueOf[uint64, flags](start)
		for _, bit := range []uint64{0, 1} {
			got := v.Modify(flagB.MustVal(bit))
			assert.Equal(t, v.Read(flagA), got.Read(flagA), "start %03b", start)
			assert.Equal(t, v.Read(flagC), got.Read(flagC), "start %03b", start)
			assert.Equal(t, bit, got.Read(flagB))
		}
	}
}

func TestFieldIsolationAcrossLayout(t *testing.T) {
	fields := ctlLayout.Fields()
	for i, target := range fields {
		v := ValueOf[uint64, ctl](0xdead_beef_cafe_f00d)
		got := v.Modify(target.MustVal(target.Mask()))
		for j, other := range fields {
			if i == j {
				continue
			}
			assert.Equal(t, v.Read(other), got.Read(other), "writing %s changed %s", target, other)
		}
		assert.Equal(t, target.Mask(), got.Read(target))
	}
}

func TestEnumRoundTrip(t *testing.T) {
	v := ctlMode.MustVal(1).Value()
	e, ok := v.ReadEnum(ctlMode)
	require.True(t, ok)
	assert.Equal(t, "B", e.Name)

	v = ctlMode.MustVal(3).Value()
	_, ok = v.ReadEnum(ctlMode)
	assert.False(t, ok)
}

func TestCombineCommutes(t *testing.T) {
	ab := flagA.MustVal(1).Or(flagB.MustVal(1))
	ba := flagB.MustVal(1).Or(flagA.MustVal(1))
	assert.Equal(t, ab, ba)
	assert.Equal(t, uint64(0b011), ab.Bits())
	assert.Equal(t, uint64(0b011), ab.Mask())
}

func TestCombineZeroValueCoversField(t *testing.T) {
	cleared := flagB.MustVal(0).Or(flagC.MustVal(1))
	assert.Equal(t, uint64(0b110), cleared.Mask())
	assert.Equal(t, uint64(0b100), cleared.Bits())

	v := ValueOf[uint64, flags](0b011).Modify(cleared)
	assert.Equal(t, uint64(0b101), v.Bits())
}

func TestValueMatches(t *testing.T) {
	v := ValueOf[uint64, flags](0b101)
	assert.True(t, v.MatchesAll(flagA.MustVal(1), flagC.MustVal(1)))
	assert.False(t, v.MatchesAll(flagA.MustVal(1), flagB.MustVal(1)))
	assert.True(t, v.MatchesAll())
	assert.True(t, v.MatchesAny(flagB.MustVal(1), flagC.MustVal(1)))
	assert.False(t, v.MatchesAny())
	assert.True(t, flagB.MustVal(0).Matches(v))
}

func TestValueIsSet(t *testing.T) {
	v := ctlAddress.MustVal(0x8000).Value()
	assert.True(t, v.IsSet(ctlAddress))
	assert.False(t, v.IsSet(ctlEnable))
	assert.Equal(t, uint64(0x8000), v.Read(ctlAddress))
	assert.Equal(t, uint64(0x8000)<<16, v.Bits())
}
