package arm_cortex_a53

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cortexa/src/lib/bitfield"
)

type fakeTimer struct {
	*VirtualTimer
	ctl  *bitfield.Fake[uint32, CNTV_CTL_EL0_Register]
	cval *bitfield.Fake[uint64, CNTV_CVAL_EL0_Register]
	tval *bitfield.Fake[uint32, CNTV_TVAL_EL0_Register]
	cnt  *bitfield.Fake[uint64, CNTVCT_EL0_Register]
}

func newFakeTimer() fakeTimer {
	f := fakeTimer{
		ctl:  bitfield.NewFake[uint32, CNTV_CTL_EL0_Register](0).Fix(CNTV_CTL_EL0_ISTATUS.ShiftedMask()),
		cval: bitfield.NewFake[uint64, CNTV_CVAL_EL0_Register](0),
		tval: bitfield.NewFake[uint32, CNTV_TVAL_EL0_Register](0),
		cnt:  bitfield.NewFake[uint64, CNTVCT_EL0_Register](1000),
	}
	timer := NewVirtualTimer()
	timer.Ctl, timer.Cval, timer.Tval, timer.Counter = f.ctl, f.cval, f.tval, f.cnt
	timer.Freq = bitfield.NewFake[uint32, CNTFRQ_EL0_Register](62_500_000)
	f.VirtualTimer = timer
	return f
}

func TestTimerArmAfter(t *testing.T) {
	f := newFakeTimer()
	f.ctl.Poke(CNTV_CTL_EL0_IMASK.MustVal(1).Bits())

	f.ArmAfter(500)
	assert.Equal(t, uint32(500), f.tval.Raw())
	assert.Equal(t, uint32(1), f.ctl.Raw(), "enabled and unmasked")
	assert.False(t, f.Pending())

	f.ctl.Poke(f.ctl.Raw() | CNTV_CTL_EL0_ISTATUS.ShiftedMask())
	assert.True(t, f.Pending())

	f.Mask()
	assert.True(t, f.ctl.Get().IsSet(CNTV_CTL_EL0_IMASK))
	f.Stop()
	assert.False(t, f.Pending())
	assert.True(t, f.ctl.Get().IsSet(CNTV_CTL_EL0_IMASK), "Stop preserves the mask")
}

func TestTimerArmAt(t *testing.T) {
	f := newFakeTimer()
	f.ArmAt(f.Now() + f.Ticks(2*time.Millisecond))
	assert.Equal(t, uint64(1000+125_000), f.cval.Raw())
	assert.True(t, f.ctl.Get().IsSet(CNTV_CTL_EL0_ENABLE))
}

func TestTimerTicks(t *testing.T) {
	f := newFakeTimer()
	assert.Equal(t, uint32(62_500_000), f.Frequency())
	assert.Equal(t, uint64(62_500_000), f.Ticks(time.Second))
	assert.Equal(t, uint64(62), f.Ticks(time.Microsecond))
	assert.Equal(t, uint64(3*62_500_000+31_250_000), f.Ticks(3500*time.Millisecond))
	// Large durations must not overflow in the intermediate product.
	assert.Equal(t, uint64(62_500_000)*3600*24*365, f.Ticks(365*24*time.Hour))
}
