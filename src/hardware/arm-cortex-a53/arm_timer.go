package arm_cortex_a53

import (
	"time"

	"cortexa/src/lib/bitfield"
)

// Timer drives one of the per-core generic timers through its control,
// compare and timer-value registers. The type parameters are the handle
// types of those registers, which is what lets tests substitute fakes.
type Timer[CTL, CVAL, TVAL, CNT any] struct {
	Ctl     bitfield.ReadWriteable[uint32, CTL]
	Cval    bitfield.ReadWriteable[uint64, CVAL]
	Tval    bitfield.ReadWriteable[uint32, TVAL]
	Counter bitfield.Readable[uint64, CNT]
	Freq    bitfield.Readable[uint32, CNTFRQ_EL0_Register]

	Enable  bitfield.Field[uint32, CTL]
	IMask   bitfield.Field[uint32, CTL]
	IStatus bitfield.Field[uint32, CTL]
}

type PhysicalTimer = Timer[CNTP_CTL_EL0_Register, CNTP_CVAL_EL0_Register, CNTP_TVAL_EL0_Register, CNTPCT_EL0_Register]

type VirtualTimer = Timer[CNTV_CTL_EL0_Register, CNTV_CVAL_EL0_Register, CNTV_TVAL_EL0_Register, CNTVCT_EL0_Register]

// NewPhysicalTimer is the EL1 physical timer (nCNTPNSIRQ).
func NewPhysicalTimer() *PhysicalTimer {
	return &PhysicalTimer{
		Ctl: CNTP_CTL_EL0, Cval: CNTP_CVAL_EL0, Tval: CNTP_TVAL_EL0, Counter: CNTPCT_EL0, Freq: CNTFRQ_EL0,
		Enable: CNTP_CTL_EL0_ENABLE, IMask: CNTP_CTL_EL0_IMASK, IStatus: CNTP_CTL_EL0_ISTATUS,
	}
}

// NewVirtualTimer is the virtual timer, the one Linux lets EL0 read.
func NewVirtualTimer() *VirtualTimer {
	return &VirtualTimer{
		Ctl: CNTV_CTL_EL0, Cval: CNTV_CVAL_EL0, Tval: CNTV_TVAL_EL0, Counter: CNTVCT_EL0, Freq: CNTFRQ_EL0,
		Enable: CNTV_CTL_EL0_ENABLE, IMask: CNTV_CTL_EL0_IMASK, IStatus: CNTV_CTL_EL0_ISTATUS,
	}
}

// Frequency is the counter rate in Hz as firmware programmed it.
func (t *Timer[CTL, CVAL, TVAL, CNT]) Frequency() uint32 {
	return t.Freq.Get().Bits()
}

func (t *Timer[CTL, CVAL, TVAL, CNT]) Now() uint64 {
	return t.Counter.Get().Bits()
}

// Ticks converts d to counter ticks, rounding down.
func (t *Timer[CTL, CVAL, TVAL, CNT]) Ticks(d time.Duration) uint64 {
	hz := uint64(t.Frequency())
	secs := uint64(d / time.Second)
	rest := uint64(d % time.Second)
	return secs*hz + rest*hz/uint64(time.Second)
}

// ArmAfter fires the timer ticks from now with its interrupt unmasked.
func (t *Timer[CTL, CVAL, TVAL, CNT]) ArmAfter(ticks uint32) {
	t.Tval.Set(bitfield.ValueOf[uint32, TVAL](ticks))
	bitfield.Write[uint32, CTL](t.Ctl, t.Enable.MustVal(1), t.IMask.MustVal(0))
}

// ArmAt fires the timer once the counter reaches deadline.
func (t *Timer[CTL, CVAL, TVAL, CNT]) ArmAt(deadline uint64) {
	t.Cval.Set(bitfield.ValueOf[uint64, CVAL](deadline))
	bitfield.Write[uint32, CTL](t.Ctl, t.Enable.MustVal(1), t.IMask.MustVal(0))
}

// Pending reports whether an enabled timer's condition has been met.
func (t *Timer[CTL, CVAL, TVAL, CNT]) Pending() bool {
	v := t.Ctl.Get()
	return v.IsSet(t.Enable) && v.IsSet(t.IStatus)
}

// Mask keeps the timer running but stops it from raising its interrupt.
func (t *Timer[CTL, CVAL, TVAL, CNT]) Mask() {
	bitfield.ModifyFields[uint32, CTL](t.Ctl, t.IMask.MustVal(1))
}

func (t *Timer[CTL, CVAL, TVAL, CNT]) Stop() {
	bitfield.ModifyFields[uint32, CTL](t.Ctl, t.Enable.MustVal(0))
}
