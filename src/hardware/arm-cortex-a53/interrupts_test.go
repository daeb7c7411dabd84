package arm_cortex_a53

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cortexa/src/lib/bitfield"
)

const daifBits = 0xf << 6

func TestMaskUnmaskInterrupts(t *testing.T) {
	daif := bitfield.NewFake[uint32, DAIF_Register](0)
	MaskInterrupts(daif)
	assert.Equal(t, uint32(daifBits), daif.Raw())
	assert.True(t, daif.Get().MatchesAll(DAIF_D_Masked, DAIF_A_Masked, DAIF_I_Masked, DAIF_F_Masked))

	UnmaskInterrupts(daif)
	assert.Zero(t, daif.Raw())
}

func TestWithInterruptsMaskedRestores(t *testing.T) {
	daif := bitfield.NewFake[uint32, DAIF_Register](DAIF_I_Masked.Bits())
	ran := false
	WithInterruptsMasked(daif, func() {
		ran = true
		assert.Equal(t, uint32(daifBits), daif.Raw())
	})
	assert.True(t, ran)
	assert.Equal(t, DAIF_I_Masked.Bits(), daif.Raw())

	assert.Panics(t, func() {
		WithInterruptsMasked(daif, func() { panic("boom") })
	})
	assert.Equal(t, DAIF_I_Masked.Bits(), daif.Raw(), "restored on panic")
}

func TestExceptionTable(t *testing.T) {
	var got []string
	table := NewExceptionTable(func(kind ExceptionKind, esr bitfield.Value[uint32, ESR_EL1_Register], addr uint64) {
		got = append(got, DescribeException(kind, esr, addr))
	})
	irqs := 0
	table.SetExceptionHandlerEl1hInterrupts(func(ExceptionKind, bitfield.Value[uint32, ESR_EL1_Register], uint64) {
		irqs++
	})

	table.Dispatch(IRQEL1h, 0, 0)
	assert.Equal(t, 1, irqs)

	// Data abort from the current EL, ISS 0x45.
	esr := ESR_EL1_EC_DataAbortCurrentEL.Or(ESR_EL1_IL.MustVal(1), ESR_EL1_ISS.MustVal(0x45)).Bits()
	table.Dispatch(SynchronousEL1h, esr, 0xdead_beef)
	table.Dispatch(ExceptionKind(2), 0x3f<<26, 8)
	assert.Equal(t, []string{
		"Unexpected Exception: SYNC_INVALID_EL1h, EC DataAbortCurrentEL, ISS 0x45, ADDR 0xdeadbeef",
		"Unexpected Exception: FIQ_INVALID_EL1t, EC 0x3f, ISS 0x0, ADDR 0x8",
	}, got)
	assert.Equal(t, "ExceptionKind(20)", ExceptionKind(20).String())
}
