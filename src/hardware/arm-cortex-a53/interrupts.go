package arm_cortex_a53

import (
	"fmt"

	"cortexa/src/lib/bitfield"
)

//////////////////////////////////////////////////////////////////
// DAIF interrupt masking
//////////////////////////////////////////////////////////////////

// InterruptMask is the capability the masking helpers need. DAIF satisfies
// it; so does a bitfield.Fake in tests.
type InterruptMask = bitfield.ReadWriteable[uint32, DAIF_Register]

var (
	DAIFAllMasked   = DAIF_D_Masked.Or(DAIF_A_Masked, DAIF_I_Masked, DAIF_F_Masked)
	DAIFAllUnmasked = DAIF_D_Unmasked.Or(DAIF_A_Unmasked, DAIF_I_Unmasked, DAIF_F_Unmasked)
)

// MaskDAIF sets all four of the D-A-I-F interrupt masks on the calling core.
func MaskDAIF() { MaskInterrupts(DAIF) }

// UnmaskDAIF clears all four of the D-A-I-F interrupt masks on the calling core.
func UnmaskDAIF() { UnmaskInterrupts(DAIF) }

func MaskInterrupts(m InterruptMask) {
	bitfield.ModifyFields[uint32, DAIF_Register](m, DAIFAllMasked)
}

func UnmaskInterrupts(m InterruptMask) {
	bitfield.ModifyFields[uint32, DAIF_Register](m, DAIFAllUnmasked)
}

// WithInterruptsMasked runs fn with every exception class masked and then
// puts back the masks that were in force before, even if fn panics.
func WithInterruptsMasked(m InterruptMask, fn func()) {
	saved := m.Get()
	MaskInterrupts(m)
	defer m.Set(saved)
	fn()
}

//////////////////////////////////////////////////////////////////
// ARM64 Exception Handlers
//////////////////////////////////////////////////////////////////

// ExceptionKind is the index of a vector table entry: four groups (current
// EL with SP_EL0, current EL with SP_ELx, lower EL AArch64, lower EL
// AArch32) of four types (synchronous, IRQ, FIQ, SError).
type ExceptionKind uint64

const (
	SynchronousEL1h ExceptionKind = 4
	IRQEL1h         ExceptionKind = 5
)

func (k ExceptionKind) String() string {
	if int(k) < len(entryErrorMessages) {
		return entryErrorMessages[k]
	}
	return fmt.Sprintf("ExceptionKind(%d)", uint64(k))
}

// ExceptionHandler receives the vector entry taken, ESR_EL1 and FAR_EL1.
type ExceptionHandler func(kind ExceptionKind, esr bitfield.Value[uint32, ESR_EL1_Register], addr uint64)

// ExceptionTable routes exceptions to handlers by vector entry. Entries
// without a handler go to the fallback.
type ExceptionTable struct {
	handlers [16]ExceptionHandler
	fallback ExceptionHandler
}

func NewExceptionTable(fallback ExceptionHandler) *ExceptionTable {
	return &ExceptionTable{fallback: fallback}
}

func (t *ExceptionTable) Set(kind ExceptionKind, h ExceptionHandler) {
	t.handlers[kind] = h
}

func (t *ExceptionTable) SetExceptionHandlerEl1hInterrupts(h ExceptionHandler) {
	t.Set(IRQEL1h, h)
}

func (t *ExceptionTable) SetExceptionHandlerEl1hSynchronous(h ExceptionHandler) {
	t.Set(SynchronousEL1h, h)
}

// Dispatch hands one taken exception to its handler. The raw ESR and FAR
// values are what a vector stub has in hand.
func (t *ExceptionTable) Dispatch(kind ExceptionKind, esr uint32, addr uint64) {
	v := bitfield.ValueOf[uint32, ESR_EL1_Register](esr)
	if int(kind) < len(t.handlers) && t.handlers[kind] != nil {
		t.handlers[kind](kind, v, addr)
		return
	}
	if t.fallback != nil {
		t.fallback(kind, v, addr)
	}
}

// DescribeException renders an exception the way the unexpected-exception
// path prints it.
func DescribeException(kind ExceptionKind, esr bitfield.Value[uint32, ESR_EL1_Register], addr uint64) string {
	class := fmt.Sprintf("%#x", esr.Read(ESR_EL1_EC))
	if ec, ok := esr.ReadEnum(ESR_EL1_EC); ok {
		class = ec.Name
	}
	return fmt.Sprintf("Unexpected Exception: %s, EC %s, ISS 0x%x, ADDR 0x%x",
		kind, class, esr.Read(ESR_EL1_ISS), addr)
}

var entryErrorMessages = []string{
	"SYNC_INVALID_EL1t",
	"IRQ_INVALID_EL1t",
	"FIQ_INVALID_EL1t",
	"ERROR_INVALID_EL1T",

	"SYNC_INVALID_EL1h",
	"IRQ_INVALID_EL1h",
	"FIQ_INVALID_EL1h",
	"ERROR_INVALID_EL1h",

	"SYNC_INVALID_EL0_64",
	"IRQ_INVALID_EL0_64",
	"FIQ_INVALID_EL0_64",
	"ERROR_INVALID_EL0_64",

	"SYNC_INVALID_EL0_32",
	"IRQ_INVALID_EL0_32",
	"FIQ_INVALID_EL0_32",
	"ERROR_INVALID_EL0_32",
}
