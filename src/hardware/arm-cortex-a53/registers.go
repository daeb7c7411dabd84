package arm_cortex_a53

import "cortexa/src/lib/bitfield"

// ***************************************
// SCTLR_EL1, System Control Register (EL1), Page 2654 of AArch64-Reference-Manual.
// ***************************************

// SCTLR_EL1_RES1 are the bits of SCTLR_EL1 that must be written as one.
const SCTLR_EL1_RES1 uint64 = (3 << 28) | (3 << 22) | (1 << 20) | (1 << 11)

// SystemControlRegisterValueMMUDisabled is 0x30D00800: little endian, caches
// and MMU off.
var SystemControlRegisterValueMMUDisabled = bitfield.ValueOf[uint64, SCTLR_EL1_Register](SCTLR_EL1_RES1).Modify(
	SCTLR_EL1_EE_LittleEndian,
	SCTLR_EL1_E0E_LittleEndian,
	SCTLR_EL1_I_NonCacheable,
	SCTLR_EL1_C_NonCacheable,
	SCTLR_EL1_M_Disable,
)

// ***************************************
// HCR_EL2, Hypervisor Configuration Register (EL2), Page 2487 of AArch64-Reference-Manual.
// ***************************************

var HypervisorConfigurationRegisterValue = HCR_EL2_RW_EL1IsAarch64.Value() //0x80000000

// ***************************************
// SCR_EL3, Secure Configuration Register (EL3), Page 2648 of AArch64-Reference-Manual.
// ***************************************

var SecureConfigurationRegisterValue = SCR_EL3_RES1.MustVal(0b11).Or( //0x30 | 0x400 | 0x1 => 0x431
	SCR_EL3_RW_NextELIsAarch64,
	SCR_EL3_NS_NonSecure,
).Value()

// ***************************************
// SPSR_EL3, Saved Program Status Register (EL3) Page 389 of AArch64-Reference-Manual.
// ***************************************

// SavedProgramStatusRegisterValue returns from EL3 into EL1 on its own stack
// with SError, IRQ and FIQ masked.
var SavedProgramStatusRegisterValue = SPSR_EL3_A_Masked.Or( //0x1C5
	SPSR_EL3_I_Masked,
	SPSR_EL3_F_Masked,
	SPSR_EL3_M_EL1h,
).Value()

// ExceptionLevel reads CurrentEL. Only meaningful at EL1 and above; EL0
// reads trap.
func ExceptionLevel() uint32 {
	return CurrentEL.Read(CurrentEL_EL)
}
