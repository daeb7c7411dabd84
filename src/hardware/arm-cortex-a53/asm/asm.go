// Package asm wraps the AArch64 instructions that have no Go spelling:
// hints, exception return, hypervisor and secure monitor calls, and the
// ARMv8.5 random number registers.
package asm

// Nop is the classic no-op.
func Nop() { nop() }

// Wfe waits for an event, an interrupt, or a SEV from another core.
func Wfe() { wfe() }

// Wfi waits for an interrupt.
func Wfi() { wfi() }

// Sev signals an event to every core in the system.
func Sev() { sev() }

// Sevl signals an event to the calling core only, so that a following Wfe
// falls straight through.
func Sevl() { sevl() }

// Eret returns from an exception to ELR_ELx in the state held by SPSR_ELx.
// It does not return to its caller; at EL0 the instruction is undefined.
func Eret() {
	eret()
	panic("asm: eret returned")
}

// HVC issues HVC #0 with x0-x17 loaded from regs and stores x0-x17 back
// into regs afterwards, the SMC Calling Convention register window.
func HVC(regs *[18]uint64) { hvc(regs) }

// SMC is HVC for the secure monitor.
func SMC(regs *[18]uint64) { smc(regs) }

// HVC32 is the SMC32/HVC32 calling convention: w0-w7 in and out.
func HVC32(regs *[8]uint32) { hvc32(regs) }

func SMC32(regs *[8]uint32) { smc32(regs) }
