// Package arm_cortex_a53 is the AArch64 system register catalog of the
// Cortex-A cores: one typed handle per register, generated from
// registers.yaml, plus the helpers the boot and timer code is written with.
//
// Every handle is a zero-size value whose type doubles as the layout
// parameter of its values, so SCTLR_EL1.Set only accepts values built from
// SCTLR_EL1 fields. Accessing a register the current exception level cannot
// reach traps; the handles do not check. On anything but arm64 each access
// panics with bitfield.ErrUnsupportedTarget.
package arm_cortex_a53

//go:generate go run ../../tools/sysreg/cmd/sysreg generate -i registers.yaml -o .
