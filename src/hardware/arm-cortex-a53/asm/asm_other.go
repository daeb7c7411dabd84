//go:build !arm64

package asm

import "cortexa/src/lib/bitfield"

func nop()                   { panic(bitfield.Unsupported("NOP")) }
func wfe()                   { panic(bitfield.Unsupported("WFE")) }
func wfi()                   { panic(bitfield.Unsupported("WFI")) }
func sev()                   { panic(bitfield.Unsupported("SEV")) }
func sevl()                  { panic(bitfield.Unsupported("SEVL")) }
func eret()                  { panic(bitfield.Unsupported("ERET")) }
func hvc(*[18]uint64)        { panic(bitfield.Unsupported("HVC")) }
func smc(*[18]uint64)        { panic(bitfield.Unsupported("SMC")) }
func hvc32(*[8]uint32)       { panic(bitfield.Unsupported("HVC")) }
func smc32(*[8]uint32)       { panic(bitfield.Unsupported("SMC")) }
func rndr() (uint64, bool)   { panic(bitfield.Unsupported("MRS RNDR")) }
func rndrrs() (uint64, bool) { panic(bitfield.Unsupported("MRS RNDRRS")) }
