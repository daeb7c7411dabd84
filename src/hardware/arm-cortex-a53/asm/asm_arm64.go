package asm

func nop()
func wfe()
func wfi()
func sev()
func sevl()
func eret()

//go:noescape
func hvc(regs *[18]uint64)

//go:noescape
func smc(regs *[18]uint64)

//go:noescape
func hvc32(regs *[8]uint32)

//go:noescape
func smc32(regs *[8]uint32)

func rndr() (v uint64, ok bool)
func rndrrs() (v uint64, ok bool)
