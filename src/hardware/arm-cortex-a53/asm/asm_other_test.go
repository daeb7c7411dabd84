//go:build !arm64

package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cortexa/src/lib/bitfield"
)

func TestInstructionsPanicOffTarget(t *testing.T) {
	var regs [18]uint64
	var regs32 [8]uint32
	for name, fn := range map[string]func(){
		"NOP":  Nop,
		"WFE":  Wfe,
		"WFI":  Wfi,
		"SEV":  Sev,
		"SEVL": Sevl,
		"ERET": Eret,
		"HVC":  func() { HVC(&regs) },
		"SMC":  func() { SMC32(&regs32) },
	} {
		func() {
			defer func() {
				err, _ := recover().(error)
				assert.True(t, errors.Is(err, bitfield.ErrUnsupportedTarget), name)
				assert.Contains(t, err.Error(), name)
			}()
			fn()
		}()
	}
}

func TestDetectRNGOffTarget(t *testing.T) {
	rng, err := DetectRNG()
	assert.Nil(t, rng)
	assert.ErrorIs(t, err, bitfield.ErrUnsupportedTarget)
}
