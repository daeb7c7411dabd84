//go:build !arm64

package arm_cortex_a53

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortexa/src/lib/bitfield"
)

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestAccessPanicsOffTarget(t *testing.T) {
	for name, access := range map[string]func(){
		"get":    func() { MIDR_EL1.Get() },
		"raw":    func() { CNTVCT_EL0.GetRaw() },
		"set":    func() { SCTLR_EL1.Set(SystemControlRegisterValueMMUDisabled) },
		"modify": func() { MaskDAIF() },
		"timer":  func() { NewVirtualTimer().Now() },
	} {
		err := recoverError(access)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, bitfield.ErrUnsupportedTarget), name)
	}
	err := recoverError(func() { SCTLR_EL1.SetRaw(0) })
	assert.Contains(t, err.Error(), "MSR SCTLR_EL1")
}
