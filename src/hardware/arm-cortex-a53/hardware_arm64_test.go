//go:build arm64 && linux

package arm_cortex_a53

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

// Linux lets EL0 read the virtual counter and its frequency, and emulates
// MRS of the ID registers. Nothing else in the catalog is safe to touch
// from a test process.

func TestCounterAdvances(t *testing.T) {
	freq := CNTFRQ_EL0.GetRaw()
	require.NotZero(t, freq)

	timer := NewVirtualTimer()
	before := timer.Now()
	time.Sleep(2 * time.Millisecond)
	after := timer.Now()
	assert.Greater(t, after, before)
	assert.GreaterOrEqual(t, after-before, timer.Ticks(time.Millisecond))
}

func needCPUID(t *testing.T) {
	if !cpu.ARM64.HasCPUID {
		t.Skip("kernel does not emulate ID register reads")
	}
}

func TestIDRegistersMatchHWCAP(t *testing.T) {
	needCPUID(t)
	isar := ID_AA64ISAR0_EL1.Get()
	assert.Equal(t, cpu.ARM64.HasAES, isar.Read(ID_AA64ISAR0_EL1_AES) >= 1)
	assert.Equal(t, cpu.ARM64.HasPMULL, isar.Read(ID_AA64ISAR0_EL1_AES) >= 2)
	assert.Equal(t, cpu.ARM64.HasSHA2, isar.Read(ID_AA64ISAR0_EL1_SHA2) >= 1)
	assert.Equal(t, cpu.ARM64.HasCRC32, isar.Read(ID_AA64ISAR0_EL1_CRC32) >= 1)
	assert.Equal(t, cpu.ARM64.HasATOMICS, isar.Read(ID_AA64ISAR0_EL1_Atomic) >= 2)
}

func TestMIDR(t *testing.T) {
	needCPUID(t)
	midr := MIDR_EL1.Get()
	assert.NotZero(t, midr.Read(MIDR_EL1_Implementer))
	assert.Equal(t, uint64(0xf), midr.Read(MIDR_EL1_Architecture), "AArch64 cores report 0xf")
	t.Log(MIDR_EL1_Layout.Describe(midr))
}
