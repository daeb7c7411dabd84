package arm_cortex_a53

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortexa/src/lib/bitfield"
)

func TestBootValues(t *testing.T) {
	assert.Equal(t, uint64(0x30D00800), SystemControlRegisterValueMMUDisabled.Bits())
	assert.Equal(t, uint64(0x80000000), HypervisorConfigurationRegisterValue.Bits())
	assert.Equal(t, uint32(0x431), SecureConfigurationRegisterValue.Bits())
	assert.Equal(t, uint32(0x1C5), SavedProgramStatusRegisterValue.Bits())

	assert.True(t, SystemControlRegisterValueMMUDisabled.MatchesAll(SCTLR_EL1_M_Disable, SCTLR_EL1_EE_LittleEndian))
	m, ok := SavedProgramStatusRegisterValue.ReadEnum(SPSR_EL3_M)
	require.True(t, ok)
	assert.Equal(t, "EL1h", m.Name)
}

func TestCatalogLayouts(t *testing.T) {
	// Cortex-A53 r0p4.
	midr := bitfield.ValueOf[uint64, MIDR_EL1_Register](0x410fd034)
	impl, ok := midr.ReadEnum(MIDR_EL1_Implementer)
	require.True(t, ok)
	assert.Equal(t, "Arm", impl.Name)
	part, ok := midr.ReadEnum(MIDR_EL1_PartNum)
	require.True(t, ok)
	assert.Equal(t, "CortexA53", part.Name)
	assert.Equal(t, uint64(4), midr.Read(MIDR_EL1_Revision))
	assert.Equal(t, uint64(0xf), midr.Read(MIDR_EL1_Architecture))

	assert.Equal(t, uint8(64), MIDR_EL1_Layout.Width())
	assert.Equal(t, uint8(32), DAIF_Layout.Width())
	assert.Equal(t, "DAIF{F=Masked, I=Masked, A=Unmasked, D=Unmasked}",
		DAIF_Layout.Describe(DAIF_I_Masked.Or(DAIF_F_Masked).Value()))

	// Registers without fields still have a layout for Describe.
	assert.Empty(t, ELR_EL1_Layout.Fields())
	assert.Equal(t, "ELR_EL1{other=0x80000}",
		ELR_EL1_Layout.Describe(bitfield.ValueOf[uint64, ELR_EL1_Register](0x80000)))
}

func TestCatalogFieldsAreDisjoint(t *testing.T) {
	// Overlaps panic at package init; this checks the coverage masks agree.
	var covered uint64
	for _, f := range SCTLR_EL1_Layout.Fields() {
		assert.Zero(t, covered&f.ShiftedMask(), f.String())
		covered |= f.ShiftedMask()
	}
	assert.Equal(t, covered, SCTLR_EL1_Layout.Covered())
	assert.Zero(t, SCTLR_EL1_Layout.Covered()&SCTLR_EL1_RES1)
}

func TestMAIRAttributesShareEncodings(t *testing.T) {
	mair := bitfield.ValueOf[uint64, MAIR_EL1_Register](0).Modify(
		MAIR_EL1_Attr0_NormalWriteBack,
		MAIR_EL1_Attr1_Device_nGnRnE,
		MAIR_EL1_Attr2_NormalNonCacheable,
	)
	assert.Equal(t, uint64(0x4400ff), mair.Bits())
	for _, f := range []bitfield.Field[uint64, MAIR_EL1_Register]{MAIR_EL1_Attr0, MAIR_EL1_Attr7} {
		assert.Len(t, f.Variants(), 6)
	}
}

func TestSetTables(t *testing.T) {
	ttbr0 := bitfield.NewFake[uint64, TTBR0_EL1_Register](0xdead)
	require.NoError(t, SetUserTable(ttbr0, 0x4008_2000, 7))
	v := ttbr0.Get()
	assert.Equal(t, uint64(0x4008_2000), BaseAddress(v, TTBR0_EL1_BADDR))
	assert.Equal(t, uint64(7), v.Read(TTBR0_EL1_ASID))
	assert.False(t, v.IsSet(TTBR0_EL1_CnP), "Write clears fields it is not given")

	ttbr1 := bitfield.NewFake[uint64, TTBR1_EL1_Register](0)
	require.NoError(t, SetKernelTable(ttbr1, 0xffff_f000))
	assert.Equal(t, uint64(0xffff_f000), ttbr1.Raw())

	assert.Error(t, SetKernelTable(ttbr1, 0x1234), "unaligned")
	err := SetKernelTable(ttbr1, 1<<50)
	assert.ErrorIs(t, err, bitfield.ErrOutOfRange)
	assert.Equal(t, 1, ttbr1.Writes, "failed calls do not write")
}
