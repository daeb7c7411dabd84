package sysreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionWords(t *testing.T) {
	cases := []struct {
		encoding string
		rt       uint32
		mrs, msr uint32
	}{
		{"S3_0_C0_C0_0", 0, 0xd5380000, 0xd5180000},   // MIDR_EL1
		{"S3_3_C14_C0_2", 0, 0xd53be040, 0xd51be040},  // CNTVCT_EL0
		{"S3_0_C1_C0_0", 0, 0xd5381000, 0xd5181000},   // SCTLR_EL1
		{"S3_3_C4_C2_1", 0, 0xd53b4220, 0xd51b4220},   // DAIF
		{"S3_3_C14_C0_0", 3, 0xd53be003, 0xd51be003},  // CNTFRQ_EL0, X3
		{"S3_6_C1_C1_0", 0, 0xd53e1100, 0xd51e1100},   // SCR_EL3
		{"S3_0_C12_C0_0", 30, 0xd538c01e, 0xd518c01e}, // VBAR_EL1, X30
	}
	for _, c := range cases {
		e, err := ParseEncoding(c.encoding)
		require.NoError(t, err)
		assert.Equalf(t, c.mrs, MRS(e, c.rt), "MRS %s", c.encoding)
		assert.Equalf(t, c.msr, MSR(e, c.rt), "MSR %s", c.encoding)
	}
}

func TestEncodingString(t *testing.T) {
	e, err := ParseEncoding("s3_3_c14_c2_1")
	require.NoError(t, err)
	assert.Equal(t, "S3_3_C14_C2_1", e.String())
	assert.True(t, e.IsSet())
	assert.False(t, EncodingDef{}.IsSet())
}
