package sysreg

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timerTable = `
package: timers
description: test table
registers:
  - name: CNTV_CTL_EL0
    description: Virtual timer control.
    encoding: S3_3_C14_C3_1
    size: 32
    access: rw
    fields:
      - name: ISTATUS
        bits: 2
      - name: MODE
        bits: "5:4"
        values:
          - {name: Off, value: 0}
          - {name: Fast, value: 0b10}
          - {name: Slow, value: 0x3}
  - name: CNTVCT_EL0
    encoding: s3_3_c14_c0_2
    size: 64
    access: r
`

func mustRange(t *testing.T, msb, lsb int) BitRangeDef {
	t.Helper()
	b, err := BitRange(msb, lsb)
	require.NoError(t, err)
	return b
}

func TestParseDevice(t *testing.T) {
	dev, err := ParseDevice([]byte(timerTable))
	require.NoError(t, err)

	rw, _ := ParseAccess("rw")
	r, _ := ParseAccess("r")
	want := &DeviceDef{
		Package:     "timers",
		Description: "test table",
		Register: []*RegisterDef{
			{
				Name:        "CNTV_CTL_EL0",
				Description: "Virtual timer control.",
				Encoding:    EncodingDef{Op0: 3, Op1: 3, CRn: 14, CRm: 3, Op2: 1},
				Size:        32,
				Access:      rw,
				Field: []*FieldDef{
					{Name: "ISTATUS", BitRange: mustRange(t, 2, 2)},
					{Name: "MODE", BitRange: mustRange(t, 5, 4), EnumeratedValue: []*EnumeratedValueDef{
						{Name: "Off", Value: 0},
						{Name: "Fast", Value: 2},
						{Name: "Slow", Value: 3},
					}},
				},
			},
			{
				Name:     "CNTVCT_EL0",
				Encoding: EncodingDef{Op0: 3, Op1: 3, CRn: 14, CRm: 0, Op2: 2},
				Size:     64,
				Access:   r,
			},
		},
	}
	if diff := cmp.Diff(want, dev, cmp.AllowUnexported(AccessDef{}, BitRangeDef{})); diff != "" {
		t.Errorf("ParseDevice mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeviceErrors(t *testing.T) {
	cases := map[string]string{
		"no package":   "registers: []\n",
		"bad access":   "package: p\nregisters:\n  - {name: X, access: rx}\n",
		"bad encoding": "package: p\nregisters:\n  - {name: X, encoding: S3_0_C1}\n",
		"bad op0":      "package: p\nregisters:\n  - {name: X, encoding: S1_0_C1_C0_0}\n",
		"bad range":    "package: p\nregisters:\n  - name: X\n    fields:\n      - {name: F, bits: \"3:5\"}\n",
		"range > 63":   "package: p\nregisters:\n  - name: X\n    fields:\n      - {name: F, bits: 64}\n",
		"bad value":    "package: p\nregisters:\n  - name: X\n    fields:\n      - name: F\n        bits: 0\n        values: [{name: A, value: nope}]\n",
		"not yaml":     "package: [\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDevice([]byte(text))
			assert.Error(t, err)
		})
	}
}

func TestParseBitRange(t *testing.T) {
	b, err := ParseBitRange("0")
	require.NoError(t, err)
	assert.True(t, b.IsSet(), "bit 0 is a real range")
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, "[0]", b.String())

	b, err = ParseBitRange(" 63 : 48 ")
	require.NoError(t, err)
	assert.Equal(t, 16, b.Width())
	assert.Equal(t, "[63:48]", b.String())

	_, err = ParseBitRange("1:2:3")
	assert.Error(t, err)
	assert.False(t, BitRangeDef{}.IsSet())
}

func TestAccessString(t *testing.T) {
	for in, want := range map[string]string{"r": "read-only", "W": "write-only", "rw": "read-write", "": "unset"} {
		a, err := ParseAccess(in)
		require.NoError(t, err)
		assert.Equal(t, want, a.String(), in)
		assert.Equal(t, in != "", a.IsSet())
	}
}

// catalogPath locates the register table of the Cortex-A package.
func catalogPath(t *testing.T) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "hardware", "arm-cortex-a53", "registers.yaml")
}

func TestLoadCatalog(t *testing.T) {
	dev, err := LoadDevice(catalogPath(t))
	require.NoError(t, err)
	require.NoError(t, Validate(dev))
	assert.Equal(t, "arm_cortex_a53", dev.Package)

	byName := map[string]*RegisterDef{}
	for _, r := range dev.Register {
		byName[r.Name] = r
	}
	for _, name := range []string{"MIDR_EL1", "SCTLR_EL1", "CNTV_CTL_EL0", "DAIF", "SPSR_EL1", "TTBR1_EL1", "ID_AA64ISAR0_EL1"} {
		assert.Contains(t, byName, name)
	}
	assert.False(t, byName["MIDR_EL1"].Access.CanWrite())
	assert.Equal(t, 32, byName["CNTFRQ_EL0"].Size)

	// SPSR_EL2 shares its fields with SPSR_EL1 through a YAML anchor.
	assert.Equal(t, len(byName["SPSR_EL1"].Field), len(byName["SPSR_EL2"].Field))

	_, err = LoadDevice(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
