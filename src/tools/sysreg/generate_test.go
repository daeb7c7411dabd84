package sysreg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTimers(t *testing.T) map[string]string {
	t.Helper()
	dev, err := ParseDevice([]byte(timerTable))
	require.NoError(t, err)
	files, err := Generate(dev, UserOptions{Source: "timers.yaml"})
	require.NoError(t, err)
	out := map[string]string{}
	for name, src := range files {
		out[name] = string(src)
	}
	return out
}

func mustContain(t *testing.T, text string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(text, w) {
			t.Errorf("missing %q in:\n%s", w, text)
		}
	}
}

func TestGenerateRegisters(t *testing.T) {
	src := generateTimers(t)[RegistersFile]
	mustContain(t, src,
		"// Code generated by sysreg from timers.yaml. DO NOT EDIT.",
		"package timers",
		`import "cortexa/src/lib/bitfield"`,
		"type CNTV_CTL_EL0_Register struct{}",
		"var CNTV_CTL_EL0 CNTV_CTL_EL0_Register",
		`var CNTV_CTL_EL0_Layout = bitfield.NewLayout[uint32, CNTV_CTL_EL0_Register]("CNTV_CTL_EL0")`,
		`var CNTV_CTL_EL0_ISTATUS = CNTV_CTL_EL0_Layout.Field("ISTATUS", 2, 1)`,
		`var CNTV_CTL_EL0_MODE = CNTV_CTL_EL0_Layout.Field("MODE", 4, 2,`,
		`bitfield.Variant[uint32]{Name: "Fast", Value: 0x2},`,
		"var CNTV_CTL_EL0_MODE_Slow = CNTV_CTL_EL0_MODE.MustVal(0x3)",
		"func (CNTV_CTL_EL0_Register) Get() bitfield.Value[uint32, CNTV_CTL_EL0_Register]",
		"func (CNTV_CTL_EL0_Register) Set(v bitfield.Value[uint32, CNTV_CTL_EL0_Register])",
		"func (r CNTV_CTL_EL0_Register) ModifyFields(",
		"func (CNTVCT_EL0_Register) GetRaw() uint64 { return readCNTVCT_EL0() }",
	)
	// Read-only registers get no write path; registers without fields get
	// only raw and whole-value accessors.
	assert.NotContains(t, src, "func (CNTVCT_EL0_Register) Set(")
	assert.NotContains(t, src, "func (r CNTVCT_EL0_Register) Modify(")
	assert.NotContains(t, src, "func (r CNTVCT_EL0_Register) Read(")
}

func TestGeneratePrimitives(t *testing.T) {
	files := generateTimers(t)
	mustContain(t, files[DeclsFile],
		"func readCNTV_CTL_EL0() uint32",
		"func writeCNTV_CTL_EL0(v uint32)",
		"func readCNTVCT_EL0() uint64",
	)
	assert.NotContains(t, files[DeclsFile], "writeCNTVCT_EL0")

	mustContain(t, files[AsmFile],
		`#include "textflag.h"`,
		"TEXT ·readCNTV_CTL_EL0(SB), NOSPLIT, $0-4\n\tWORD $0xd53be320\n\tMOVW R0, ret+0(FP)\n\tRET",
		"TEXT ·writeCNTV_CTL_EL0(SB), NOSPLIT, $0-4\n\tMOVWU v+0(FP), R0\n\tWORD $0xd51be320\n\tRET",
		"TEXT ·readCNTVCT_EL0(SB), NOSPLIT, $0-8\n\tWORD $0xd53be040\n\tMOVD R0, ret+0(FP)",
	)

	mustContain(t, files[StubsFile],
		"//go:build !arm64",
		`func readCNTVCT_EL0() uint64 { panic(bitfield.Unsupported("MRS CNTVCT_EL0")) }`,
		`func writeCNTV_CTL_EL0(uint32) { panic(bitfield.Unsupported("MSR CNTV_CTL_EL0")) }`,
	)
}

func TestGenerateOptions(t *testing.T) {
	dev, err := ParseDevice([]byte(timerTable))
	require.NoError(t, err)
	files, err := Generate(dev, UserOptions{Pkg: "other", Import: "example.com/bitfield", Source: "x.yaml"})
	require.NoError(t, err)
	mustContain(t, string(files[RegistersFile]), "package other", `import "example.com/bitfield"`)
}

func TestGenerateRejectsInvalid(t *testing.T) {
	dev, err := ParseDevice([]byte("package: p\nregisters:\n  - {name: X, size: 12}\n"))
	require.NoError(t, err)
	_, err = Generate(dev, UserOptions{})
	assert.Error(t, err)
}

func TestGenerateCatalog(t *testing.T) {
	dev, err := LoadDevice(catalogPath(t))
	require.NoError(t, err)
	files, err := Generate(dev, UserOptions{})
	require.NoError(t, err)
	mustContain(t, string(files[RegistersFile]),
		"from registers.yaml",
		"var SCTLR_EL1_M = SCTLR_EL1_Layout.Field(\"M\", 0, 1",
		"var SPSR_EL1_M_EL1h = SPSR_EL1_M.MustVal(0x5)",
	)
	// MIDR_EL1 is read-only: no MSR in the assembly.
	assert.NotContains(t, string(files[AsmFile]), "writeMIDR_EL1")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	dev, err := ParseDevice([]byte(timerTable))
	require.NoError(t, err)
	files, err := Generate(dev, UserOptions{Source: "timers.yaml"})
	require.NoError(t, err)
	require.NoError(t, WriteFiles(dir, files))

	for name, raw := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		if name == AsmFile {
			assert.Equal(t, string(raw), string(got), "assembly is written as rendered")
			continue
		}
		assert.Contains(t, string(got), "DO NOT EDIT")
		assert.NotContains(t, string(got), "\n\n\n", "%s is gofmt'd", name)
	}
}

func TestWriteFilesKeepsBroken(t *testing.T) {
	dir := t.TempDir()
	err := WriteFiles(dir, map[string][]byte{"bad.go": []byte("package p\nfunc {")})
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "bad.go.broken"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "bad.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestComment(t *testing.T) {
	assert.Equal(t, "// X_F [3:0]: Mode.", comment("X_F [3:0]", "Mode."))
	assert.Equal(t, "// X", comment("X", ""))

	long := comment("REG", strings.Repeat("word ", 40))
	for _, line := range strings.Split(long, "\n") {
		assert.LessOrEqual(t, len(line), 77)
		assert.True(t, strings.HasPrefix(line, "// "))
	}
}
