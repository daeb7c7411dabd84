package sysreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidateAccepts(t *testing.T) {
	dev, err := ParseDevice([]byte(timerTable))
	require.NoError(t, err)
	assert.NoError(t, Validate(dev))
}

func TestValidateRejects(t *testing.T) {
	const head = "package: p\nregisters:\n"
	cases := []struct {
		name  string
		table string
		want  string
	}{
		{"duplicate register", head +
			"  - {name: X, encoding: S3_0_C1_C0_0, size: 64, access: rw}\n" +
			"  - {name: X, encoding: S3_0_C1_C0_1, size: 64, access: rw}\n",
			"declared twice"},
		{"size", head + "  - {name: X, encoding: S3_0_C1_C0_0, size: 16, access: rw}\n", "size 16"},
		{"no access", head + "  - {name: X, encoding: S3_0_C1_C0_0, size: 64}\n", "missing access"},
		{"no encoding", head + "  - {name: X, size: 64, access: r}\n", "missing encoding"},
		{"field too wide", head + "  - name: X\n    encoding: S3_0_C1_C0_0\n    size: 32\n    access: r\n" +
			"    fields:\n      - {name: F, bits: \"35:30\"}\n", "exceeds 32 bits"},
		{"overlap", head + "  - name: X\n    encoding: S3_0_C1_C0_0\n    size: 64\n    access: r\n" +
			"    fields:\n      - {name: A, bits: \"7:4\"}\n      - {name: B, bits: 4}\n", "overlaps A"},
		{"duplicate field", head + "  - name: X\n    encoding: S3_0_C1_C0_0\n    size: 64\n    access: r\n" +
			"    fields:\n      - {name: A, bits: 1}\n      - {name: A, bits: 2}\n", "field A declared twice"},
		{"value too wide", head + "  - name: X\n    encoding: S3_0_C1_C0_0\n    size: 64\n    access: r\n" +
			"    fields:\n      - name: A\n        bits: \"1:0\"\n        values: [{name: Big, value: 4}]\n", "does not fit in 2 bits"},
		{"duplicate value", head + "  - name: X\n    encoding: S3_0_C1_C0_0\n    size: 64\n    access: r\n" +
			"    fields:\n      - name: A\n        bits: \"1:0\"\n        values: [{name: P, value: 1}, {name: Q, value: 1}]\n", "are both 0x1"},
		{"bad identifier", head + "  - {name: 1X, encoding: S3_0_C1_C0_0, size: 64, access: r}\n", "not an identifier"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev, err := ParseDevice([]byte(c.table))
			require.NoError(t, err)
			err = Validate(dev)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestValidateReportsEverything(t *testing.T) {
	dev, err := ParseDevice([]byte("package: p\nregisters:\n" +
		"  - {name: X, size: 8}\n" +
		"  - {name: Y, encoding: S3_0_C1_C0_0, size: 64}\n"))
	require.NoError(t, err)
	errs := multierr.Errors(Validate(dev))
	assert.Len(t, errs, 4)
}
