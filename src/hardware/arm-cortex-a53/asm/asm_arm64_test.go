//go:build arm64 && linux

package asm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHints(t *testing.T) {
	Nop()
	// SEVL sets the local event register, so the WFE after it does not
	// sleep.
	Sevl()
	Wfe()
}

func TestRNDR(t *testing.T) {
	// Linux emulates the ID register read from EL0.
	rng, err := DetectRNG()
	if err == ErrNoRNG {
		t.Skip("no FEAT_RNG on this core")
	}
	require.NoError(t, err)

	_, ok := rng.RNDR()
	assert.True(t, ok)

	a := make([]byte, 32)
	b := make([]byte, 32)
	_, err = rng.Read(a)
	require.NoError(t, err)
	_, err = rng.Read(b)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b))
}
