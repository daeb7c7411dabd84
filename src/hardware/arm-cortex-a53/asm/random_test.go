package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortexa/src/lib/bitfield"

	arm64 "cortexa/src/hardware/arm-cortex-a53"
)

func TestNewRNGGatesOnFeature(t *testing.T) {
	id := bitfield.NewFake[uint64, arm64.ID_AA64ISAR0_EL1_Register](0x0000_0000_0011_2120)
	_, err := NewRNG(id)
	assert.ErrorIs(t, err, ErrNoRNG)

	id.Poke(arm64.ID_AA64ISAR0_EL1_RNDR_Implemented.Bits())
	rng, err := NewRNG(id)
	require.NoError(t, err)
	assert.NotNil(t, rng)
	assert.Equal(t, 2, id.Reads)
}

// sequence replays results, then fails forever.
func sequence(results ...uint64) func() (uint64, bool) {
	return func() (uint64, bool) {
		if len(results) == 0 {
			return 0, false
		}
		v := results[0]
		results = results[1:]
		return v, true
	}
}

func TestRNGRead(t *testing.T) {
	rng := &RNG{rndr: sequence(0x0807060504030201, 0x100f0e0d0c0b0a09)}
	p := make([]byte, 12)
	n, err := rng.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, p)

	n, err = rng.Read(make([]byte, 4))
	assert.ErrorIs(t, err, ErrEntropy)
	assert.Zero(t, n)
}

func TestRNGReadRetries(t *testing.T) {
	calls := 0
	rng := &RNG{rndr: func() (uint64, bool) {
		calls++
		return 0xff, calls%3 == 0
	}}
	p := make([]byte, 16)
	n, err := rng.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, 6, calls)
	assert.Equal(t, byte(0xff), p[8])
}
