package asm

import (
	"encoding/binary"
	"runtime"

	"github.com/pkg/errors"

	"cortexa/src/lib/bitfield"

	arm64 "cortexa/src/hardware/arm-cortex-a53"
)

// ErrNoRNG means the core does not implement FEAT_RNG.
var ErrNoRNG = errors.New("asm: RNDR not implemented")

// ErrEntropy is returned by Read when the generator keeps failing.
var ErrEntropy = errors.New("asm: RNDR failed to return entropy")

// readRetries bounds how often Read retries a failed RNDR per word.
const readRetries = 10

// RNG is proof that the RNDR and RNDRRS registers exist, so the accessors
// do not check on every call.
type RNG struct {
	rndr   func() (uint64, bool)
	rndrrs func() (uint64, bool)
}

// NewRNG checks ID_AA64ISAR0_EL1.RNDR through id.
func NewRNG(id bitfield.Readable[uint64, arm64.ID_AA64ISAR0_EL1_Register]) (*RNG, error) {
	if !bitfield.IsSet(id, arm64.ID_AA64ISAR0_EL1_RNDR) {
		return nil, ErrNoRNG
	}
	return &RNG{rndr: rndr, rndrrs: rndrrs}, nil
}

// DetectRNG is NewRNG against the running core. Off arm64 it reports
// bitfield.ErrUnsupportedTarget instead of panicking.
func DetectRNG() (*RNG, error) {
	if runtime.GOARCH != "arm64" {
		return nil, errors.WithStack(bitfield.Unsupported("MRS ID_AA64ISAR0_EL1"))
	}
	return NewRNG(arm64.ID_AA64ISAR0_EL1)
}

// RNDR returns a random number. ok is false when the generator could not
// produce one in reasonable time; the caller may retry.
func (r *RNG) RNDR() (v uint64, ok bool) { return r.rndr() }

// RNDRRS is RNDR after reseeding the generator from the true entropy
// source. It is slower and fails more often.
func (r *RNG) RNDRRS() (v uint64, ok bool) { return r.rndrrs() }

// Read fills p from RNDR.
func (r *RNG) Read(p []byte) (int, error) {
	var word [8]byte
	n := 0
	for n < len(p) {
		v, ok := r.retry()
		if !ok {
			return n, ErrEntropy
		}
		binary.LittleEndian.PutUint64(word[:], v)
		n += copy(p[n:], word[:])
	}
	return n, nil
}

func (r *RNG) retry() (uint64, bool) {
	for i := 0; i < readRetries; i++ {
		if v, ok := r.rndr(); ok {
			return v, true
		}
	}
	return 0, false
}
