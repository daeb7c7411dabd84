package bitfield

import "math/bits"

// Width is the set of backing integer types a register may have.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitsOf returns the number of bits in T.
func bitsOf[T Width]() uint8 {
	return uint8(bits.OnesCount64(uint64(^T(0))))
}

// lowMask returns a mask with the low width bits set.
func lowMask[T Width](width uint8) T {
	if width >= bitsOf[T]() {
		return ^T(0)
	}
	return T(1)<<width - 1
}
