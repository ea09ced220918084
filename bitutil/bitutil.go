package bitutil

// SetBit returns num with bit i (0 = least significant) set to v,
// leaving all other bits untouched.
func SetBit(num uint64, i uint, v bool) uint64 {
	mask := uint64(1) << i
	if v {
		return num | mask
	}
	return num &^ mask
}

// GetBit reports whether bit i (0 = least significant) of num is set.
func GetBit(num uint64, i uint) bool {
	return (num>>i)&1 != 0
}

// EntwineBits interleaves two bit streams into a single n-bit result.
//
// For each bit position 0..n-1 (in increasing order) the next bit is
// consumed from the low end of offBits when the corresponding selector bit
// is 0, or from the low end of onBits when it is 1, and placed into the
// result at that position. Excess high bits of either input are ignored.
//
// The caller must supply enough bits in offBits to cover every 0 bit of
// selector among the low n bits, and symmetrically for onBits; behavior on
// underflow is unspecified.
func EntwineBits(n uint, selector, offBits, onBits uint64) uint64 {
	var result uint64

	for i := uint(0); i < n; i++ {
		if selector&1 == 0 {
			result |= (offBits & 1) << i
			offBits >>= 1
		} else {
			result |= (onBits & 1) << i
			onBits >>= 1
		}
		selector >>= 1
	}

	return result
}

// FlatIndex returns the row-major position of element (i, j) in a dense
// operator matrix of size 2^nindices x 2^nindices.
func FlatIndex(nindices uint, i, j uint64) uint64 {
	return (i << nindices) + j
}
