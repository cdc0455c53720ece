package limb

import "math/bits"

// OnesCount returns the number of one bits in x.
func OnesCount(x []Limb) (n uint) {
	for _, v := range x {
		n += uint(bits.OnesCount(v))
	}
	return n
}

// LeadingZeros returns the number of leading zero bits in x, counting from
// the most significant limb. The scan stops at the first non-zero limb.
func LeadingZeros(x []Limb) (n uint) {
	for i := len(x) - 1; i >= 0; i-- {
		lz := uint(bits.LeadingZeros(x[i]))
		n += lz
		if lz != Bits {
			break
		}
	}
	return n
}

// TrailingZeros returns the number of trailing zero bits in x.
func TrailingZeros(x []Limb) (n uint) {
	for _, v := range x {
		tz := uint(bits.TrailingZeros(v))
		n += tz
		if tz != Bits {
			break
		}
	}
	return n
}

// LeadingOnes returns the number of leading one bits in x.
func LeadingOnes(x []Limb) (n uint) {
	for i := len(x) - 1; i >= 0; i-- {
		lo := uint(bits.LeadingZeros(^x[i]))
		n += lo
		if lo != Bits {
			break
		}
	}
	return n
}

// TrailingOnes returns the number of trailing one bits in x.
func TrailingOnes(x []Limb) (n uint) {
	for _, v := range x {
		to := uint(bits.TrailingZeros(^v))
		n += to
		if to != Bits {
			break
		}
	}
	return n
}
