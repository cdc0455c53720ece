package limb

import "math/bits"

// QuoRemLimb sets z = x / y and returns x % y, treating x as unsigned. The
// remainder is carried down from the most significant limb. y must not be
// zero.
func QuoRemLimb(z, x []Limb, y Limb) (r Limb) {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div(r, x[i], y)
	}
	return r
}

// RemLimb returns x % y, treating x as unsigned. y must not be zero.
func RemLimb(x []Limb, y Limb) (r Limb) {
	for i := len(x) - 1; i >= 0; i-- {
		r = bits.Rem(r, x[i], y)
	}
	return r
}

// QuoRem sets q = u / v and r = u % v treating every operand as unsigned.
// d is scratch space of the same length. v must not be zero, and q, r and d
// must not alias u, v or each other.
func QuoRem(q, r, u, v, d []Limb) {
	if IsZero(v) {
		panic("limb: division by zero")
	}

	if Len(v) == 1 {
		rem := QuoRemLimb(q, u, v[0])
		SetLimb(r, rem)
		return
	}

	if c := Unsigned.Cmp(u, v); c < 0 {
		clear(q)
		copy(r, u) // it's 100% remainder
		return
	} else if c == 0 {
		SetLimb(q, 1) // dividend and divisor are the same
		clear(r)
		return
	}

	width := uint(len(v)) * Bits
	vLeading0 := LeadingZeros(v)
	vTrailing0 := TrailingZeros(v)
	if vLeading0+vTrailing0 == width-1 {
		// Power of two:
		Shr(q, u, vTrailing0, 0)
		SubLimb(r, v, 1)
		And(r, r, u)
		return
	}

	quoRemBin(q, r, u, v, d, LeadingZeros(u), vLeading0)
}

// quoRemBin is shift-subtract long division. It aligns the top bit of v with
// the top bit of u, then produces one quotient bit per step while shifting
// the divisor back down. u must be greater than v.
func quoRemBin(q, r, u, v, d []Limb, uLeading0, vLeading0 uint) {
	shift := vLeading0 - uLeading0
	Shl(d, v, shift)
	copy(r, u)
	clear(q)

	for {
		Shl(q, q, 1)

		if Unsigned.CmpShort(r, d) >= 0 {
			Sub(r, r, d)
			q[0] |= 1
		}

		Shr(d, d, 1, 0)

		if shift == 0 {
			break
		}
		shift--
	}
}
