package limb

import "math/bits"

// Sign carries the behaviour that differs between the unsigned and the two's
// complement signed reading of the same limbs. The two implementations are
// the Unsigned and Signed values; Sign cannot be implemented outside this
// package.
type Sign interface {
	Signed() bool

	// Cmp compares x and y, visiting every limb regardless of where they
	// first differ. It returns -1, 0 or +1.
	Cmp(x, y []Limb) int

	// CmpShort compares x and y, returning as soon as the ordering is
	// known. It always agrees with Cmp.
	CmpShort(x, y []Limb) int

	// AddOverflows reports whether z = x + y, computed with a final carry
	// out of c, overflowed. z must not alias x or y.
	AddOverflows(x, y, z []Limb, c Limb) bool

	// SubOverflows reports whether z = x - y, computed with a final borrow
	// out of b, overflowed. z must not alias x or y.
	SubOverflows(x, y, z []Limb, b Limb) bool

	// MulFull sets z to the full double-width product of x and y. len(z)
	// must equal len(x)+len(y); z must not alias x or y.
	MulFull(z, x, y []Limb)

	// Truncates reports whether the double-width product full is not
	// representable in its low n limbs.
	Truncates(full []Limb, n int) bool

	bias() Limb
}

type unsigned struct{}
type signed struct{}

var (
	Unsigned Sign = unsigned{}
	Signed   Sign = signed{}
)

func (unsigned) Signed() bool { return false }
func (unsigned) bias() Limb   { return 0 }

func (s unsigned) Cmp(x, y []Limb) int      { return cmp(x, y, s.bias()) }
func (s unsigned) CmpShort(x, y []Limb) int { return cmpShort(x, y, s.bias()) }

func (unsigned) AddOverflows(x, y, z []Limb, c Limb) bool { return c != 0 }
func (unsigned) SubOverflows(x, y, z []Limb, b Limb) bool { return b != 0 }

func (unsigned) MulFull(z, x, y []Limb) { Mul(z, x, y) }

func (unsigned) Truncates(full []Limb, n int) bool {
	return !IsZero(full[n:])
}

func (signed) Signed() bool { return true }
func (signed) bias() Limb   { return signBit }

func (s signed) Cmp(x, y []Limb) int      { return cmp(x, y, s.bias()) }
func (s signed) CmpShort(x, y []Limb) int { return cmpShort(x, y, s.bias()) }

// Overflow happens when both operands share a sign and the result does not.
func (signed) AddOverflows(x, y, z []Limb, c Limb) bool {
	n := len(z) - 1
	sx, sy, sz := x[n]>>(Bits-1), y[n]>>(Bits-1), z[n]>>(Bits-1)
	return ^(sx^sy)&(sx^sz)&1 != 0
}

// Overflow happens when the operands differ in sign and the result's sign
// differs from the minuend.
func (signed) SubOverflows(x, y, z []Limb, b Limb) bool {
	n := len(z) - 1
	sx, sy, sz := x[n]>>(Bits-1), y[n]>>(Bits-1), z[n]>>(Bits-1)
	return (sx^sy)&(sx^sz)&1 != 0
}

// MulFull takes the unsigned product and corrects the high half: a negative
// x is x - 2^w, so y*2^w is subtracted from the product, and likewise for y.
func (signed) MulFull(z, x, y []Limb) {
	Mul(z, x, y)
	if Negative(x) {
		Sub(z[len(x):], z[len(x):], y)
	}
	if Negative(y) {
		Sub(z[len(y):], z[len(y):], x)
	}
}

func (signed) Truncates(full []Limb, n int) bool {
	fill := Fill(full[:n])
	var acc Limb
	for _, v := range full[n:] {
		acc |= v ^ fill
	}
	return acc != 0
}

// cmp flips the sign bit of the top limb by bias, which turns a signed
// comparison into an unsigned one, then combines per-limb less/greater flags
// without branching on the data.
func cmp(x, y []Limb, bias Limb) int {
	n := len(x) - 1
	_, lt := bits.Sub(x[n]^bias, y[n]^bias, 0)
	_, gt := bits.Sub(y[n]^bias, x[n]^bias, 0)
	for i := n - 1; i >= 0; i-- {
		_, l := bits.Sub(x[i], y[i], 0)
		_, g := bits.Sub(y[i], x[i], 0)
		open := 1 ^ (lt | gt)
		lt |= l & open
		gt |= g & open
	}
	return int(gt) - int(lt)
}

func cmpShort(x, y []Limb, bias Limb) int {
	n := len(x) - 1
	if a, b := x[n]^bias, y[n]^bias; a != b {
		if a < b {
			return -1
		}
		return 1
	}
	for i := n - 1; i >= 0; i-- {
		if a, b := x[i], y[i]; a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y hold the same limbs, visiting every limb.
func Equal(x, y []Limb) bool {
	var acc Limb
	for i := 0; i < len(x) && i < len(y); i++ {
		acc |= x[i] ^ y[i]
	}
	return acc == 0
}

// EqualShort is Equal, returning at the first differing limb.
func EqualShort(x, y []Limb) bool {
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
