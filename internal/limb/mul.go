package limb

import "math/bits"

// mulAddWWW returns x*y + c as a double-limb value.
func mulAddWWW(x, y, c Limb) (hi, lo Limb) {
	hi, lo = bits.Mul(x, y)
	var cc Limb
	lo, cc = bits.Add(lo, c, 0)
	return hi + cc, lo
}

// MulAddLimb sets z = x*y + r and returns the limb carried out of the most
// significant position.
func MulAddLimb(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// MulLimb sets z = x*y and returns the carry limb.
func MulLimb(z, x []Limb, y Limb) Limb {
	return MulAddLimb(z, x, y, 0)
}

// addMulLimb sets z += x*y and returns the carry limb.
func addMulLimb(z, x []Limb, y Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(z0, c, 0)
		c, z[i] = cc+z1, lo
	}
	return c
}

// Mul sets z to the full product x*y. len(z) must equal len(x)+len(y). z
// must not alias x or y.
func Mul(z, x, y []Limb) {
	clear(z)
	n := len(x)
	for i, yi := range y {
		if yi != 0 {
			z[n+i] = addMulLimb(z[i:i+n], x, yi)
		}
	}
}

// MulLow sets z to the low len(z) limbs of x*y, discarding everything above.
// z must not alias x or y.
func MulLow(z, x, y []Limb) {
	clear(z)
	n := len(z)
	for i := 0; i < n && i < len(y); i++ {
		if y[i] != 0 {
			addMulLimb(z[i:n], x[:n-i], y[i])
		}
	}
}
