package limb

import "math/bits"

// Add sets z = x + y and returns the carry out of the most significant
// limb (0 or 1).
func Add(z, x, y []Limb) Limb {
	return AddCarry(z, x, y, 0)
}

// AddCarry sets z = x + y + c, where c is 0 or 1, and returns the carry out.
func AddCarry(z, x, y []Limb, c Limb) Limb {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = bits.Add(x[i], y[i], c)
	}
	return c
}

// Sub sets z = x - y and returns the borrow out of the most significant
// limb (0 or 1).
func Sub(z, x, y []Limb) Limb {
	return SubBorrow(z, x, y, 0)
}

// SubBorrow sets z = x - y - b, where b is 0 or 1, and returns the borrow out.
func SubBorrow(z, x, y []Limb, b Limb) Limb {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], b = bits.Sub(x[i], y[i], b)
	}
	return b
}

// AddLimb sets z = x + y for a single limb y and returns the carry out.
// Every limb is visited even once the carry settles, so z always receives a
// full copy of x.
func AddLimb(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = bits.Add(x[i], c, 0)
	}
	return c
}

// SubLimb sets z = x - y for a single limb y and returns the borrow out.
func SubLimb(z, x []Limb, y Limb) (b Limb) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], b = bits.Sub(x[i], b, 0)
	}
	return b
}

// Neg sets z = -x in two's complement and returns 1 if x was non-zero.
func Neg(z, x []Limb) (b Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], b = bits.Sub(0, x[i], b)
	}
	return b
}
