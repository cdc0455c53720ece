/*
Package limb implements fixed-length integer arithmetic over slices of
machine words.

A value is a []Limb in little-endian limb order: index 0 holds the least
significant limb. Unless a function says otherwise, every slice argument
must have the same length, and that length is the width of the integer.
None of the functions allocate; callers provide the destination and any
scratch space, usually by slicing a fixed-size array on the stack.

Functions that write to z allow z to alias an input unless documented
otherwise.
*/
package limb

import "math/bits"

// Limb is a single native machine word.
type Limb = uint

// ILimb is the signed counterpart to Limb.
type ILimb = int

const (
	Bits  = bits.UintSize
	Bytes = Bits / 8
	Max   = ^Limb(0)

	signBit = Limb(1) << (Bits - 1)
)

// IsZero reports whether every limb in x is zero.
func IsZero(x []Limb) bool {
	var acc Limb
	for _, v := range x {
		acc |= v
	}
	return acc == 0
}

// Len returns the number of limbs needed to represent x as an unsigned
// value; leading zero limbs are not counted.
func Len(x []Limb) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

// Negative reports whether the two's complement sign bit of x is set.
func Negative(x []Limb) bool {
	return x[len(x)-1]&signBit != 0
}

// Fill returns the limb that sign-extends x: all ones if x is negative,
// zero otherwise.
func Fill(x []Limb) Limb {
	return -(x[len(x)-1] >> (Bits - 1))
}

// SetLimb sets z to the unsigned value v.
func SetLimb(z []Limb, v Limb) {
	clear(z)
	z[0] = v
}

// SetILimb sets z to the sign-extended value v.
func SetILimb(z []Limb, v ILimb) {
	fill := Limb(v >> (Bits - 1))
	for i := range z {
		z[i] = fill
	}
	z[0] = Limb(v)
}
