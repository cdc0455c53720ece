package num

import (
	"github.com/shabbyrobe/go-num256/internal/limb"
)

// U256 is an unsigned 256-bit integer with the same wrapping, shifting and
// comparison behaviour as Go's native unsigned integers.
//
// U256 is a value type; all operations return new values. The limbs are
// stored least significant first. The layout is not intended to match any
// foreign representation; use the byte and word views for interchange.
type U256 struct {
	limbs [Limbs]Limb
}

// U256FromRaw is the complement to U256.Raw(); it creates a U256 from the
// high and low 128-bit halves.
func U256FromRaw(hi, lo U128) (out U256) {
	out.setU64(0, lo.lo)
	out.setU64(1, lo.hi)
	out.setU64(2, hi.lo)
	out.setU64(3, hi.hi)
	return out
}

// Raw returns access to the U256 as a pair of U128s. See U256FromRaw() for
// the counterpart.
func (u U256) Raw() (hi, lo U128) { return u.High(), u.Low() }

// High returns the most significant 128 bits of u.
func (u U256) High() U128 { return U128{hi: u.u64(3), lo: u.u64(2)} }

// Low returns the least significant 128 bits of u.
func (u U256) Low() U128 { return U128{hi: u.u64(1), lo: u.u64(0)} }

func (u U256) IsZero() bool { return limb.IsZero(u.limbs[:]) }

// AsI256 performs a direct cast of a U256 to an I256, which will interpret it
// as a two's complement value.
func (u U256) AsI256() I256 { return I256{limbs: u.limbs} }

// IsI256 reports whether u can be represented in an I256.
func (u U256) IsI256() bool { return u.limbs[Limbs-1]&limbSign == 0 }

func (u U256) Inc() (v U256) {
	limb.AddLimb(v.limbs[:], u.limbs[:], 1)
	return v
}

func (u U256) Dec() (v U256) {
	limb.SubLimb(v.limbs[:], u.limbs[:], 1)
	return v
}

func (u U256) WrappingAdd(n U256) (v U256) {
	limb.Add(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

// OverflowingAdd returns u+n and reports whether the addition carried out of
// the top bit.
func (u U256) OverflowingAdd(n U256) (v U256, overflow bool) {
	c := limb.Add(v.limbs[:], u.limbs[:], n.limbs[:])
	return v, limb.Unsigned.AddOverflows(u.limbs[:], n.limbs[:], v.limbs[:], c)
}

// CarryingAdd returns u+n+carry, and the carry out. Chaining CarryingAdd
// across several values computes a wider sum.
func (u U256) CarryingAdd(n U256, carry bool) (U256, bool) {
	v, o1 := u.OverflowingAdd(n)
	v, o2 := v.OverflowingAddLimb(bitLimb(carry))
	return v, o1 || o2
}

func (u U256) WrappingSub(n U256) (v U256) {
	limb.Sub(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) OverflowingSub(n U256) (v U256, overflow bool) {
	b := limb.Sub(v.limbs[:], u.limbs[:], n.limbs[:])
	return v, limb.Unsigned.SubOverflows(u.limbs[:], n.limbs[:], v.limbs[:], b)
}

// BorrowingSub returns u-n-borrow, and the borrow out.
func (u U256) BorrowingSub(n U256, borrow bool) (U256, bool) {
	v, o1 := u.OverflowingSub(n)
	v, o2 := v.OverflowingSubLimb(bitLimb(borrow))
	return v, o1 || o2
}

// WrappingMul returns the low 256 bits of u*n. Only the limbs that land in
// the result are computed.
func (u U256) WrappingMul(n U256) (v U256) {
	limb.MulLow(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) OverflowingMul(n U256) (v U256, overflow bool) {
	var full [2 * Limbs]Limb
	limb.Unsigned.MulFull(full[:], u.limbs[:], n.limbs[:])
	copy(v.limbs[:], full[:Limbs])
	return v, limb.Unsigned.Truncates(full[:], Limbs)
}

// WideningMul returns the full 512-bit product of u and n as its low and high
// halves.
func (u U256) WideningMul(n U256) (lo, hi U256) {
	var full [2 * Limbs]Limb
	limb.Unsigned.MulFull(full[:], u.limbs[:], n.limbs[:])
	copy(lo.limbs[:], full[:Limbs])
	copy(hi.limbs[:], full[Limbs:])
	return lo, hi
}

// quoRem is the truncated division shared by every division policy.
func (u U256) quoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic("u256: division by zero")
	}
	var scratch [Limbs]Limb
	limb.QuoRem(q.limbs[:], r.limbs[:], u.limbs[:], by.limbs[:], scratch[:])
	return q, r
}

func (u U256) WrappingNeg() (v U256) {
	limb.Neg(v.limbs[:], u.limbs[:])
	return v
}

// OverflowingNeg returns -u modulo 2^256, and reports true unless u is zero.
func (u U256) OverflowingNeg() (v U256, overflow bool) {
	b := limb.Neg(v.limbs[:], u.limbs[:])
	return v, b != 0
}

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
//
// Every limb is visited whatever the inputs; see CmpShort for a variant that
// stops at the first difference.
func (u U256) Cmp(n U256) int { return limb.Unsigned.Cmp(u.limbs[:], n.limbs[:]) }

// CmpShort is Cmp, returning as soon as the ordering is known.
func (u U256) CmpShort(n U256) int { return limb.Unsigned.CmpShort(u.limbs[:], n.limbs[:]) }

func (u U256) Equal(n U256) bool      { return limb.Equal(u.limbs[:], n.limbs[:]) }
func (u U256) EqualShort(n U256) bool { return limb.EqualShort(u.limbs[:], n.limbs[:]) }

func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) (v U256) {
	limb.And(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) AndNot(n U256) (v U256) {
	limb.AndNot(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) Or(n U256) (v U256) {
	limb.Or(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) Xor(n U256) (v U256) {
	limb.Xor(v.limbs[:], u.limbs[:], n.limbs[:])
	return v
}

func (u U256) Not() (v U256) {
	limb.Not(v.limbs[:], u.limbs[:])
	return v
}

// WrappingLsh returns u << (n % 256).
func (u U256) WrappingLsh(n uint) (v U256) {
	limb.Shl(v.limbs[:], u.limbs[:], n%Bits)
	return v
}

// WrappingRsh returns u >> (n % 256).
func (u U256) WrappingRsh(n uint) (v U256) {
	limb.Shr(v.limbs[:], u.limbs[:], n%Bits, 0)
	return v
}

// OverflowingLsh returns u.WrappingLsh(n) and reports whether n >= 256.
func (u U256) OverflowingLsh(n uint) (U256, bool) { return u.WrappingLsh(n), n >= Bits }

// OverflowingRsh returns u.WrappingRsh(n) and reports whether n >= 256.
func (u U256) OverflowingRsh(n uint) (U256, bool) { return u.WrappingRsh(n), n >= Bits }

// UnboundedLsh returns u << n without masking n; any shift of 256 or more
// returns zero.
func (u U256) UnboundedLsh(n uint) U256 {
	if n >= Bits {
		return U256{}
	}
	return u.WrappingLsh(n)
}

// UnboundedRsh returns u >> n without masking n; any shift of 256 or more
// returns zero.
func (u U256) UnboundedRsh(n uint) U256 {
	if n >= Bits {
		return U256{}
	}
	return u.WrappingRsh(n)
}

// Lsh256 shifts u left by the low 32 bits of n, masked to the width of u.
func (u U256) Lsh256(n U256) U256 { return u.WrappingLsh(uint(n.AsUint32())) }

// Rsh256 shifts u right by the low 32 bits of n, masked to the width of u.
func (u U256) Rsh256(n U256) U256 { return u.WrappingRsh(uint(n.AsUint32())) }

// RotateLeft returns u rotated left by (n % 256) bits.
func (u U256) RotateLeft(n uint) (v U256) {
	var scratch [Limbs]Limb
	limb.RotateLeft(v.limbs[:], u.limbs[:], scratch[:], n)
	return v
}

func (u U256) RotateRight(n uint) U256 {
	return u.RotateLeft(Bits - n%Bits)
}

func (u U256) OnesCount() uint    { return limb.OnesCount(u.limbs[:]) }
func (u U256) ZerosCount() uint   { return u.Not().OnesCount() }
func (u U256) LeadingZeros() uint { return limb.LeadingZeros(u.limbs[:]) }
func (u U256) LeadingOnes() uint  { return limb.LeadingOnes(u.limbs[:]) }

func (u U256) TrailingZeros() uint { return limb.TrailingZeros(u.limbs[:]) }
func (u U256) TrailingOnes() uint  { return limb.TrailingOnes(u.limbs[:]) }

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U256) BitLen() int { return Bits - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. The bit index must be >= 0 and
// < 256.
func (u U256) Bit(i int) uint {
	if i < 0 || i >= Bits {
		panic("u256: bit index out of range")
	}
	return uint(u.limbs[i/LimbBits]>>uint(i%LimbBits)) & 1
}

// SetBit returns a copy of u with the i'th bit set to b (0 or 1).
func (u U256) SetBit(i int, b uint) U256 {
	if i < 0 || i >= Bits {
		panic("u256: bit index out of range")
	}
	mask := Limb(1) << uint(i%LimbBits)
	switch b {
	case 0:
		u.limbs[i/LimbBits] &^= mask
	case 1:
		u.limbs[i/LimbBits] |= mask
	default:
		panic("u256: bit value not 0 or 1")
	}
	return u
}

func (u U256) IsEven() bool { return u.limbs[0]&1 == 0 }
func (u U256) IsOdd() bool  { return u.limbs[0]&1 == 1 }

// IsPowerOfTwo reports whether u has exactly one bit set.
func (u U256) IsPowerOfTwo() bool { return u.OnesCount() == 1 }

// LeastSignificantLimb returns the lowest limb of u.
func (u U256) LeastSignificantLimb() Limb { return u.limbs[0] }

// Ilog2 returns the base 2 logarithm of u, rounded down. It panics if u is
// zero.
func (u U256) Ilog2() uint {
	v, ok := u.CheckedIlog2()
	if !ok {
		panic("u256: argument of integer logarithm must be positive")
	}
	return v
}

// CheckedIlog2 returns the base 2 logarithm of u rounded down, or false if u
// is zero.
func (u U256) CheckedIlog2() (uint, bool) {
	if u.IsZero() {
		return 0, false
	}
	return Bits - 1 - u.LeadingZeros(), true
}

func bitLimb(b bool) Limb {
	if b {
		return 1
	}
	return 0
}
