package num

import (
	"github.com/shabbyrobe/go-num256/internal/limb"
)

// I256 is a signed 256-bit two's complement integer with the same wrapping,
// shifting and comparison behaviour as Go's native signed integers.
//
// I256 shares the layout of U256; converting between the two with AsU256
// and AsI256 reinterprets the bits without changing them.
type I256 struct {
	limbs [Limbs]Limb
}

// I256FromRaw is the complement to I256.Raw(); it creates an I256 from the
// high and low 128-bit halves.
func I256FromRaw(hi I128, lo U128) I256 {
	return U256FromRaw(hi.AsU128(), lo).AsI256()
}

// Raw returns access to the I256 as its high and low 128-bit halves. See
// I256FromRaw() for the counterpart.
func (i I256) Raw() (hi I128, lo U128) { return i.High(), i.Low() }

// High returns the most significant 128 bits of i, which carry the sign.
func (i I256) High() I128 { return i.AsU256().High().AsI128() }

// Low returns the least significant 128 bits of i.
func (i I256) Low() U128 { return i.AsU256().Low() }

func (i I256) IsZero() bool { return limb.IsZero(i.limbs[:]) }

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become values > MaxI256.
func (i I256) AsU256() U256 { return U256{limbs: i.limbs} }

// IsU256 reports whether i can be represented in a U256.
func (i I256) IsU256() bool { return !i.IsNegative() }

func (i I256) IsNegative() bool { return limb.Negative(i.limbs[:]) }
func (i I256) IsPositive() bool { return !i.IsNegative() && !i.IsZero() }

// Sign returns -1 if i < 0, 0 if i == 0 and +1 if i > 0.
func (i I256) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

func (i I256) Inc() (v I256) {
	limb.AddLimb(v.limbs[:], i.limbs[:], 1)
	return v
}

func (i I256) Dec() (v I256) {
	limb.SubLimb(v.limbs[:], i.limbs[:], 1)
	return v
}

func (i I256) WrappingAdd(n I256) (v I256) {
	limb.Add(v.limbs[:], i.limbs[:], n.limbs[:])
	return v
}

// OverflowingAdd returns i+n and reports whether the true sum lies outside
// [MinI256, MaxI256].
func (i I256) OverflowingAdd(n I256) (v I256, overflow bool) {
	c := limb.Add(v.limbs[:], i.limbs[:], n.limbs[:])
	return v, limb.Signed.AddOverflows(i.limbs[:], n.limbs[:], v.limbs[:], c)
}

// CarryingAdd returns i+n+carry and whether the result overflowed.
func (i I256) CarryingAdd(n I256, carry bool) (I256, bool) {
	v, o1 := i.OverflowingAdd(n)
	v, o2 := v.OverflowingAddILimb(ILimb(bitLimb(carry)))
	return v, o1 || o2
}

func (i I256) WrappingSub(n I256) (v I256) {
	limb.Sub(v.limbs[:], i.limbs[:], n.limbs[:])
	return v
}

func (i I256) OverflowingSub(n I256) (v I256, overflow bool) {
	b := limb.Sub(v.limbs[:], i.limbs[:], n.limbs[:])
	return v, limb.Signed.SubOverflows(i.limbs[:], n.limbs[:], v.limbs[:], b)
}

// BorrowingSub returns i-n-borrow and whether the result overflowed.
func (i I256) BorrowingSub(n I256, borrow bool) (I256, bool) {
	v, o1 := i.OverflowingSub(n)
	v, o2 := v.OverflowingSubILimb(ILimb(bitLimb(borrow)))
	return v, o1 || o2
}

// WrappingMul returns the low 256 bits of i*n. Two's complement makes
// these bits the same as for the unsigned product.
func (i I256) WrappingMul(n I256) (v I256) {
	limb.MulLow(v.limbs[:], i.limbs[:], n.limbs[:])
	return v
}

func (i I256) OverflowingMul(n I256) (v I256, overflow bool) {
	var full [2 * Limbs]Limb
	limb.Signed.MulFull(full[:], i.limbs[:], n.limbs[:])
	copy(v.limbs[:], full[:Limbs])
	return v, limb.Signed.Truncates(full[:], Limbs)
}

// WideningMul returns the full 512-bit signed product of i and n. lo holds
// the low 256 bits, hi the signed high 256 bits.
func (i I256) WideningMul(n I256) (lo U256, hi I256) {
	var full [2 * Limbs]Limb
	limb.Signed.MulFull(full[:], i.limbs[:], n.limbs[:])
	copy(lo.limbs[:], full[:Limbs])
	copy(hi.limbs[:], full[Limbs:])
	return lo, hi
}

// quoRem divides the magnitudes and restores the signs afterwards. The
// quotient is truncated towards zero and the remainder takes the sign of
// the dividend. MinI256 / -1 wraps to MinI256.
func (i I256) quoRem(by I256) (q, r I256) {
	if by.IsZero() {
		panic("i256: division by zero")
	}
	qu, ru := i.UnsignedAbs().quoRem(by.UnsignedAbs())
	q, r = qu.AsI256(), ru.AsI256()
	if i.IsNegative() != by.IsNegative() {
		q = q.WrappingNeg()
	}
	if i.IsNegative() {
		r = r.WrappingNeg()
	}
	return q, r
}

// divOverflows reports the single quotient that cannot be represented.
func (i I256) divOverflows(by I256) bool {
	return i.Equal(MinI256) && by.Equal(negOne)
}

// euclid adjusts a truncated quotient and remainder so the remainder is never
// negative.
func (i I256) euclid(by, q, r I256) (I256, I256) {
	if r.IsNegative() {
		if by.IsNegative() {
			q = q.Inc()
		} else {
			q = q.Dec()
		}
		r = r.WrappingAdd(by.WrappingAbs())
	}
	return q, r
}

func (i I256) WrappingNeg() (v I256) {
	limb.Neg(v.limbs[:], i.limbs[:])
	return v
}

// OverflowingNeg returns -i, reporting overflow for MinI256, whose negation
// wraps back to MinI256.
func (i I256) OverflowingNeg() (I256, bool) {
	return i.WrappingNeg(), i.Equal(MinI256)
}

// WrappingAbs returns |i|, except that MinI256 returns itself.
func (i I256) WrappingAbs() I256 {
	if i.IsNegative() {
		return i.WrappingNeg()
	}
	return i
}

func (i I256) OverflowingAbs() (I256, bool) {
	return i.WrappingAbs(), i.Equal(MinI256)
}

// UnsignedAbs returns |i| as a U256, which holds every magnitude including
// that of MinI256.
func (i I256) UnsignedAbs() U256 {
	return i.WrappingAbs().AsU256()
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Every limb is visited whatever the inputs; see CmpShort for a variant that
// stops at the first difference.
func (i I256) Cmp(n I256) int { return limb.Signed.Cmp(i.limbs[:], n.limbs[:]) }

// CmpShort is Cmp, returning as soon as the ordering is known.
func (i I256) CmpShort(n I256) int { return limb.Signed.CmpShort(i.limbs[:], n.limbs[:]) }

func (i I256) Equal(n I256) bool      { return limb.Equal(i.limbs[:], n.limbs[:]) }
func (i I256) EqualShort(n I256) bool { return limb.EqualShort(i.limbs[:], n.limbs[:]) }

func (i I256) GreaterThan(n I256) bool      { return i.Cmp(n) > 0 }
func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }
func (i I256) LessThan(n I256) bool         { return i.Cmp(n) < 0 }
func (i I256) LessOrEqualTo(n I256) bool    { return i.Cmp(n) <= 0 }

func (i I256) And(n I256) I256    { return i.AsU256().And(n.AsU256()).AsI256() }
func (i I256) AndNot(n I256) I256 { return i.AsU256().AndNot(n.AsU256()).AsI256() }
func (i I256) Or(n I256) I256     { return i.AsU256().Or(n.AsU256()).AsI256() }
func (i I256) Xor(n I256) I256    { return i.AsU256().Xor(n.AsU256()).AsI256() }
func (i I256) Not() I256          { return i.AsU256().Not().AsI256() }

// WrappingLsh returns i << (n % 256).
func (i I256) WrappingLsh(n uint) I256 { return i.AsU256().WrappingLsh(n).AsI256() }

// WrappingRsh returns the arithmetic shift i >> (n % 256).
func (i I256) WrappingRsh(n uint) (v I256) {
	limb.Shr(v.limbs[:], i.limbs[:], n%Bits, limb.Fill(i.limbs[:]))
	return v
}

func (i I256) OverflowingLsh(n uint) (I256, bool) { return i.WrappingLsh(n), n >= Bits }
func (i I256) OverflowingRsh(n uint) (I256, bool) { return i.WrappingRsh(n), n >= Bits }

// UnboundedLsh returns i << n without masking n; any shift of 256 or more
// returns zero.
func (i I256) UnboundedLsh(n uint) I256 {
	if n >= Bits {
		return I256{}
	}
	return i.WrappingLsh(n)
}

// UnboundedRsh returns i >> n without masking n; any shift of 256 or more
// returns zero, including for negative values. See Rsh for a shift that
// fills with the sign instead.
func (i I256) UnboundedRsh(n uint) I256 {
	if n >= Bits {
		return I256{}
	}
	return i.WrappingRsh(n)
}

// Lsh256 shifts i left by the low 32 bits of n, masked to the width of i.
func (i I256) Lsh256(n I256) I256 { return i.WrappingLsh(uint(n.AsUint32())) }

// Rsh256 shifts i right by the low 32 bits of n, masked to the width of i.
func (i I256) Rsh256(n I256) I256 { return i.WrappingRsh(uint(n.AsUint32())) }

func (i I256) RotateLeft(n uint) I256  { return i.AsU256().RotateLeft(n).AsI256() }
func (i I256) RotateRight(n uint) I256 { return i.AsU256().RotateRight(n).AsI256() }

func (i I256) OnesCount() uint     { return limb.OnesCount(i.limbs[:]) }
func (i I256) ZerosCount() uint    { return i.Not().OnesCount() }
func (i I256) LeadingZeros() uint  { return limb.LeadingZeros(i.limbs[:]) }
func (i I256) LeadingOnes() uint   { return limb.LeadingOnes(i.limbs[:]) }
func (i I256) TrailingZeros() uint { return limb.TrailingZeros(i.limbs[:]) }
func (i I256) TrailingOnes() uint  { return limb.TrailingOnes(i.limbs[:]) }

// BitLen returns the length of the absolute value of i in bits, like
// big.Int.BitLen. The bit length of 0 is 0.
func (i I256) BitLen() int { return i.UnsignedAbs().BitLen() }

// Bit returns the i'th bit of the two's complement representation.
func (i I256) Bit(n int) uint { return i.AsU256().Bit(n) }

// SetBit returns a copy of i with bit n of the two's complement
// representation set to b.
func (i I256) SetBit(n int, b uint) I256 { return i.AsU256().SetBit(n, b).AsI256() }

func (i I256) IsEven() bool { return i.limbs[0]&1 == 0 }
func (i I256) IsOdd() bool  { return i.limbs[0]&1 == 1 }

func (i I256) LeastSignificantLimb() Limb { return i.limbs[0] }

// Ilog2 returns the base 2 logarithm of i, rounded down. It panics if i is
// not positive.
func (i I256) Ilog2() uint {
	v, ok := i.CheckedIlog2()
	if !ok {
		panic("i256: argument of integer logarithm must be positive")
	}
	return v
}

// CheckedIlog2 returns the base 2 logarithm of i rounded down, or false if i
// is zero or negative.
func (i I256) CheckedIlog2() (uint, bool) {
	if !i.IsPositive() {
		return 0, false
	}
	return Bits - 1 - i.LeadingZeros(), true
}
