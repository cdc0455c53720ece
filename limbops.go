package num

import (
	"github.com/shabbyrobe/go-num256/internal/limb"
)

// AddLimb returns u+n for a single limb n, following the same policy as Add.
func (u U256) AddLimb(n Limb) U256 {
	v, o := u.OverflowingAddLimb(n)
	if overflowChecks {
		return strict(kindU256, msgAdd, v, o)
	}
	return v
}

func (u U256) WrappingAddLimb(n Limb) (v U256) {
	limb.AddLimb(v.limbs[:], u.limbs[:], n)
	return v
}

func (u U256) OverflowingAddLimb(n Limb) (v U256, overflow bool) {
	c := limb.AddLimb(v.limbs[:], u.limbs[:], n)
	return v, c != 0
}

func (u U256) CheckedAddLimb(n Limb) (U256, bool) { return checked[U256](u.OverflowingAddLimb(n)) }

func (u U256) SubLimb(n Limb) U256 {
	v, o := u.OverflowingSubLimb(n)
	if overflowChecks {
		return strict(kindU256, msgSub, v, o)
	}
	return v
}

func (u U256) WrappingSubLimb(n Limb) (v U256) {
	limb.SubLimb(v.limbs[:], u.limbs[:], n)
	return v
}

func (u U256) OverflowingSubLimb(n Limb) (v U256, overflow bool) {
	b := limb.SubLimb(v.limbs[:], u.limbs[:], n)
	return v, b != 0
}

func (u U256) CheckedSubLimb(n Limb) (U256, bool) { return checked[U256](u.OverflowingSubLimb(n)) }

func (u U256) MulLimb(n Limb) U256 {
	v, o := u.OverflowingMulLimb(n)
	if overflowChecks {
		return strict(kindU256, msgMul, v, o)
	}
	return v
}

func (u U256) WrappingMulLimb(n Limb) (v U256) {
	limb.MulLimb(v.limbs[:], u.limbs[:], n)
	return v
}

// OverflowingMulLimb returns u*n and reports whether any bits were carried
// out of the top limb.
func (u U256) OverflowingMulLimb(n Limb) (v U256, overflow bool) {
	c := limb.MulLimb(v.limbs[:], u.limbs[:], n)
	return v, c != 0
}

func (u U256) CheckedMulLimb(n Limb) (U256, bool) { return checked[U256](u.OverflowingMulLimb(n)) }

// QuoRemLimb returns the quotient and remainder of u divided by a single
// limb. This is much faster than QuoRem. If n == 0, a division-by-zero
// run-time panic occurs.
func (u U256) QuoRemLimb(n Limb) (q U256, r Limb) {
	if n == 0 {
		panic("u256: division by zero")
	}
	r = limb.QuoRemLimb(q.limbs[:], u.limbs[:], n)
	return q, r
}

func (u U256) QuoLimb(n Limb) (q U256) {
	q, _ = u.QuoRemLimb(n)
	return q
}

// RemLimb returns u % n without computing the quotient.
func (u U256) RemLimb(n Limb) Limb {
	if n == 0 {
		panic("u256: division by zero")
	}
	return limb.RemLimb(u.limbs[:], n)
}

func (u U256) WrappingQuoRemLimb(n Limb) (U256, Limb) { return u.QuoRemLimb(n) }

func (u U256) OverflowingQuoRemLimb(n Limb) (q U256, r Limb, overflow bool) {
	q, r = u.QuoRemLimb(n)
	return q, r, false
}

func (u U256) CheckedQuoRemLimb(n Limb) (q U256, r Limb, ok bool) {
	if n == 0 {
		return q, r, false
	}
	q, r = u.QuoRemLimb(n)
	return q, r, true
}

func (u U256) CheckedQuoLimb(n Limb) (U256, bool) {
	if n == 0 {
		return U256{}, false
	}
	return u.QuoLimb(n), true
}

func (u U256) CheckedRemLimb(n Limb) (Limb, bool) {
	if n == 0 {
		return 0, false
	}
	return u.RemLimb(n), true
}

// AddILimb returns i+n for a single signed limb n, following the same policy
// as Add.
func (i I256) AddILimb(n ILimb) I256 {
	v, o := i.OverflowingAddILimb(n)
	if overflowChecks {
		return strict(kindI256, msgAdd, v, o)
	}
	return v
}

func (i I256) WrappingAddILimb(n ILimb) I256 {
	v, _ := i.OverflowingAddILimb(n)
	return v
}

// OverflowingAddILimb adds the magnitude of n, or subtracts it if n is
// negative. Overflow is only possible towards the sign of n.
func (i I256) OverflowingAddILimb(n ILimb) (v I256, overflow bool) {
	if n >= 0 {
		limb.AddLimb(v.limbs[:], i.limbs[:], Limb(n))
		return v, !i.IsNegative() && v.IsNegative()
	}
	limb.SubLimb(v.limbs[:], i.limbs[:], Limb(-n))
	return v, i.IsNegative() && !v.IsNegative()
}

func (i I256) CheckedAddILimb(n ILimb) (I256, bool) { return checked[I256](i.OverflowingAddILimb(n)) }

func (i I256) SubILimb(n ILimb) I256 {
	v, o := i.OverflowingSubILimb(n)
	if overflowChecks {
		return strict(kindI256, msgSub, v, o)
	}
	return v
}

func (i I256) WrappingSubILimb(n ILimb) I256 {
	v, _ := i.OverflowingSubILimb(n)
	return v
}

func (i I256) OverflowingSubILimb(n ILimb) (v I256, overflow bool) {
	if n >= 0 {
		limb.SubLimb(v.limbs[:], i.limbs[:], Limb(n))
		return v, i.IsNegative() && !v.IsNegative()
	}
	limb.AddLimb(v.limbs[:], i.limbs[:], Limb(-n))
	return v, !i.IsNegative() && v.IsNegative()
}

func (i I256) CheckedSubILimb(n ILimb) (I256, bool) { return checked[I256](i.OverflowingSubILimb(n)) }

func (i I256) MulILimb(n ILimb) I256 {
	v, o := i.OverflowingMulILimb(n)
	if overflowChecks {
		return strict(kindI256, msgMul, v, o)
	}
	return v
}

func (i I256) WrappingMulILimb(n ILimb) I256 {
	v, _ := i.OverflowingMulILimb(n)
	return v
}

// OverflowingMulILimb multiplies the magnitudes and negates the product if
// the signs differ. The product overflows if it exceeds 2^255, or equals it
// with a positive result.
func (i I256) OverflowingMulILimb(n ILimb) (I256, bool) {
	var p U256
	abs := i.UnsignedAbs()
	c := limb.MulLimb(p.limbs[:], abs.limbs[:], absILimb(n))
	neg := i.IsNegative() != (n < 0)
	overflow := c != 0 || (!p.IsI256() && !(neg && p.Equal(MinI256.AsU256())))
	v := p.AsI256()
	if neg {
		v = v.WrappingNeg()
	}
	return v, overflow
}

func (i I256) CheckedMulILimb(n ILimb) (I256, bool) { return checked[I256](i.OverflowingMulILimb(n)) }

// QuoRemILimb returns the truncated quotient and remainder of i divided by a
// single signed limb. The remainder takes the sign of i. MinI256 / -1 wraps
// to MinI256, unless built with the num_overflowchecks tag. If n == 0, a
// division-by-zero run-time panic occurs.
func (i I256) QuoRemILimb(n ILimb) (q I256, r ILimb) {
	if overflowChecks {
		q, r, o := i.OverflowingQuoRemILimb(n)
		return strict(kindI256, msgDiv, q, o), r
	}
	return i.WrappingQuoRemILimb(n)
}

func (i I256) QuoILimb(n ILimb) (q I256) {
	q, _ = i.QuoRemILimb(n)
	return q
}

// RemILimb returns i % n, which takes the sign of i. MinI256 % -1 is zero.
func (i I256) RemILimb(n ILimb) (r ILimb) {
	_, r = i.WrappingQuoRemILimb(n)
	return r
}

func (i I256) WrappingQuoRemILimb(n ILimb) (q I256, r ILimb) {
	if n == 0 {
		panic("i256: division by zero")
	}
	var qu U256
	abs := i.UnsignedAbs()
	ru := limb.QuoRemLimb(qu.limbs[:], abs.limbs[:], absILimb(n))
	q, r = qu.AsI256(), ILimb(ru)
	if i.IsNegative() != (n < 0) {
		q = q.WrappingNeg()
	}
	if i.IsNegative() {
		r = -r
	}
	return q, r
}

// OverflowingQuoRemILimb returns (MinI256, 0, true) for MinI256 / -1.
func (i I256) OverflowingQuoRemILimb(n ILimb) (q I256, r ILimb, overflow bool) {
	q, r = i.WrappingQuoRemILimb(n)
	return q, r, n == -1 && i.Equal(MinI256)
}

func (i I256) CheckedQuoRemILimb(n ILimb) (q I256, r ILimb, ok bool) {
	if n == 0 || (n == -1 && i.Equal(MinI256)) {
		return q, r, false
	}
	q, r = i.WrappingQuoRemILimb(n)
	return q, r, true
}

func (i I256) CheckedQuoILimb(n ILimb) (q I256, ok bool) {
	q, _, ok = i.CheckedQuoRemILimb(n)
	return q, ok
}

func (i I256) CheckedRemILimb(n ILimb) (ILimb, bool) {
	if n == 0 {
		return 0, false
	}
	return i.RemILimb(n), true
}

// absILimb returns the magnitude of n. The magnitude of the most negative
// ILimb is representable as a Limb.
func absILimb(n ILimb) Limb {
	if n < 0 {
		return Limb(-n)
	}
	return Limb(n)
}
