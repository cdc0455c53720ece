package num

// Add returns i+n. Overflow wraps like Go's native signed integers, unless
// the package is built with the num_overflowchecks tag, in which case it
// panics. The same applies to the other operators without a policy prefix:
// Sub, Mul, Pow, Neg, Abs, Quo, Rem, QuoRem, Div, Mod, DivMod, Lsh and Rsh.
func (i I256) Add(n I256) I256 {
	if overflowChecks {
		return i.StrictAdd(n)
	}
	return i.WrappingAdd(n)
}

func (i I256) Sub(n I256) I256 {
	if overflowChecks {
		return i.StrictSub(n)
	}
	return i.WrappingSub(n)
}

func (i I256) Mul(n I256) I256 {
	if overflowChecks {
		return i.StrictMul(n)
	}
	return i.WrappingMul(n)
}

func (i I256) Pow(exp uint) I256 {
	if overflowChecks {
		return i.StrictPow(exp)
	}
	return i.WrappingPow(exp)
}

// Neg returns -i. -MinI256 wraps to MinI256.
func (i I256) Neg() I256 {
	if overflowChecks {
		return i.StrictNeg()
	}
	return i.WrappingNeg()
}

// Abs returns |i|. The absolute value of MinI256 wraps to MinI256; use
// UnsignedAbs to get the true magnitude.
func (i I256) Abs() I256 {
	if overflowChecks {
		return i.StrictAbs()
	}
	return i.WrappingAbs()
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI256 / -1 wraps to MinI256 with a remainder of zero, unless the package
// is built with the num_overflowchecks tag. See DivMod for Euclidean
// division.
func (i I256) QuoRem(by I256) (q, r I256) {
	if overflowChecks {
		return i.StrictQuoRem(by)
	}
	return i.WrappingQuoRem(by)
}

// Quo returns the quotient i/by for by != 0, truncated towards zero. If by
// == 0, a division-by-zero run-time panic occurs.
func (i I256) Quo(by I256) (q I256) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0, taking the sign of i. If by
// == 0, a division-by-zero run-time panic occurs.
func (i I256) Rem(by I256) (r I256) {
	_, r = i.QuoRem(by)
	return r
}

// DivMod implements Euclidean division and modulus (unlike Go):
//
//	q = x div y  such that
//	m = x - y*q  with 0 <= m < |y|
//
// This matches big.Int.DivMod.
func (i I256) DivMod(by I256) (q, m I256) {
	if overflowChecks {
		return i.StrictDivMod(by)
	}
	return i.WrappingDivMod(by)
}

// Div returns the Euclidean quotient of i and by. See DivMod.
func (i I256) Div(by I256) (q I256) {
	q, _ = i.DivMod(by)
	return q
}

// Mod returns the Euclidean modulus of i and by, which is never negative.
// See DivMod.
func (i I256) Mod(by I256) (m I256) {
	_, m = i.DivMod(by)
	return m
}

// Lsh returns i << n. Like Go's shift operator, shifting by 256 or more
// returns zero; under the num_overflowchecks build tag it panics instead.
func (i I256) Lsh(n uint) I256 {
	if overflowChecks {
		return i.StrictLsh(n)
	}
	return i.UnboundedLsh(n)
}

// Rsh returns the arithmetic shift i >> n. Like Go's shift operator,
// shifting by 256 or more returns 0 for non-negative values and -1 for
// negative ones; under the num_overflowchecks build tag it panics instead.
func (i I256) Rsh(n uint) I256 {
	if overflowChecks {
		return i.StrictRsh(n)
	}
	if n >= Bits {
		if i.IsNegative() {
			return negOne
		}
		return I256{}
	}
	return i.WrappingRsh(n)
}

func (i I256) WrappingPow(exp uint) I256 {
	v, _ := i.OverflowingPow(exp)
	return v
}

// OverflowingPow returns i**exp modulo 2^256, and whether any multiplication
// along the way overflowed.
func (i I256) OverflowingPow(exp uint) (I256, bool) {
	return powBySquaring(i, exp, oneI256, I256.OverflowingMul)
}

// WrappingQuoRem is QuoRem, wrapping MinI256 / -1 to (MinI256, 0).
func (i I256) WrappingQuoRem(by I256) (q, r I256) {
	return i.quoRem(by)
}

func (i I256) WrappingQuo(by I256) (q I256) {
	q, _ = i.quoRem(by)
	return q
}

func (i I256) WrappingRem(by I256) (r I256) {
	_, r = i.quoRem(by)
	return r
}

func (i I256) WrappingDivMod(by I256) (q, m I256) {
	q, r := i.quoRem(by)
	return i.euclid(by, q, r)
}

func (i I256) WrappingDiv(by I256) (q I256) {
	q, _ = i.WrappingDivMod(by)
	return q
}

func (i I256) WrappingMod(by I256) (m I256) {
	_, m = i.WrappingDivMod(by)
	return m
}

// OverflowingQuoRem returns the truncated quotient and remainder, reporting
// overflow for MinI256 / -1, which returns (MinI256, 0, true). Division by
// zero panics.
func (i I256) OverflowingQuoRem(by I256) (q, r I256, overflow bool) {
	if i.divOverflows(by) {
		return MinI256, I256{}, true
	}
	q, r = i.quoRem(by)
	return q, r, false
}

// OverflowingQuo returns (MinI256, true) for MinI256 / -1.
func (i I256) OverflowingQuo(by I256) (I256, bool) {
	q, _, o := i.OverflowingQuoRem(by)
	return q, o
}

// OverflowingRem returns (0, true) for MinI256 % -1.
func (i I256) OverflowingRem(by I256) (I256, bool) {
	_, r, o := i.OverflowingQuoRem(by)
	return r, o
}

func (i I256) OverflowingDivMod(by I256) (q, m I256, overflow bool) {
	if i.divOverflows(by) {
		return MinI256, I256{}, true
	}
	q, m = i.WrappingDivMod(by)
	return q, m, false
}

func (i I256) OverflowingDiv(by I256) (I256, bool) {
	q, _, o := i.OverflowingDivMod(by)
	return q, o
}

func (i I256) OverflowingMod(by I256) (I256, bool) {
	_, m, o := i.OverflowingDivMod(by)
	return m, o
}

func (i I256) CheckedAdd(n I256) (I256, bool)   { return checked[I256](i.OverflowingAdd(n)) }
func (i I256) CheckedSub(n I256) (I256, bool)   { return checked[I256](i.OverflowingSub(n)) }
func (i I256) CheckedMul(n I256) (I256, bool)   { return checked[I256](i.OverflowingMul(n)) }
func (i I256) CheckedPow(exp uint) (I256, bool) { return checked[I256](i.OverflowingPow(exp)) }
func (i I256) CheckedNeg() (I256, bool)         { return checked[I256](i.OverflowingNeg()) }
func (i I256) CheckedAbs() (I256, bool)         { return checked[I256](i.OverflowingAbs()) }
func (i I256) CheckedLsh(n uint) (I256, bool)   { return checked[I256](i.OverflowingLsh(n)) }
func (i I256) CheckedRsh(n uint) (I256, bool)   { return checked[I256](i.OverflowingRsh(n)) }

// CheckedQuoRem returns false if by is zero or the quotient overflows, which
// only happens for MinI256 / -1.
func (i I256) CheckedQuoRem(by I256) (q, r I256, ok bool) {
	if by.IsZero() || i.divOverflows(by) {
		return q, r, false
	}
	q, r = i.quoRem(by)
	return q, r, true
}

func (i I256) CheckedQuo(by I256) (q I256, ok bool) {
	q, _, ok = i.CheckedQuoRem(by)
	return q, ok
}

// CheckedRem returns false only if by is zero. MinI256 % -1 is 0; the
// remainder is representable even though the quotient is not.
func (i I256) CheckedRem(by I256) (I256, bool) {
	if by.IsZero() {
		return I256{}, false
	}
	return i.WrappingRem(by), true
}

func (i I256) CheckedDivMod(by I256) (q, m I256, ok bool) {
	if by.IsZero() || i.divOverflows(by) {
		return q, m, false
	}
	q, m = i.WrappingDivMod(by)
	return q, m, true
}

func (i I256) CheckedDiv(by I256) (q I256, ok bool) {
	q, _, ok = i.CheckedDivMod(by)
	return q, ok
}

// CheckedMod returns false only if by is zero.
func (i I256) CheckedMod(by I256) (I256, bool) {
	if by.IsZero() {
		return I256{}, false
	}
	return i.WrappingMod(by), true
}

// StrictAdd returns i+n, panicking on overflow whatever the build tags.
func (i I256) StrictAdd(n I256) I256 {
	v, o := i.OverflowingAdd(n)
	return strict(kindI256, msgAdd, v, o)
}

func (i I256) StrictSub(n I256) I256 {
	v, o := i.OverflowingSub(n)
	return strict(kindI256, msgSub, v, o)
}

func (i I256) StrictMul(n I256) I256 {
	v, o := i.OverflowingMul(n)
	return strict(kindI256, msgMul, v, o)
}

func (i I256) StrictPow(exp uint) I256 {
	v, o := i.OverflowingPow(exp)
	return strict(kindI256, msgPow, v, o)
}

func (i I256) StrictNeg() I256 {
	v, o := i.OverflowingNeg()
	return strict(kindI256, msgNeg, v, o)
}

func (i I256) StrictAbs() I256 {
	v, o := i.OverflowingAbs()
	return strict(kindI256, msgAbs, v, o)
}

func (i I256) StrictLsh(n uint) I256 {
	v, o := i.OverflowingLsh(n)
	return strict(kindI256, msgLsh, v, o)
}

func (i I256) StrictRsh(n uint) I256 {
	v, o := i.OverflowingRsh(n)
	return strict(kindI256, msgRsh, v, o)
}

// StrictQuoRem panics for a zero divisor and for MinI256 / -1.
func (i I256) StrictQuoRem(by I256) (q, r I256) {
	q, r, o := i.OverflowingQuoRem(by)
	if o {
		panic(kindI256 + ": " + msgDiv)
	}
	return q, r
}

func (i I256) StrictQuo(by I256) (q I256) {
	q, _ = i.StrictQuoRem(by)
	return q
}

// StrictRem panics for a zero divisor and for MinI256 % -1.
func (i I256) StrictRem(by I256) I256 {
	v, o := i.OverflowingRem(by)
	return strict(kindI256, msgRem, v, o)
}

func (i I256) StrictDivMod(by I256) (q, m I256) {
	q, m, o := i.OverflowingDivMod(by)
	if o {
		panic(kindI256 + ": " + msgDiv)
	}
	return q, m
}

func (i I256) StrictDiv(by I256) (q I256) {
	q, _ = i.StrictDivMod(by)
	return q
}

func (i I256) StrictMod(by I256) I256 {
	v, o := i.OverflowingMod(by)
	return strict(kindI256, msgRem, v, o)
}

// saturate returns the bound on the side of the true result.
func saturate(negative bool) I256 {
	if negative {
		return MinI256
	}
	return MaxI256
}

// SaturatingAdd returns i+n, clamped to [MinI256, MaxI256].
func (i I256) SaturatingAdd(n I256) I256 {
	if v, o := i.OverflowingAdd(n); !o {
		return v
	}
	return saturate(i.IsNegative())
}

func (i I256) SaturatingSub(n I256) I256 {
	if v, o := i.OverflowingSub(n); !o {
		return v
	}
	return saturate(i.IsNegative())
}

func (i I256) SaturatingMul(n I256) I256 {
	if v, o := i.OverflowingMul(n); !o {
		return v
	}
	return saturate(i.IsNegative() != n.IsNegative())
}

// SaturatingPow clamps to MinI256 when a negative base is raised to an odd
// power, and to MaxI256 otherwise.
func (i I256) SaturatingPow(exp uint) I256 {
	if v, o := i.OverflowingPow(exp); !o {
		return v
	}
	return saturate(i.IsNegative() && exp&1 == 1)
}

// SaturatingNeg returns -i, with -MinI256 clamped to MaxI256.
func (i I256) SaturatingNeg() I256 {
	if v, o := i.OverflowingNeg(); !o {
		return v
	}
	return MaxI256
}

// SaturatingAbs returns |i|, with |MinI256| clamped to MaxI256.
func (i I256) SaturatingAbs() I256 {
	if v, o := i.OverflowingAbs(); !o {
		return v
	}
	return MaxI256
}

// SaturatingQuo returns i/by, with MinI256 / -1 clamped to MaxI256. Division
// by zero panics.
func (i I256) SaturatingQuo(by I256) I256 {
	if q, o := i.OverflowingQuo(by); !o {
		return q
	}
	return MaxI256
}
