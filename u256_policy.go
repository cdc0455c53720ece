package num

// Add returns u+n. Overflow wraps like Go's native unsigned integers, unless
// the package is built with the num_overflowchecks tag, in which case it
// panics. The same applies to the other operators without a policy prefix:
// Sub, Mul, Pow, Neg, Quo, Rem, QuoRem, Div, Mod, DivMod, Lsh and Rsh.
func (u U256) Add(n U256) U256 {
	if overflowChecks {
		return u.StrictAdd(n)
	}
	return u.WrappingAdd(n)
}

func (u U256) Sub(n U256) U256 {
	if overflowChecks {
		return u.StrictSub(n)
	}
	return u.WrappingSub(n)
}

func (u U256) Mul(n U256) U256 {
	if overflowChecks {
		return u.StrictMul(n)
	}
	return u.WrappingMul(n)
}

func (u U256) Pow(exp uint) U256 {
	if overflowChecks {
		return u.StrictPow(exp)
	}
	return u.WrappingPow(exp)
}

// Neg returns -u, which wraps for every non-zero u like Go's unary minus on
// unsigned integers.
func (u U256) Neg() U256 {
	if overflowChecks {
		return u.StrictNeg()
	}
	return u.WrappingNeg()
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.quoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.quoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// Unsigned division cannot overflow, so Div, Mod and DivMod return the same
// results as Quo, Rem and QuoRem.
func (u U256) QuoRem(by U256) (q, r U256) {
	return u.quoRem(by)
}

// Div returns the Euclidean quotient of u and by. For unsigned values this
// is the same as Quo.
func (u U256) Div(by U256) U256 { return u.Quo(by) }

// Mod returns the Euclidean modulus of u and by. For unsigned values this is
// the same as Rem.
func (u U256) Mod(by U256) U256 { return u.Rem(by) }

func (u U256) DivMod(by U256) (q, r U256) { return u.quoRem(by) }

// Lsh returns u << n. Like Go's shift operator, shifting by 256 or more
// returns zero; under the num_overflowchecks build tag it panics instead.
func (u U256) Lsh(n uint) U256 {
	if overflowChecks {
		return u.StrictLsh(n)
	}
	return u.UnboundedLsh(n)
}

// Rsh returns u >> n. Like Go's shift operator, shifting by 256 or more
// returns zero; under the num_overflowchecks build tag it panics instead.
func (u U256) Rsh(n uint) U256 {
	if overflowChecks {
		return u.StrictRsh(n)
	}
	return u.UnboundedRsh(n)
}

func (u U256) WrappingPow(exp uint) U256 {
	v, _ := u.OverflowingPow(exp)
	return v
}

// OverflowingPow returns u**exp modulo 2^256, and whether any multiplication
// along the way overflowed.
func (u U256) OverflowingPow(exp uint) (U256, bool) {
	return powBySquaring(u, exp, oneU256, U256.OverflowingMul)
}

func (u U256) WrappingQuo(by U256) U256           { return u.Quo(by) }
func (u U256) WrappingRem(by U256) U256           { return u.Rem(by) }
func (u U256) WrappingQuoRem(by U256) (q, r U256) { return u.quoRem(by) }
func (u U256) WrappingDiv(by U256) U256           { return u.Quo(by) }
func (u U256) WrappingMod(by U256) U256           { return u.Rem(by) }

func (u U256) OverflowingQuo(by U256) (U256, bool) { return u.Quo(by), false }
func (u U256) OverflowingRem(by U256) (U256, bool) { return u.Rem(by), false }
func (u U256) OverflowingDiv(by U256) (U256, bool) { return u.Quo(by), false }
func (u U256) OverflowingMod(by U256) (U256, bool) { return u.Rem(by), false }

func (u U256) OverflowingQuoRem(by U256) (q, r U256, overflow bool) {
	q, r = u.quoRem(by)
	return q, r, false
}

func (u U256) CheckedAdd(n U256) (U256, bool)   { return checked[U256](u.OverflowingAdd(n)) }
func (u U256) CheckedSub(n U256) (U256, bool)   { return checked[U256](u.OverflowingSub(n)) }
func (u U256) CheckedMul(n U256) (U256, bool)   { return checked[U256](u.OverflowingMul(n)) }
func (u U256) CheckedPow(exp uint) (U256, bool) { return checked[U256](u.OverflowingPow(exp)) }
func (u U256) CheckedNeg() (U256, bool)         { return checked[U256](u.OverflowingNeg()) }
func (u U256) CheckedLsh(n uint) (U256, bool)   { return checked[U256](u.OverflowingLsh(n)) }
func (u U256) CheckedRsh(n uint) (U256, bool)   { return checked[U256](u.OverflowingRsh(n)) }

// StrictAdd returns u+n, panicking on overflow whatever the build tags.
func (u U256) StrictAdd(n U256) U256 {
	v, o := u.OverflowingAdd(n)
	return strict(kindU256, msgAdd, v, o)
}

func (u U256) StrictSub(n U256) U256 {
	v, o := u.OverflowingSub(n)
	return strict(kindU256, msgSub, v, o)
}

func (u U256) StrictMul(n U256) U256 {
	v, o := u.OverflowingMul(n)
	return strict(kindU256, msgMul, v, o)
}

func (u U256) StrictPow(exp uint) U256 {
	v, o := u.OverflowingPow(exp)
	return strict(kindU256, msgPow, v, o)
}

func (u U256) StrictNeg() U256 {
	v, o := u.OverflowingNeg()
	return strict(kindU256, msgNeg, v, o)
}

func (u U256) StrictLsh(n uint) U256 {
	v, o := u.OverflowingLsh(n)
	return strict(kindU256, msgLsh, v, o)
}

func (u U256) StrictRsh(n uint) U256 {
	v, o := u.OverflowingRsh(n)
	return strict(kindU256, msgRsh, v, o)
}

// StrictQuo and the other strict division forms only panic for a zero
// divisor, as unsigned division cannot overflow.
func (u U256) StrictQuo(by U256) U256 { return u.Quo(by) }
func (u U256) StrictRem(by U256) U256 { return u.Rem(by) }
func (u U256) StrictDiv(by U256) U256 { return u.Quo(by) }
func (u U256) StrictMod(by U256) U256 { return u.Rem(by) }

// CheckedQuo returns u/by, or false if by is zero.
func (u U256) CheckedQuo(by U256) (U256, bool) {
	if by.IsZero() {
		return U256{}, false
	}
	return u.Quo(by), true
}

// CheckedRem returns u%by, or false if by is zero.
func (u U256) CheckedRem(by U256) (U256, bool) {
	if by.IsZero() {
		return U256{}, false
	}
	return u.Rem(by), true
}

func (u U256) CheckedQuoRem(by U256) (q, r U256, ok bool) {
	if by.IsZero() {
		return q, r, false
	}
	q, r = u.quoRem(by)
	return q, r, true
}

func (u U256) CheckedDiv(by U256) (U256, bool) { return u.CheckedQuo(by) }
func (u U256) CheckedMod(by U256) (U256, bool) { return u.CheckedRem(by) }

func (u U256) CheckedDivMod(by U256) (q, r U256, ok bool) { return u.CheckedQuoRem(by) }

// SaturatingAdd returns u+n, clamped to MaxU256.
func (u U256) SaturatingAdd(n U256) U256 {
	if v, o := u.OverflowingAdd(n); !o {
		return v
	}
	return MaxU256
}

// SaturatingSub returns u-n, clamped to zero.
func (u U256) SaturatingSub(n U256) U256 {
	if v, o := u.OverflowingSub(n); !o {
		return v
	}
	return U256{}
}

// SaturatingMul returns u*n, clamped to MaxU256.
func (u U256) SaturatingMul(n U256) U256 {
	if v, o := u.OverflowingMul(n); !o {
		return v
	}
	return MaxU256
}

// SaturatingPow returns u**exp, clamped to MaxU256.
func (u U256) SaturatingPow(exp uint) U256 {
	if v, o := u.OverflowingPow(exp); !o {
		return v
	}
	return MaxU256
}
