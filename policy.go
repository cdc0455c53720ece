package num

// Overflow panics are prefixed with the type name, for example
// "u256: attempt to add with overflow".
const (
	msgAdd = "attempt to add with overflow"
	msgSub = "attempt to subtract with overflow"
	msgMul = "attempt to multiply with overflow"
	msgDiv = "attempt to divide with overflow"
	msgRem = "attempt to calculate the remainder with overflow"
	msgNeg = "attempt to negate with overflow"
	msgAbs = "attempt to take the absolute value with overflow"
	msgPow = "attempt to raise to a power with overflow"
	msgLsh = "attempt to shift left with overflow"
	msgRsh = "attempt to shift right with overflow"
)

const (
	kindU256 = "u256"
	kindI256 = "i256"
)

// strict returns v, panicking if overflow is set.
func strict[T any](kind, msg string, v T, overflow bool) T {
	if overflow {
		panic(kind + ": " + msg)
	}
	return v
}

// checked converts an overflowing result into a comma-ok result. The value
// is the zero value when ok is false.
func checked[T any](v T, overflow bool) (out T, ok bool) {
	if overflow {
		return out, false
	}
	return v, true
}

// assume checks the precondition of an Unchecked operation. It is only
// verified under the num_overflowchecks build tag.
func assume(kind, msg string, ok bool) {
	if overflowChecks && !ok {
		panic(kind + ": " + msg)
	}
}

// powBySquaring raises base to exp using mul, an overflowing multiplication.
// The overflow flags of every multiplication that contributes to the result
// are OR-ed together. The base is not squared after the last bit, so a final
// unused square never reports overflow.
func powBySquaring[T any](base T, exp uint, one T, mul func(x, y T) (T, bool)) (acc T, overflow bool) {
	acc = one
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			acc, o = mul(acc, base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = mul(base, base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}
