package num

type RandSource interface {
	Uint64() uint64
}

// RandU256 generates an unsigned 256-bit random integer from an external
// source.
func RandU256(source RandSource) (out U256) {
	for i := 0; i < U64Len; i++ {
		out.setU64(i, source.Uint64())
	}
	return out
}

// RandI256 generates a signed 256-bit random integer from an external
// source. Every bit pattern is equally likely.
func RandI256(source RandSource) I256 {
	return RandU256(source).AsI256()
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.GreaterThan(b) {
		return a.WrappingSub(b)
	}
	return b.WrappingSub(a)
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI256 returns |a - b|. The distance between any two I256 values
// fits in a U256.
func DifferenceI256(a, b I256) U256 {
	if a.GreaterThan(b) {
		return a.AsU256().WrappingSub(b.AsU256())
	}
	return b.AsU256().WrappingSub(a.AsU256())
}

func LargerI256(a, b I256) I256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerI256(a, b I256) I256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// AbsDiff returns |u - n|. See DifferenceU256.
func (u U256) AbsDiff(n U256) U256 { return DifferenceU256(u, n) }

// AbsDiff returns |i - n| as a U256. See DifferenceI256.
func (i I256) AbsDiff(n I256) U256 { return DifferenceI256(i, n) }
