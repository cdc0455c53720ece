package num

// UncheckedU256 exposes operations whose caller promises the result does
// not overflow. Obtain one with U256.Unchecked.
//
// The promise is only verified when built with the num_overflowchecks tag,
// in which case a broken promise panics. Otherwise the result of a broken
// promise is unspecified.
type UncheckedU256 struct {
	u U256
}

// Unchecked returns a view of u for operations that assume no overflow.
func (u U256) Unchecked() UncheckedU256 { return UncheckedU256{u: u} }

func (c UncheckedU256) Add(n U256) U256 {
	v, ok := c.u.CheckedAdd(n)
	assume(kindU256, msgAdd, ok)
	return v
}

func (c UncheckedU256) Sub(n U256) U256 {
	v, ok := c.u.CheckedSub(n)
	assume(kindU256, msgSub, ok)
	return v
}

func (c UncheckedU256) Mul(n U256) U256 {
	v, ok := c.u.CheckedMul(n)
	assume(kindU256, msgMul, ok)
	return v
}

// Lsh assumes n < 256.
func (c UncheckedU256) Lsh(n uint) U256 {
	v, ok := c.u.CheckedLsh(n)
	assume(kindU256, msgLsh, ok)
	return v
}

// Rsh assumes n < 256.
func (c UncheckedU256) Rsh(n uint) U256 {
	v, ok := c.u.CheckedRsh(n)
	assume(kindU256, msgRsh, ok)
	return v
}

// UncheckedI256 is the I256 counterpart of UncheckedU256.
type UncheckedI256 struct {
	i I256
}

func (i I256) Unchecked() UncheckedI256 { return UncheckedI256{i: i} }

func (c UncheckedI256) Add(n I256) I256 {
	v, ok := c.i.CheckedAdd(n)
	assume(kindI256, msgAdd, ok)
	return v
}

func (c UncheckedI256) Sub(n I256) I256 {
	v, ok := c.i.CheckedSub(n)
	assume(kindI256, msgSub, ok)
	return v
}

func (c UncheckedI256) Mul(n I256) I256 {
	v, ok := c.i.CheckedMul(n)
	assume(kindI256, msgMul, ok)
	return v
}

func (c UncheckedI256) Lsh(n uint) I256 {
	v, ok := c.i.CheckedLsh(n)
	assume(kindI256, msgLsh, ok)
	return v
}

func (c UncheckedI256) Rsh(n uint) I256 {
	v, ok := c.i.CheckedRsh(n)
	assume(kindI256, msgRsh, ok)
	return v
}
