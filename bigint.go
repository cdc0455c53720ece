package num

import (
	"math/big"

	"github.com/shabbyrobe/go-num256/internal/limb"
)

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'. Negative values return zero and set accurate
// to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	out, accurate = bigMagnitude(v)
	if !accurate {
		return MaxU256, false
	}
	return out, true
}

// I256FromBigInt creates an I256 from a big.Int. Values outside the range
// are clamped to MinI256 or MaxI256, setting accurate to 'false'.
func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	mag, fits := bigMagnitude(v)
	if v.Sign() < 0 {
		if !fits || mag.GreaterThan(MinI256.AsU256()) {
			return MinI256, false
		}
		return mag.AsI256().WrappingNeg(), true
	}
	if !fits || !mag.IsI256() {
		return MaxI256, false
	}
	return mag.AsI256(), true
}

// bigMagnitude copies the absolute value of v, reporting false if it needs
// more than 256 bits. big.Word and Limb are both the native word.
func bigMagnitude(v *big.Int) (out U256, fits bool) {
	words := v.Bits()
	if len(words) > Limbs {
		return out, false
	}
	for i, w := range words {
		out.limbs[i] = Limb(w)
	}
	return out, true
}

// IntoBigInt sets b to u, reusing the storage of b where possible.
func (u U256) IntoBigInt(b *big.Int) {
	n := limb.Len(u.limbs[:])
	words := b.Bits()
	if cap(words) < n {
		words = make([]big.Word, n)
	}
	words = words[:n]
	for i := range words {
		words[i] = big.Word(u.limbs[i])
	}
	b.SetBits(words)
}

func (u U256) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (i I256) IntoBigInt(b *big.Int) {
	i.UnsignedAbs().IntoBigInt(b)
	if i.IsNegative() {
		b.Neg(b)
	}
}

func (i I256) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}
