package num

import (
	"math/big"

	"github.com/shabbyrobe/go-num256/internal/limb"
)

const (
	// Bits is the width of U256 and I256.
	Bits  = 256
	Bytes = Bits / 8

	// LimbBits is the width of a Limb on the target platform, 32 or 64.
	LimbBits = limb.Bits

	// Limbs is the number of limbs in a U256 or I256.
	Limbs = Bits / LimbBits

	// WideLen is the number of double-limb Wide values in a U256 or I256.
	WideLen = Limbs / 2

	U32Len = Bits / 32
	U64Len = Bits / 64

	// MaxDigits is the length of the longest base 10 representation of a
	// U256 or I256, excluding the sign.
	MaxDigits = 78

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	limbSign = Limb(1) << (LimbBits - 1)
)

var (
	MaxU256 = U256{limbs: maxLimbs()}
	MaxI256 = I256{limbs: maxSignedLimbs()}
	MinI256 = I256{limbs: minSignedLimbs()}

	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	oneU256 = U256From64(1)
	oneI256 = I256From64(1)
	negOne  = I256{limbs: maxLimbs()}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigU256 = MaxU256.AsBigInt()
	maxBigI256 = MaxI256.AsBigInt()
	minBigI256 = MinI256.AsBigInt()

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big1, Bits)
)

func maxLimbs() (out [Limbs]Limb) {
	for i := range out {
		out[i] = limb.Max
	}
	return out
}

func maxSignedLimbs() [Limbs]Limb {
	out := maxLimbs()
	out[Limbs-1] &^= limbSign
	return out
}

func minSignedLimbs() (out [Limbs]Limb) {
	out[Limbs-1] = limbSign
	return out
}
