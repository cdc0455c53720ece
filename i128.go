package num

import (
	"fmt"
	"math/big"
)

// I128 is a signed 128-bit two's complement integer used to exchange the high
// half of an I256 and 128-bit native-width values.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

func (i I128) IsZero() bool     { return i.hi == 0 && i.lo == 0 }
func (i I128) IsNegative() bool { return i.hi&signBit != 0 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// I256 sign-extends i to 256 bits.
func (i I128) I256() I256 { return I256From128(i) }

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 { return U128{lo: i.lo, hi: i.hi} }

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool { return !i.IsNegative() }

// AsInt64 truncates the I128 to fit in an int64.
func (i I128) AsInt64() int64 { return int64(i.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.IsNegative() {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Equal(n I128) bool { return i == n }

func (i I128) String() string { return i.I256().String() }

func (i I128) Format(s fmt.State, c rune) {
	v := i.I256()
	formatVerb(s, c, "num.I128", v.IsNegative(), v.UnsignedAbs())
}

func (i I128) IntoBigInt(b *big.Int) { i.I256().IntoBigInt(b) }

func (i I128) AsBigInt() *big.Int { return i.I256().AsBigInt() }
