package num

import (
	"fmt"
	"math/big"
)

// U128 is an unsigned 128-bit integer used to exchange the halves of a U256
// or I256. Arithmetic happens on the 256-bit types; promote with U256().
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

func (u U128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// U256 zero-extends u to 256 bits.
func (u U128) U256() U256 { return U256From128(u) }

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 { return I128{hi: u.hi, lo: u.lo} }

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool { return u.hi&signBit == 0 }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Equal(n U128) bool { return u == n }

func (u U128) String() string { return u.U256().String() }

func (u U128) Format(s fmt.State, c rune) { formatVerb(s, c, "num.U128", false, u.U256()) }

func (u U128) IntoBigInt(b *big.Int) { u.U256().IntoBigInt(b) }

func (u U128) AsBigInt() *big.Int { return u.U256().AsBigInt() }
