package num

import (
	"github.com/holiman/uint256"
)

// U256FromUint256 converts a github.com/holiman/uint256 value. Both types
// hold 256 bits, so the conversion is exact.
func U256FromUint256(v *uint256.Int) U256 {
	return U256FromLEU64([U64Len]uint64(*v))
}

// AsUint256 converts u to a github.com/holiman/uint256 value.
func (u U256) AsUint256() *uint256.Int {
	v := uint256.Int(u.ToLEU64())
	return &v
}

// IntoUint256 sets z to u.
func (u U256) IntoUint256(z *uint256.Int) {
	*z = uint256.Int(u.ToLEU64())
}

// I256FromUint256 reads v as a two's complement value, the interpretation
// used by the signed methods of uint256.Int such as SDiv and Slt.
func I256FromUint256(v *uint256.Int) I256 {
	return U256FromUint256(v).AsI256()
}

// AsUint256 converts i to its two's complement github.com/holiman/uint256
// representation.
func (i I256) AsUint256() *uint256.Int {
	return i.AsU256().AsUint256()
}

func (i I256) IntoUint256(z *uint256.Int) {
	i.AsU256().IntoUint256(z)
}
