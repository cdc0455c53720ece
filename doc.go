/*
Package num provides fixed-width uint256 (U256) and int256 (I256) types,
implementing most of the big.Int API without allocating.

U256 and I256 are value types; all operations return new values. Internally
they are stored as native machine words (see Limb), so the same code runs on
32-bit and 64-bit targets.

Simple example:

	u1 := U256From64(math.MaxUint64)
	u2 := U256From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Arithmetic that can overflow comes in several flavours:

	Add(n)            wraps, or panics when built with -tags num_overflowchecks
	WrappingAdd(n)    wraps modulo 2^256
	OverflowingAdd(n) wraps, and reports whether it wrapped
	CheckedAdd(n)     returns (v, ok); v is zero if the result does not fit
	StrictAdd(n)      panics on overflow regardless of build tags
	SaturatingAdd(n)  clamps to the nearest bound
	Unchecked().Add(n) assumes the result fits

The same set exists for Sub, Mul, Pow, Neg, Quo, Rem, QuoRem, Div, Mod,
DivMod, Lsh and Rsh where the operation can overflow, plus single-limb forms
such as AddLimb and QuoRemLimb.

I256 division is available in two forms: Quo and Rem truncate towards zero
(like Go), Div and Mod are Euclidean (like big.Int.DivMod).

U256 and I256 can be created from a variety of sources:

	U256From64(v uint64) U256
	U256FromInt[T constraints.Integer](v T) U256
	U256FromLEBytes(b [Bytes]byte) U256
	U256FromLEU64(v [U64Len]uint64) U256
	U256FromString(s string) (U256, error)
	U256FromStringRadix(s string, radix int) (U256, error)
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	U256FromUint256(v *uint256.Int) U256

U256 and I256 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
