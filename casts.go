package num

import (
	"errors"
	"fmt"

	"github.com/shabbyrobe/go-num256/internal/limb"
	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is wrapped by the errors returned from the Try* conversions
// when the value does not fit the target type.
var ErrOutOfRange = errors.New("num: value out of range")

func U256From64(v uint64) (out U256) {
	out.setU64(0, v)
	return out
}

func U256From32(v uint32) U256 { return U256From64(uint64(v)) }
func U256From16(v uint16) U256 { return U256From64(uint64(v)) }
func U256From8(v uint8) U256   { return U256From64(uint64(v)) }

// U256FromI64 converts v like Go's uint256(v) would: negative values are
// sign-extended, so -1 becomes MaxU256.
func U256FromI64(v int64) U256 { return I256From64(v).AsU256() }
func U256FromI32(v int32) U256 { return U256FromI64(int64(v)) }
func U256FromI16(v int16) U256 { return U256FromI64(int64(v)) }
func U256FromI8(v int8) U256   { return U256FromI64(int64(v)) }

func U256From128(v U128) U256 { return U256FromRaw(U128{}, v) }

// U256FromI128 sign-extends v, so negative values become values > MaxI256.
func U256FromI128(v I128) U256 { return I256From128(v).AsU256() }

func U256FromLimb(v Limb) (out U256) {
	out.limbs[0] = v
	return out
}

func U256FromWide(v Wide) (out U256) {
	out.limbs[0], out.limbs[1] = v.Lo, v.Hi
	return out
}

// U256FromInt converts any native integer to a U256 with the semantics of a
// Go conversion.
func U256FromInt[T constraints.Integer](v T) U256 {
	if isSigned[T]() {
		return U256FromI64(int64(v))
	}
	return U256From64(uint64(v))
}

// U256TryFromInt converts a native integer to a U256, failing if v is
// negative.
func U256TryFromInt[T constraints.Integer](v T) (U256, error) {
	if v < 0 {
		return U256{}, fmt.Errorf("num: %d is negative: %w", v, ErrOutOfRange)
	}
	return U256From64(uint64(v)), nil
}

func I256From64(v int64) I256 {
	var out U256
	out.setU64(0, uint64(v))
	if v < 0 {
		for i := 1; i < U64Len; i++ {
			out.setU64(i, maxUint64)
		}
	}
	return out.AsI256()
}

func I256From32(v int32) I256 { return I256From64(int64(v)) }
func I256From16(v int16) I256 { return I256From64(int64(v)) }
func I256From8(v int8) I256   { return I256From64(int64(v)) }

func I256FromU64(v uint64) I256 { return U256From64(v).AsI256() }
func I256FromU32(v uint32) I256 { return I256FromU64(uint64(v)) }
func I256FromU16(v uint16) I256 { return I256FromU64(uint64(v)) }
func I256FromU8(v uint8) I256   { return I256FromU64(uint64(v)) }

func I256From128(v I128) I256 {
	var hi U128
	if v.IsNegative() {
		hi = MaxU128
	}
	return U256FromRaw(hi, v.AsU128()).AsI256()
}

func I256FromU128(v U128) I256 { return U256From128(v).AsI256() }

func I256FromILimb(v ILimb) (out I256) {
	limb.SetILimb(out.limbs[:], v)
	return out
}

// I256FromInt converts any native integer to an I256. Every native integer
// fits.
func I256FromInt[T constraints.Integer](v T) I256 {
	if isSigned[T]() {
		return I256From64(int64(v))
	}
	return I256FromU64(uint64(v))
}

func isSigned[T constraints.Integer]() bool { return ^T(0) < 0 }

// U256ToInt converts u to the native integer type T, failing if u does not
// fit.
func U256ToInt[T constraints.Integer](u U256) (T, error) {
	v := T(u.AsUint64())
	if !u.IsUint64() || !U256FromInt(v).Equal(u) {
		return 0, fmt.Errorf("num: u256 %s does not fit in %T: %w", u, v, ErrOutOfRange)
	}
	return v, nil
}

// I256ToInt converts i to the native integer type T, failing if i does not
// fit.
func I256ToInt[T constraints.Integer](i I256) (T, error) {
	v := T(i.AsInt64())
	if !I256FromInt(v).Equal(i) {
		return 0, fmt.Errorf("num: i256 %s does not fit in %T: %w", i, v, ErrOutOfRange)
	}
	return v, nil
}

// AsUint64 truncates u to fit in a uint64. Values outside the range will
// over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.u64(0) }
func (u U256) AsUint32() uint32 { return uint32(u.limbs[0]) }
func (u U256) AsUint16() uint16 { return uint16(u.limbs[0]) }
func (u U256) AsUint8() uint8   { return uint8(u.limbs[0]) }
func (u U256) AsInt64() int64   { return int64(u.u64(0)) }
func (u U256) AsInt32() int32   { return int32(u.limbs[0]) }
func (u U256) AsInt16() int16   { return int16(u.limbs[0]) }
func (u U256) AsInt8() int8     { return int8(u.limbs[0]) }
func (u U256) AsLimb() Limb     { return u.limbs[0] }
func (u U256) AsU128() U128     { return u.Low() }
func (u U256) AsI128() I128     { return u.Low().AsI128() }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.u64(1)|u.u64(2)|u.u64(3) == 0 }

// IsInt64 reports whether u can be represented as an int64.
func (u U256) IsInt64() bool { return u.IsUint64() && u.u64(0) <= maxInt64 }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.High().IsZero() }

// IsI128 reports whether u can be represented as an I128.
func (u U256) IsI128() bool { return u.IsU128() && u.Low().IsI128() }

func (u U256) TryUint64() (uint64, error) { return U256ToInt[uint64](u) }
func (u U256) TryUint32() (uint32, error) { return U256ToInt[uint32](u) }
func (u U256) TryUint16() (uint16, error) { return U256ToInt[uint16](u) }
func (u U256) TryUint8() (uint8, error)   { return U256ToInt[uint8](u) }
func (u U256) TryInt64() (int64, error)   { return U256ToInt[int64](u) }
func (u U256) TryInt32() (int32, error)   { return U256ToInt[int32](u) }
func (u U256) TryInt16() (int16, error)   { return U256ToInt[int16](u) }
func (u U256) TryInt8() (int8, error)     { return U256ToInt[int8](u) }

func (u U256) TryU128() (U128, error) {
	if !u.IsU128() {
		return U128{}, fmt.Errorf("num: u256 %s does not fit in U128: %w", u, ErrOutOfRange)
	}
	return u.Low(), nil
}

func (u U256) TryI128() (I128, error) {
	if !u.IsI128() {
		return I128{}, fmt.Errorf("num: u256 %s does not fit in I128: %w", u, ErrOutOfRange)
	}
	return u.AsI128(), nil
}

// TryI256 converts u to an I256, failing if u > MaxI256.
func (u U256) TryI256() (I256, error) {
	if !u.IsI256() {
		return I256{}, fmt.Errorf("num: u256 %s does not fit in I256: %w", u, ErrOutOfRange)
	}
	return u.AsI256(), nil
}

// AsInt64 truncates i to fit in an int64, keeping the low 64 bits of the
// two's complement representation.
func (i I256) AsInt64() int64   { return int64(i.AsU256().u64(0)) }
func (i I256) AsInt32() int32   { return int32(i.limbs[0]) }
func (i I256) AsInt16() int16   { return int16(i.limbs[0]) }
func (i I256) AsInt8() int8     { return int8(i.limbs[0]) }
func (i I256) AsUint64() uint64 { return i.AsU256().u64(0) }
func (i I256) AsUint32() uint32 { return uint32(i.limbs[0]) }
func (i I256) AsUint16() uint16 { return uint16(i.limbs[0]) }
func (i I256) AsUint8() uint8   { return uint8(i.limbs[0]) }
func (i I256) AsILimb() ILimb   { return ILimb(i.limbs[0]) }
func (i I256) AsU128() U128     { return i.Low() }
func (i I256) AsI128() I128     { return i.Low().AsI128() }

func (i I256) IsInt64() bool  { return I256From64(i.AsInt64()).Equal(i) }
func (i I256) IsUint64() bool { return !i.IsNegative() && i.AsU256().IsUint64() }
func (i I256) IsI128() bool   { return I256From128(i.AsI128()).Equal(i) }
func (i I256) IsU128() bool   { return !i.IsNegative() && i.AsU256().IsU128() }

func (i I256) TryInt64() (int64, error)   { return I256ToInt[int64](i) }
func (i I256) TryInt32() (int32, error)   { return I256ToInt[int32](i) }
func (i I256) TryInt16() (int16, error)   { return I256ToInt[int16](i) }
func (i I256) TryInt8() (int8, error)     { return I256ToInt[int8](i) }
func (i I256) TryUint64() (uint64, error) { return I256ToInt[uint64](i) }
func (i I256) TryUint32() (uint32, error) { return I256ToInt[uint32](i) }
func (i I256) TryUint16() (uint16, error) { return I256ToInt[uint16](i) }
func (i I256) TryUint8() (uint8, error)   { return I256ToInt[uint8](i) }

func (i I256) TryI128() (I128, error) {
	if !i.IsI128() {
		return I128{}, fmt.Errorf("num: i256 %s does not fit in I128: %w", i, ErrOutOfRange)
	}
	return i.AsI128(), nil
}

func (i I256) TryU128() (U128, error) {
	if !i.IsU128() {
		return U128{}, fmt.Errorf("num: i256 %s does not fit in U128: %w", i, ErrOutOfRange)
	}
	return i.AsU128(), nil
}

// TryU256 converts i to a U256, failing if i is negative.
func (i I256) TryU256() (U256, error) {
	if i.IsNegative() {
		return U256{}, fmt.Errorf("num: i256 %s does not fit in U256: %w", i, ErrOutOfRange)
	}
	return i.AsU256(), nil
}
