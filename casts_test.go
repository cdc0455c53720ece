package num

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestU256FromSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(U256FromI64(-1).Equal(MaxU256))
	tt.MustAssert(U256FromI8(-1).Equal(MaxU256))
	tt.MustAssert(U256FromI32(math.MinInt32).Equal(U256FromI64(math.MinInt32)))
	tt.MustAssert(U256FromI16(5).Equal(u64(5)))
	tt.MustAssert(U256FromI128(I128From64(-1)).Equal(MaxU256))
	tt.MustAssert(U256From128(MaxU128).Equal(u256s("0xffffffffffffffff ffffffffffffffff")))
}

func TestU256FromInt(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(U256FromInt(int8(-1)).Equal(MaxU256))
	tt.MustAssert(U256FromInt(uint8(255)).Equal(u64(255)))
	tt.MustAssert(U256FromInt(uint64(math.MaxUint64)).Equal(u64(math.MaxUint64)))
	tt.MustAssert(U256FromInt(int64(math.MinInt64)).Equal(U256FromI64(math.MinInt64)))

	v, err := U256TryFromInt(42)
	tt.MustOK(err)
	tt.MustAssert(v.Equal(u64(42)))

	_, err = U256TryFromInt(int16(-42))
	tt.MustAssert(errors.Is(err, ErrOutOfRange))

	tt.MustAssert(I256FromInt(int8(-1)).Equal(i64(-1)))
	tt.MustAssert(I256FromInt(uint64(math.MaxUint64)).Equal(I256FromU64(math.MaxUint64)))
	tt.MustAssert(!I256FromInt(uint64(math.MaxUint64)).IsNegative())
}

func TestU256ToInt(t *testing.T) {
	for idx, tc := range []struct {
		in  U256
		ok8 bool
		oku bool
		ok  bool
	}{
		{u64(0), true, true, true},
		{u64(127), true, true, true},
		{u64(128), false, true, true},
		{u64(255), false, true, true},
		{u64(256), false, false, true},
		{u64(math.MaxInt64), false, false, true},
		{u64(math.MaxInt64 + 1), false, false, false},
		{MaxU256, false, false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := tc.in.TryInt8()
			tt.MustEqual(tc.ok8, err == nil)
			_, err = tc.in.TryUint8()
			tt.MustEqual(tc.oku, err == nil)
			v, err := tc.in.TryInt64()
			tt.MustEqual(tc.ok, err == nil)
			if err == nil {
				tt.MustEqual(tc.in.AsInt64(), v)
			} else {
				tt.MustAssert(errors.Is(err, ErrOutOfRange))
			}
		})
	}
}

func TestI256ToInt(t *testing.T) {
	for idx, tc := range []struct {
		in  I256
		ok8 bool
		oku bool
	}{
		{i64(0), true, true},
		{i64(-1), true, false},
		{i64(-128), true, false},
		{i64(-129), false, false},
		{i64(127), true, true},
		{i64(255), false, true},
		{MinI256, false, false},
		{MaxI256, false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := tc.in.TryInt8()
			tt.MustEqual(tc.ok8, err == nil)
			_, err = tc.in.TryUint8()
			tt.MustEqual(tc.oku, err == nil)
		})
	}
}

func TestU256Is(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u64(math.MaxUint64).IsUint64())
	tt.MustAssert(!u64(math.MaxUint64).IsInt64())
	tt.MustAssert(!u256s("0x1 0000000000000000").IsUint64())
	tt.MustAssert(u256s("0xffffffffffffffff ffffffffffffffff").IsU128())
	tt.MustAssert(!u256s("0xffffffffffffffff ffffffffffffffff").IsI128())
	tt.MustAssert(!u256s("0x1 0000000000000000 0000000000000000").IsU128())

	_, err := MaxU256.TryU128()
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
	v, err := u64(7).TryI128()
	tt.MustOK(err)
	tt.MustEqual(I128From64(7), v)
}

func TestI256Is(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(i64(math.MinInt64).IsInt64())
	tt.MustAssert(!i64(math.MinInt64).Dec().IsInt64())
	tt.MustAssert(!i64(-1).IsUint64())
	tt.MustAssert(I256FromU64(math.MaxUint64).IsUint64())
	tt.MustAssert(I256From128(MinI128).IsI128())
	tt.MustAssert(!I256From128(MinI128).Dec().IsI128())
	tt.MustAssert(!i64(-1).IsU128())

	_, err := i64(-1).TryU256()
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
	u, err := MaxI256.TryU256()
	tt.MustOK(err)
	tt.MustAssert(u.Equal(MaxI256.AsU256()))

	v, err := I256From128(MinI128).TryI128()
	tt.MustOK(err)
	tt.MustEqual(MinI128, v)
	_, err = i64(-1).TryU128()
	tt.MustAssert(err != nil)
}

func TestAsTruncates(t *testing.T) {
	tt := assert.WrapTB(t)
	u := u256s("0xabcdef01 23456789 0000000000000000 fedcba9876543210")
	tt.MustEqual(uint64(0xfedcba9876543210), u.AsUint64())
	tt.MustEqual(uint32(0x76543210), u.AsUint32())
	tt.MustEqual(uint16(0x3210), u.AsUint16())
	tt.MustEqual(uint8(0x10), u.AsUint8())
	tt.MustEqual(int8(0x10), u.AsInt8())

	i := i64(-2)
	tt.MustEqual(int64(-2), i.AsInt64())
	tt.MustEqual(int32(-2), i.AsInt32())
	tt.MustEqual(int16(-2), i.AsInt16())
	tt.MustEqual(uint8(0xfe), i.AsUint8())
	tt.MustEqual(ILimb(-2), i.AsILimb())
	tt.MustEqual(I128From64(-2), i.AsI128())
	tt.MustAssert(I256FromILimb(-2).Equal(i))
}

func TestI128(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-170141183460469231731687303715884105728", MinI128.String())
	tt.MustEqual("170141183460469231731687303715884105727", MaxI128.String())
	tt.MustEqual("340282366920938463463374607431768211455", MaxU128.String())
	tt.MustEqual("-0x1f", fmt.Sprintf("%#x", I128From64(-31)))
	tt.MustEqual("-31", I128From64(-31).AsBigInt().String())
	tt.MustAssert(MinI128.I256().IsNegative())
	tt.MustAssert(!MinI128.IsInt64())
	tt.MustAssert(I128From64(math.MinInt64).IsInt64())
	tt.MustEqual(int64(math.MinInt64), I128From64(math.MinInt64).AsInt64())
	tt.MustAssert(MaxU128.U256().Equal(u256s("0xffffffffffffffff ffffffffffffffff")))
	tt.MustAssert(!MaxU128.IsI128())
	tt.MustAssert(U128From8(1).IsUint64())
}

func TestGenericToInt(t *testing.T) {
	tt := assert.WrapTB(t)

	v8, err := U256ToInt[int8](u64(127))
	tt.MustOK(err)
	tt.MustEqual(int8(127), v8)
	_, err = U256ToInt[int8](u64(128))
	tt.MustAssert(errors.Is(err, ErrOutOfRange))

	vu, err := U256ToInt[uint64](u64(math.MaxUint64))
	tt.MustOK(err)
	tt.MustEqual(uint64(math.MaxUint64), vu)
	_, err = U256ToInt[uint64](MaxU256)
	tt.MustAssert(errors.Is(err, ErrOutOfRange))

	vi, err := I256ToInt[int16](i64(math.MinInt16))
	tt.MustOK(err)
	tt.MustEqual(int16(math.MinInt16), vi)
	_, err = I256ToInt[uint8](i64(-1))
	tt.MustAssert(errors.Is(err, ErrOutOfRange))

	vu, err = I256ToInt[uint64](I256FromU64(math.MaxUint64))
	tt.MustOK(err)
	tt.MustEqual(uint64(math.MaxUint64), vu)
	_, err = I256ToInt[uint64](MinI256)
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
}
