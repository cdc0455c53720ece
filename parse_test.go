package num

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestU256FromString(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		out   U256
	}{
		{"0", 10, U256{}},
		{"1", 10, u64(1)},
		{"+1", 10, u64(1)},
		{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001", 10, u64(1)},
		{maxU256Dec, 10, MaxU256},
		{strings.Repeat("f", 64), 16, MaxU256},
		{strings.Repeat("F", 64), 16, MaxU256},
		{"+" + strings.Repeat("f", 64), 16, MaxU256},
		{"1" + strings.Repeat("7", 85), 8, MaxU256},
		{strings.Repeat("1", 256), 2, MaxU256},
		{"340282366920938463463374607431768211456", 10, U256FromLEU64([U64Len]uint64{0, 0, 1, 0})},
		{"zz", 36, u64(36*36 - 1)},
		{"ZZ", 36, u64(36*36 - 1)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := U256FromStringRadix(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found: %s", v)
		})
	}
}

func TestU256FromStringFails(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		err   error
	}{
		{"", 10, strconv.ErrSyntax},
		{"+", 10, strconv.ErrSyntax},
		{"-15", 10, strconv.ErrSyntax},
		{"-0xFF", 16, strconv.ErrSyntax},
		{"+0xFF", 16, strconv.ErrSyntax},
		{"0xFF", 16, strconv.ErrSyntax},
		{"FF", 10, strconv.ErrSyntax},
		{"a9", 10, strconv.ErrSyntax},
		{"12.34", 10, strconv.ErrSyntax},
		{"1234_67", 10, strconv.ErrSyntax},
		{" 1", 10, strconv.ErrSyntax},
		{"2", 2, strconv.ErrSyntax},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", 10, strconv.ErrRange},
		{"1" + strings.Repeat("0", 64), 16, strconv.ErrRange},
		{"2" + strings.Repeat("0", 85), 8, strconv.ErrRange},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := U256FromStringRadix(tc.in, tc.radix)
			tt.MustAssert(errors.Is(err, tc.err), "found: %v", err)

			var nerr *strconv.NumError
			tt.MustAssert(errors.As(err, &nerr))
			tt.MustEqual(tc.in, nerr.Num)
		})
	}
}

func TestParseInvalidRadix(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 37} {
		t.Run(fmt.Sprint(radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := U256FromStringRadix("1", radix)
			tt.MustAssert(err != nil)
			tt.MustAssert(strings.Contains(err.Error(), "invalid base "+strconv.Itoa(radix)), err.Error())

			_, err = I256FromStringRadix("1", radix)
			tt.MustAssert(err != nil)
		})
	}
}

func TestI256FromString(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		out   I256
	}{
		{"0", 10, I256{}},
		{"-0", 10, I256{}},
		{"+1", 10, i64(1)},
		{"-1", 10, i64(-1)},
		{maxI256Dec, 10, MaxI256},
		{minI256Dec, 10, MinI256},
		{"-8" + strings.Repeat("0", 63), 16, MinI256},
		{"7" + strings.Repeat("f", 63), 16, MaxI256},
		{"-ff", 16, i64(-255)},
		{"-1" + strings.Repeat("0", 255), 2, MinI256},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := I256FromStringRadix(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found: %s", v)
		})
	}
}

func TestI256FromStringFails(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		err   error
	}{
		{"", 10, strconv.ErrSyntax},
		{"-", 10, strconv.ErrSyntax},
		{"--1", 10, strconv.ErrSyntax},
		{"-0xFF", 16, strconv.ErrSyntax},
		{"1.5", 10, strconv.ErrSyntax},
		{"57896044618658097711785492504343953926634992332820282019728792003956564819968", 10, strconv.ErrRange},
		{"-57896044618658097711785492504343953926634992332820282019728792003956564819969", 10, strconv.ErrRange},
		{maxU256Dec, 10, strconv.ErrRange},
		{"-" + maxU256Dec, 10, strconv.ErrRange},
		{"8" + strings.Repeat("0", 63), 16, strconv.ErrRange},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := I256FromStringRadix(tc.in, tc.radix)
			tt.MustAssert(errors.Is(err, tc.err), "found: %v", err)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		u := RandU256(globalRNG)
		for radix := 2; radix <= 36; radix++ {
			v, err := U256FromStringRadix(u.Text(radix), radix)
			tt.MustOK(err)
			tt.MustAssert(u.Equal(v), "radix %d: %s != %s", radix, u, v)

			s := u.AsI256()
			w, err := I256FromStringRadix(s.Text(radix), radix)
			tt.MustOK(err)
			tt.MustAssert(s.Equal(w), "radix %d: %s != %s", radix, s, w)
		}
	}
}
