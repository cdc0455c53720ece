package limb

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func limbsGen(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.UInt())
}

func TestCmpStrategiesAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	for _, sign := range []Sign{Unsigned, Signed} {
		sign := sign
		name := "unsigned"
		if sign.Signed() {
			name = "signed"
		}

		properties.Property(name+" Cmp agrees with CmpShort", prop.ForAll(
			func(x, y []uint) bool {
				return sign.Cmp(x, y) == sign.CmpShort(x, y) && sign.Cmp(x, x) == 0
			},
			limbsGen(4), limbsGen(4),
		))

		properties.Property(name+" Cmp is antisymmetric", prop.ForAll(
			func(x, y []uint) bool {
				return sign.Cmp(x, y) == -sign.Cmp(y, x)
			},
			limbsGen(4), limbsGen(4),
		))
	}

	properties.TestingRun(t)
}

func TestArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("x + -x == 0", prop.ForAll(
		func(x []uint) bool {
			neg, z := make([]Limb, len(x)), make([]Limb, len(x))
			Neg(neg, x)
			Add(z, x, neg)
			return IsZero(z)
		},
		limbsGen(4),
	))

	properties.Property("u == q*v + r", prop.ForAll(
		func(u, v []uint) bool {
			if IsZero(v) {
				return true
			}
			q, r, d := make([]Limb, 4), make([]Limb, 4), make([]Limb, 4)
			QuoRem(q, r, u, v, d)
			if Unsigned.Cmp(r, v) >= 0 {
				return false
			}
			z := make([]Limb, 4)
			MulLow(z, q, v)
			Add(z, z, r)
			return Equal(z, u)
		},
		limbsGen(4), limbsGen(4),
	))

	properties.Property("shl then shr restores the low bits", prop.ForAll(
		func(x []uint, s uint) bool {
			s %= 4 * Bits
			z, back, mask := make([]Limb, 4), make([]Limb, 4), make([]Limb, 4)
			Shl(z, x, s)
			Shr(back, z, s, 0)

			// Keep only the bits that survived the left shift.
			Not(mask, mask)
			Shr(mask, mask, s, 0)
			And(mask, mask, x)
			return Equal(back, mask)
		},
		limbsGen(4), gen.UInt(),
	))

	properties.TestingRun(t)
}
