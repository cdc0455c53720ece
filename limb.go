package num

import (
	"github.com/shabbyrobe/go-num256/internal/limb"
)

// Limb is the native machine word used to store U256 and I256 values, 32 or
// 64 bits depending on the target.
type Limb = limb.Limb

// ILimb is the signed counterpart to Limb.
type ILimb = limb.ILimb

// Wide is an unsigned double-limb value: 128 bits with 64-bit limbs, 64 bits
// with 32-bit limbs.
type Wide struct {
	Hi, Lo Limb
}

// WideFromRaw is the complement to Wide.Raw().
func WideFromRaw(hi, lo Limb) Wide { return Wide{Hi: hi, Lo: lo} }

// Raw returns the high and low limbs of w.
func (w Wide) Raw() (hi, lo Limb) { return w.Hi, w.Lo }
