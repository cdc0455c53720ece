package num

import (
	"encoding/binary"
	"math/bits"
	"slices"
)

// nativeLittle is true if the host stores the least significant byte first.
var nativeLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// u64 returns the i'th 64-bit word of u, counting from the least significant.
func (u U256) u64(i int) uint64 {
	if LimbBits == 64 {
		return uint64(u.limbs[i])
	}
	return uint64(u.limbs[2*i]) | uint64(u.limbs[2*i+1])<<32
}

func (u *U256) setU64(i int, v uint64) {
	if LimbBits == 64 {
		u.limbs[i] = Limb(v)
		return
	}
	u.limbs[2*i] = Limb(v)
	u.limbs[2*i+1] = Limb(v >> 32)
}

// GetLimb returns the i'th limb of u, counting from the least significant.
func (u U256) GetLimb(i int) Limb { return u.limbs[i] }

// GetWide returns the i'th double-limb word of u, counting from the least
// significant.
func (u U256) GetWide(i int) Wide { return WideFromRaw(u.limbs[2*i+1], u.limbs[2*i]) }

func (i I256) GetLimb(n int) Limb { return i.limbs[n] }
func (i I256) GetWide(n int) Wide { return i.AsU256().GetWide(n) }

// U256FromLEBytes creates a U256 from b, least significant byte first.
func U256FromLEBytes(b [Bytes]byte) (out U256) {
	for i := 0; i < U64Len; i++ {
		out.setU64(i, binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out
}

// U256FromBEBytes creates a U256 from b, most significant byte first.
func U256FromBEBytes(b [Bytes]byte) (out U256) {
	for i := 0; i < U64Len; i++ {
		out.setU64(i, binary.BigEndian.Uint64(b[(U64Len-1-i)*8:]))
	}
	return out
}

// U256FromNEBytes creates a U256 from b in the byte order of the host.
func U256FromNEBytes(b [Bytes]byte) U256 {
	if nativeLittle {
		return U256FromLEBytes(b)
	}
	return U256FromBEBytes(b)
}

func (u U256) ToLEBytes() (b [Bytes]byte) {
	for i := 0; i < U64Len; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], u.u64(i))
	}
	return b
}

func (u U256) ToBEBytes() (b [Bytes]byte) {
	for i := 0; i < U64Len; i++ {
		binary.BigEndian.PutUint64(b[(U64Len-1-i)*8:], u.u64(i))
	}
	return b
}

func (u U256) ToNEBytes() [Bytes]byte {
	if nativeLittle {
		return u.ToLEBytes()
	}
	return u.ToBEBytes()
}

// U256FromLELimbs creates a U256 from limbs stored least significant first.
// The value of each limb is unchanged; only the order of the limbs differs
// between the LE, BE and NE forms.
func U256FromLELimbs(v [Limbs]Limb) U256 { return U256{limbs: v} }

func U256FromBELimbs(v [Limbs]Limb) U256 {
	slices.Reverse(v[:])
	return U256{limbs: v}
}

func U256FromNELimbs(v [Limbs]Limb) U256 {
	if nativeLittle {
		return U256FromLELimbs(v)
	}
	return U256FromBELimbs(v)
}

func (u U256) ToLELimbs() [Limbs]Limb { return u.limbs }

func (u U256) ToBELimbs() [Limbs]Limb {
	v := u.limbs
	slices.Reverse(v[:])
	return v
}

func (u U256) ToNELimbs() [Limbs]Limb {
	if nativeLittle {
		return u.ToLELimbs()
	}
	return u.ToBELimbs()
}

func U256FromLEWide(v [WideLen]Wide) (out U256) {
	for i, w := range v {
		out.limbs[2*i], out.limbs[2*i+1] = w.Lo, w.Hi
	}
	return out
}

func U256FromBEWide(v [WideLen]Wide) U256 {
	slices.Reverse(v[:])
	return U256FromLEWide(v)
}

func U256FromNEWide(v [WideLen]Wide) U256 {
	if nativeLittle {
		return U256FromLEWide(v)
	}
	return U256FromBEWide(v)
}

func (u U256) ToLEWide() (v [WideLen]Wide) {
	for i := range v {
		v[i] = u.GetWide(i)
	}
	return v
}

func (u U256) ToBEWide() [WideLen]Wide {
	v := u.ToLEWide()
	slices.Reverse(v[:])
	return v
}

func (u U256) ToNEWide() [WideLen]Wide {
	if nativeLittle {
		return u.ToLEWide()
	}
	return u.ToBEWide()
}

func U256FromLEU32(v [U32Len]uint32) (out U256) {
	for i := 0; i < U64Len; i++ {
		out.setU64(i, uint64(v[2*i])|uint64(v[2*i+1])<<32)
	}
	return out
}

func U256FromBEU32(v [U32Len]uint32) U256 {
	slices.Reverse(v[:])
	return U256FromLEU32(v)
}

func U256FromNEU32(v [U32Len]uint32) U256 {
	if nativeLittle {
		return U256FromLEU32(v)
	}
	return U256FromBEU32(v)
}

func (u U256) ToLEU32() (v [U32Len]uint32) {
	for i := 0; i < U64Len; i++ {
		w := u.u64(i)
		v[2*i], v[2*i+1] = uint32(w), uint32(w>>32)
	}
	return v
}

func (u U256) ToBEU32() [U32Len]uint32 {
	v := u.ToLEU32()
	slices.Reverse(v[:])
	return v
}

func (u U256) ToNEU32() [U32Len]uint32 {
	if nativeLittle {
		return u.ToLEU32()
	}
	return u.ToBEU32()
}

func U256FromLEU64(v [U64Len]uint64) (out U256) {
	for i, w := range v {
		out.setU64(i, w)
	}
	return out
}

func U256FromBEU64(v [U64Len]uint64) U256 {
	slices.Reverse(v[:])
	return U256FromLEU64(v)
}

func U256FromNEU64(v [U64Len]uint64) U256 {
	if nativeLittle {
		return U256FromLEU64(v)
	}
	return U256FromBEU64(v)
}

func (u U256) ToLEU64() (v [U64Len]uint64) {
	for i := range v {
		v[i] = u.u64(i)
	}
	return v
}

func (u U256) ToBEU64() [U64Len]uint64 {
	v := u.ToLEU64()
	slices.Reverse(v[:])
	return v
}

func (u U256) ToNEU64() [U64Len]uint64 {
	if nativeLittle {
		return u.ToLEU64()
	}
	return u.ToBEU64()
}

// SwapBytes reverses the byte order of u.
func (u U256) SwapBytes() (v U256) {
	for i := range v.limbs {
		v.limbs[i] = Limb(bits.ReverseBytes(uint(u.limbs[Limbs-1-i])))
	}
	return v
}

// ReverseBits reverses the order of the bits of u, so the least significant
// bit becomes the most significant.
func (u U256) ReverseBits() (v U256) {
	for i := range v.limbs {
		v.limbs[i] = Limb(bits.Reverse(uint(u.limbs[Limbs-1-i])))
	}
	return v
}

// ToBE converts u to big endian from the byte order of the host. On big
// endian hosts this is a no-op; on little endian hosts the bytes are
// swapped.
func (u U256) ToBE() U256 {
	if nativeLittle {
		return u.SwapBytes()
	}
	return u
}

// ToLE converts u to little endian from the byte order of the host.
func (u U256) ToLE() U256 {
	if nativeLittle {
		return u
	}
	return u.SwapBytes()
}

// U256FromBE converts x from big endian to the byte order of the host.
func U256FromBE(x U256) U256 { return x.ToBE() }

// U256FromLE converts x from little endian to the byte order of the host.
func U256FromLE(x U256) U256 { return x.ToLE() }

func I256FromLEBytes(b [Bytes]byte) I256 { return U256FromLEBytes(b).AsI256() }
func I256FromBEBytes(b [Bytes]byte) I256 { return U256FromBEBytes(b).AsI256() }
func I256FromNEBytes(b [Bytes]byte) I256 { return U256FromNEBytes(b).AsI256() }

func (i I256) ToLEBytes() [Bytes]byte { return i.AsU256().ToLEBytes() }
func (i I256) ToBEBytes() [Bytes]byte { return i.AsU256().ToBEBytes() }
func (i I256) ToNEBytes() [Bytes]byte { return i.AsU256().ToNEBytes() }

func I256FromLELimbs(v [Limbs]Limb) I256 { return U256FromLELimbs(v).AsI256() }
func I256FromBELimbs(v [Limbs]Limb) I256 { return U256FromBELimbs(v).AsI256() }
func I256FromNELimbs(v [Limbs]Limb) I256 { return U256FromNELimbs(v).AsI256() }

func (i I256) ToLELimbs() [Limbs]Limb { return i.limbs }
func (i I256) ToBELimbs() [Limbs]Limb { return i.AsU256().ToBELimbs() }
func (i I256) ToNELimbs() [Limbs]Limb { return i.AsU256().ToNELimbs() }

func I256FromLEWide(v [WideLen]Wide) I256 { return U256FromLEWide(v).AsI256() }
func I256FromBEWide(v [WideLen]Wide) I256 { return U256FromBEWide(v).AsI256() }
func I256FromNEWide(v [WideLen]Wide) I256 { return U256FromNEWide(v).AsI256() }

func (i I256) ToLEWide() [WideLen]Wide { return i.AsU256().ToLEWide() }
func (i I256) ToBEWide() [WideLen]Wide { return i.AsU256().ToBEWide() }
func (i I256) ToNEWide() [WideLen]Wide { return i.AsU256().ToNEWide() }

func I256FromLEU32(v [U32Len]uint32) I256 { return U256FromLEU32(v).AsI256() }
func I256FromBEU32(v [U32Len]uint32) I256 { return U256FromBEU32(v).AsI256() }
func I256FromNEU32(v [U32Len]uint32) I256 { return U256FromNEU32(v).AsI256() }

func (i I256) ToLEU32() [U32Len]uint32 { return i.AsU256().ToLEU32() }
func (i I256) ToBEU32() [U32Len]uint32 { return i.AsU256().ToBEU32() }
func (i I256) ToNEU32() [U32Len]uint32 { return i.AsU256().ToNEU32() }

func I256FromLEU64(v [U64Len]uint64) I256 { return U256FromLEU64(v).AsI256() }
func I256FromBEU64(v [U64Len]uint64) I256 { return U256FromBEU64(v).AsI256() }
func I256FromNEU64(v [U64Len]uint64) I256 { return U256FromNEU64(v).AsI256() }

func (i I256) ToLEU64() [U64Len]uint64 { return i.AsU256().ToLEU64() }
func (i I256) ToBEU64() [U64Len]uint64 { return i.AsU256().ToBEU64() }
func (i I256) ToNEU64() [U64Len]uint64 { return i.AsU256().ToNEU64() }

func (i I256) SwapBytes() I256   { return i.AsU256().SwapBytes().AsI256() }
func (i I256) ReverseBits() I256 { return i.AsU256().ReverseBits().AsI256() }
func (i I256) ToBE() I256        { return i.AsU256().ToBE().AsI256() }
func (i I256) ToLE() I256        { return i.AsU256().ToLE().AsI256() }

func I256FromBE(x I256) I256 { return x.ToBE() }
func I256FromLE(x I256) I256 { return x.ToLE() }
