package limb

// Shl sets z = x << s. Limbs shifted past the top of z are discarded, so a
// shift of len(z)*Bits or more clears z.
func Shl(z, x []Limb, s uint) {
	n := len(z)
	ls, bs := s/Bits, s%Bits
	if ls >= uint(n) {
		clear(z)
		return
	}
	off := int(ls)

	// Descending, so z may alias x.
	for i := n - 1; i >= 0; i-- {
		j := i - off
		var v Limb
		if j >= 0 {
			v = x[j] << bs
			if bs != 0 && j > 0 {
				v |= x[j-1] >> (Bits - bs)
			}
		}
		z[i] = v
	}
}

// Shr sets z = x >> s, shifting fill into the vacated high bits. Pass 0 for
// a logical shift, or Fill(x) for an arithmetic shift. A shift of len(z)*Bits
// or more sets every limb to fill.
func Shr(z, x []Limb, s uint, fill Limb) {
	n := len(z)
	ls, bs := s/Bits, s%Bits
	if ls >= uint(n) {
		for i := range z {
			z[i] = fill
		}
		return
	}
	off := int(ls)

	// Ascending, so z may alias x.
	for i := 0; i < n; i++ {
		j := i + off
		if j >= n {
			z[i] = fill
			continue
		}
		v := x[j] >> bs
		if bs != 0 {
			hi := fill
			if j+1 < n {
				hi = x[j+1]
			}
			v |= hi << (Bits - bs)
		}
		z[i] = v
	}
}

// RotateLeft sets z to x rotated left by s mod len(z)*Bits bits. z must not
// alias x.
func RotateLeft(z, x, scratch []Limb, s uint) {
	w := uint(len(z)) * Bits
	s %= w
	if s == 0 {
		copy(z, x)
		return
	}
	Shl(z, x, s)
	Shr(scratch, x, w-s, 0)
	Or(z, z, scratch)
}
