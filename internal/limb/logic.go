package limb

// And sets z = x & y.
func And(z, x, y []Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i] = x[i] & y[i]
	}
}

// AndNot sets z = x &^ y.
func AndNot(z, x, y []Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i] = x[i] &^ y[i]
	}
}

// Or sets z = x | y.
func Or(z, x, y []Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i] = x[i] | y[i]
	}
}

// Xor sets z = x ^ y.
func Xor(z, x, y []Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i] = x[i] ^ y[i]
	}
}

// Not sets z = ^x.
func Not(z, x []Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i] = ^x[i]
	}
}
