package num

import (
	"fmt"
	"strconv"
)

const (
	digitsLower = "0123456789abcdefghijklmnopqrstuvwxyz"
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// radixChunk returns the largest power of radix that fits in a Limb, and
// the number of digits it represents.
func radixChunk(radix Limb) (chunk Limb, n int) {
	chunk, n = radix, 1
	for chunk <= ^Limb(0)/radix {
		chunk *= radix
		n++
	}
	return chunk, n
}

// appendMagnitude appends the digits of u in the given radix to dst. Each
// division by a whole chunk of digits produces up to n digits from a single
// limb remainder.
func appendMagnitude(dst []byte, u U256, radix int, digits string) []byte {
	if u.IsZero() {
		return append(dst, '0')
	}

	var buf [Bits]byte
	pos := len(buf)
	r := Limb(radix)
	chunk, n := radixChunk(r)
	for !u.IsZero() {
		var rem Limb
		u, rem = u.QuoRemLimb(chunk)

		// Every chunk but the most significant one is zero padded:
		for d := 0; d < n && (rem != 0 || !u.IsZero()); d++ {
			pos--
			buf[pos] = digits[rem%r]
			rem /= r
		}
	}
	return append(dst, buf[pos:]...)
}

func checkFormatRadix(kind string, radix int) {
	if radix < 2 || radix > 36 {
		panic(kind + ": illegal radix")
	}
}

func (u U256) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return string(appendMagnitude(nil, u, 10, digitsLower))
}

// Text returns the representation of u in the given radix, which must be
// between 2 and 36. Lower-case letters are used for digits above 9.
func (u U256) Text(radix int) string {
	checkFormatRadix(kindU256, radix)
	return string(appendMagnitude(nil, u, radix, digitsLower))
}

// Format implements fmt.Formatter. The verbs b, o, O, d, x, X, v and s are
// supported; of the flags only '#' is honoured, adding the 0b, 0, 0x or 0X
// prefix. Width and precision are ignored.
func (u U256) Format(s fmt.State, c rune) {
	formatVerb(s, c, "num.U256", false, u)
}

func (i I256) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	out := make([]byte, 0, MaxDigits+1)
	if i.IsNegative() {
		out = append(out, '-')
	}
	return string(appendMagnitude(out, i.UnsignedAbs(), 10, digitsLower))
}

// Text returns the representation of i in the given radix, with a leading
// '-' for negative values.
func (i I256) Text(radix int) string {
	checkFormatRadix(kindI256, radix)
	var out []byte
	if i.IsNegative() {
		out = append(out, '-')
	}
	return string(appendMagnitude(out, i.UnsignedAbs(), radix, digitsLower))
}

// Format implements fmt.Formatter; see U256.Format. The sign precedes any
// prefix, as in "-0x1f".
func (i I256) Format(s fmt.State, c rune) {
	formatVerb(s, c, "num.I256", i.IsNegative(), i.UnsignedAbs())
}

func formatVerb(s fmt.State, c rune, typ string, neg bool, mag U256) {
	var radix int
	var prefix string
	digits := digitsLower
	alt := s.Flag('#')

	switch c {
	case 'b':
		radix = 2
		if alt {
			prefix = "0b"
		}
	case 'o':
		radix = 8
		if alt && !mag.IsZero() {
			prefix = "0"
		}
	case 'O':
		radix, prefix = 8, "0o"
	case 'd', 'v', 's':
		radix = 10
	case 'x':
		radix = 16
		if alt {
			prefix = "0x"
		}
	case 'X':
		radix, digits = 16, digitsUpper
		if alt {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(%s=", c, typ)
		if neg {
			s.Write([]byte{'-'})
		}
		s.Write(appendMagnitude(nil, mag, 10, digitsLower))
		s.Write([]byte{')'})
		return
	}

	out := make([]byte, 0, Bits+3)
	if neg {
		out = append(out, '-')
	}
	out = append(out, prefix...)
	out = appendMagnitude(out, mag, radix, digits)
	s.Write(out)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(kindU256, bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

func (i I256) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(kindI256, bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

// unquoteJSON accepts both a quoted string and a bare JSON number.
func unquoteJSON(kind string, bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("num: %s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
