package num

import (
	"errors"
	"strconv"
)

// U256FromString parses a base 10 string into a U256. See
// U256FromStringRadix.
func U256FromString(s string) (U256, error) {
	return U256FromStringRadix(s, 10)
}

// U256FromStringRadix parses s in the given radix, which must be between 2
// and 36. Letters of either case are accepted for digits above 9. An
// optional leading '+' is allowed; prefixes such as "0x", underscores and
// whitespace are not.
//
// Errors are of type *strconv.NumError, wrapping strconv.ErrSyntax for
// malformed input and strconv.ErrRange if the value exceeds MaxU256.
func U256FromStringRadix(s string, radix int) (U256, error) {
	const fn = "U256FromStringRadix"
	if err := checkRadix(fn, s, radix); err != nil {
		return U256{}, err
	}
	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	return parseMagnitude(fn, s, digits, radix)
}

// I256FromString parses a base 10 string into an I256. See
// I256FromStringRadix.
func I256FromString(s string) (I256, error) {
	return I256FromStringRadix(s, 10)
}

// I256FromStringRadix is U256FromStringRadix for signed values; a leading
// '-' is also accepted. The range is [MinI256, MaxI256].
func I256FromStringRadix(s string, radix int) (I256, error) {
	const fn = "I256FromStringRadix"
	if err := checkRadix(fn, s, radix); err != nil {
		return I256{}, err
	}

	digits, neg := s, false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	mag, err := parseMagnitude(fn, s, digits, radix)
	if err != nil {
		return I256{}, err
	}
	if neg {
		if mag.GreaterThan(MinI256.AsU256()) {
			return I256{}, rangeError(fn, s)
		}
		return mag.AsI256().WrappingNeg(), nil
	}
	if !mag.IsI256() {
		return I256{}, rangeError(fn, s)
	}
	return mag.AsI256(), nil
}

func parseMagnitude(fn, s, digits string, radix int) (out U256, err error) {
	if len(digits) == 0 {
		return out, syntaxError(fn, s)
	}

	var ok bool
	for i := 0; i < len(digits); i++ {
		d, valid := digitValue(digits[i])
		if !valid || d >= Limb(radix) {
			return U256{}, syntaxError(fn, s)
		}
		if out, ok = out.CheckedMulLimb(Limb(radix)); !ok {
			return U256{}, rangeError(fn, s)
		}
		if out, ok = out.CheckedAddLimb(d); !ok {
			return U256{}, rangeError(fn, s)
		}
	}
	return out, nil
}

func digitValue(c byte) (Limb, bool) {
	switch {
	case '0' <= c && c <= '9':
		return Limb(c - '0'), true
	case 'a' <= c && c <= 'z':
		return Limb(c - 'a' + 10), true
	case 'A' <= c && c <= 'Z':
		return Limb(c - 'A' + 10), true
	}
	return 0, false
}

// checkRadix rejects a radix outside 2..36 the way strconv.ParseUint does.
func checkRadix(fn, s string, radix int) error {
	if radix < 2 || radix > 36 {
		return &strconv.NumError{Func: fn, Num: s, Err: errors.New("invalid base " + strconv.Itoa(radix))}
	}
	return nil
}

func syntaxError(fn, s string) error {
	return &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
}

func rangeError(fn, s string) error {
	return &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrRange}
}
