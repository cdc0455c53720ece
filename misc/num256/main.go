package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-num256"
)

// Small calculator for poking at the overflow policies from the command line,
// e.g. 'num256 -policy=checked u256 0xff..ff add 1'.

const usage = `256-bit calculator

Usage: num256 [-policy=<policy>] [-dump] <type> <a> <op> <b>

Types:    u256, i256
Ops:      add, sub, mul, quo, rem, pow, lsh, rsh
Policies: wrapping (default), overflowing, checked, saturating, strict

Operands are parsed in base 10, or base 16 with a 0x prefix. The right hand
side of pow, lsh and rsh is a plain unsigned integer.
`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var policy string
	var dump bool

	flags := flag.NewFlagSet("num256", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flags.StringVar(&policy, "policy", "wrapping", "Overflow policy")
	flags.BoolVar(&dump, "dump", false, "Dump the result limbs with spew")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	args := flags.Args()
	if len(args) < 4 {
		fmt.Print(usage)
		return fmt.Errorf("missing args")
	}
	numType, as, op, bs := args[0], args[1], args[2], args[3]

	var result interface{}
	var err error
	switch numType {
	case "u256":
		result, err = evalU256(policy, as, op, bs)
	case "i256":
		result, err = evalI256(policy, as, op, bs)
	default:
		return fmt.Errorf("unknown type %q", numType)
	}
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case num.U256:
		fmt.Printf("%d\n%#x\n", r, r)
		if dump {
			spew.Dump(r.ToLEU64())
		}
	case num.I256:
		fmt.Printf("%d\n%#x\n", r, r)
		if dump {
			spew.Dump(r.ToLEU64())
		}
	default:
		fmt.Println(result)
	}
	return nil
}

func parseOperand(s string) (v string, radix int) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], 16
	}
	if len(s) > 3 && s[0] == '-' && s[1] == '0' && (s[2] == 'x' || s[2] == 'X') {
		return "-" + s[3:], 16
	}
	return s, 10
}

type result struct {
	Value    interface{}
	Overflow bool
}

func (r result) String() string {
	return fmt.Sprintf("%d (overflow: %v)", r.Value, r.Overflow)
}

func evalU256(policy, as, op, bs string) (interface{}, error) {
	a, err := num.U256FromStringRadix(parseOperand(as))
	if err != nil {
		return nil, err
	}

	switch op {
	case "pow", "lsh", "rsh":
		n, err := strconv.ParseUint(bs, 10, 0)
		if err != nil {
			return nil, err
		}
		return evalU256Uint(policy, a, op, uint(n))
	}

	b, err := num.U256FromStringRadix(parseOperand(bs))
	if err != nil {
		return nil, err
	}

	type ops struct {
		wrapping    func(a, b num.U256) num.U256
		overflowing func(a, b num.U256) (num.U256, bool)
		checked     func(a, b num.U256) (num.U256, bool)
		saturating  func(a, b num.U256) num.U256
		strict      func(a, b num.U256) num.U256
	}

	var o ops
	switch op {
	case "add":
		o = ops{num.U256.WrappingAdd, num.U256.OverflowingAdd, num.U256.CheckedAdd, num.U256.SaturatingAdd, num.U256.StrictAdd}
	case "sub":
		o = ops{num.U256.WrappingSub, num.U256.OverflowingSub, num.U256.CheckedSub, num.U256.SaturatingSub, num.U256.StrictSub}
	case "mul":
		o = ops{num.U256.WrappingMul, num.U256.OverflowingMul, num.U256.CheckedMul, num.U256.SaturatingMul, num.U256.StrictMul}
	case "quo":
		o = ops{num.U256.WrappingQuo, num.U256.OverflowingQuo, num.U256.CheckedQuo, num.U256.WrappingQuo, num.U256.StrictQuo}
	case "rem":
		o = ops{num.U256.WrappingRem, num.U256.OverflowingRem, num.U256.CheckedRem, num.U256.WrappingRem, num.U256.StrictRem}
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}

	switch policy {
	case "wrapping":
		return o.wrapping(a, b), nil
	case "overflowing":
		v, overflow := o.overflowing(a, b)
		return result{v, overflow}, nil
	case "checked":
		v, ok := o.checked(a, b)
		if !ok {
			return nil, fmt.Errorf("u256: %s %s %s failed", a, op, b)
		}
		return v, nil
	case "saturating":
		return o.saturating(a, b), nil
	case "strict":
		return o.strict(a, b), nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

func evalU256Uint(policy string, a num.U256, op string, n uint) (interface{}, error) {
	switch policy + "/" + op {
	case "wrapping/pow":
		return a.WrappingPow(n), nil
	case "wrapping/lsh":
		return a.WrappingLsh(n), nil
	case "wrapping/rsh":
		return a.WrappingRsh(n), nil
	case "overflowing/pow":
		v, overflow := a.OverflowingPow(n)
		return result{v, overflow}, nil
	case "overflowing/lsh":
		v, overflow := a.OverflowingLsh(n)
		return result{v, overflow}, nil
	case "overflowing/rsh":
		v, overflow := a.OverflowingRsh(n)
		return result{v, overflow}, nil
	case "checked/pow", "checked/lsh", "checked/rsh":
		var v num.U256
		var ok bool
		switch op {
		case "pow":
			v, ok = a.CheckedPow(n)
		case "lsh":
			v, ok = a.CheckedLsh(n)
		default:
			v, ok = a.CheckedRsh(n)
		}
		if !ok {
			return nil, fmt.Errorf("u256: %s %s %d failed", a, op, n)
		}
		return v, nil
	case "saturating/pow":
		return a.SaturatingPow(n), nil
	case "strict/pow":
		return a.StrictPow(n), nil
	case "strict/lsh":
		return a.StrictLsh(n), nil
	case "strict/rsh":
		return a.StrictRsh(n), nil
	}
	return nil, fmt.Errorf("op %q not supported with policy %q", op, policy)
}

func evalI256(policy, as, op, bs string) (interface{}, error) {
	a, err := num.I256FromStringRadix(parseOperand(as))
	if err != nil {
		return nil, err
	}

	switch op {
	case "pow", "lsh", "rsh":
		n, err := strconv.ParseUint(bs, 10, 0)
		if err != nil {
			return nil, err
		}
		return evalI256Uint(policy, a, op, uint(n))
	}

	b, err := num.I256FromStringRadix(parseOperand(bs))
	if err != nil {
		return nil, err
	}

	type ops struct {
		wrapping    func(a, b num.I256) num.I256
		overflowing func(a, b num.I256) (num.I256, bool)
		checked     func(a, b num.I256) (num.I256, bool)
		saturating  func(a, b num.I256) num.I256
		strict      func(a, b num.I256) num.I256
	}

	var o ops
	switch op {
	case "add":
		o = ops{num.I256.WrappingAdd, num.I256.OverflowingAdd, num.I256.CheckedAdd, num.I256.SaturatingAdd, num.I256.StrictAdd}
	case "sub":
		o = ops{num.I256.WrappingSub, num.I256.OverflowingSub, num.I256.CheckedSub, num.I256.SaturatingSub, num.I256.StrictSub}
	case "mul":
		o = ops{num.I256.WrappingMul, num.I256.OverflowingMul, num.I256.CheckedMul, num.I256.SaturatingMul, num.I256.StrictMul}
	case "quo":
		o = ops{num.I256.WrappingQuo, num.I256.OverflowingQuo, num.I256.CheckedQuo, num.I256.SaturatingQuo, num.I256.StrictQuo}
	case "rem":
		o = ops{num.I256.WrappingRem, num.I256.OverflowingRem, num.I256.CheckedRem, num.I256.WrappingRem, num.I256.StrictRem}
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}

	switch policy {
	case "wrapping":
		return o.wrapping(a, b), nil
	case "overflowing":
		v, overflow := o.overflowing(a, b)
		return result{v, overflow}, nil
	case "checked":
		v, ok := o.checked(a, b)
		if !ok {
			return nil, fmt.Errorf("i256: %s %s %s failed", a, op, b)
		}
		return v, nil
	case "saturating":
		return o.saturating(a, b), nil
	case "strict":
		return o.strict(a, b), nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

func evalI256Uint(policy string, a num.I256, op string, n uint) (interface{}, error) {
	switch policy + "/" + op {
	case "wrapping/pow":
		return a.WrappingPow(n), nil
	case "wrapping/lsh":
		return a.WrappingLsh(n), nil
	case "wrapping/rsh":
		return a.WrappingRsh(n), nil
	case "overflowing/pow":
		v, overflow := a.OverflowingPow(n)
		return result{v, overflow}, nil
	case "overflowing/lsh":
		v, overflow := a.OverflowingLsh(n)
		return result{v, overflow}, nil
	case "overflowing/rsh":
		v, overflow := a.OverflowingRsh(n)
		return result{v, overflow}, nil
	case "checked/pow", "checked/lsh", "checked/rsh":
		var v num.I256
		var ok bool
		switch op {
		case "pow":
			v, ok = a.CheckedPow(n)
		case "lsh":
			v, ok = a.CheckedLsh(n)
		default:
			v, ok = a.CheckedRsh(n)
		}
		if !ok {
			return nil, fmt.Errorf("i256: %s %s %d failed", a, op, n)
		}
		return v, nil
	case "saturating/pow":
		return a.SaturatingPow(n), nil
	case "strict/pow":
		return a.StrictPow(n), nil
	case "strict/lsh":
		return a.StrictLsh(n), nil
	case "strict/rsh":
		return a.StrictRsh(n), nil
	}
	return nil, fmt.Errorf("op %q not supported with policy %q", op, policy)
}
