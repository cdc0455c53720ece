package num

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64
	propIterations  = 500

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "num.fuzztype", "Fuzz type (u256, i256) (can pass multiple)")
	flag.IntVar(&propIterations, "num.propiter", propIterations, "Minimum successful tests per property")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("limb size: ", LimbBits)
	log.Println("overflow checks:", overflowChecks)

	code := m.Run()
	os.Exit(code)
}

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }
func bigI64(i int64) *big.Int  { return new(big.Int).SetInt64(i) }

func bigs(s string) *big.Int {
	v, _ := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	return v
}

// u256s parses s with big.Int, so prefixes like 0x and spaces for grouping
// are accepted.
func u256s(s string) U256 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: u256 string %q invalid", s))
	}
	return accU256FromBigInt(b)
}

func i256s(s string) I256 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: i256 string %q invalid", s))
	}
	return accI256FromBigInt(b)
}

func accU256FromBigInt(b *big.Int) U256 {
	u, acc := U256FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to U256 in fuzz tester for %s", b))
	}
	return u
}

func accI256FromBigInt(b *big.Int) I256 {
	i, acc := I256FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to I256 in fuzz tester for %s", b))
	}
	return i
}

var (
	u64 = U256From64
	i64 = I256From64
)

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// simulateBigU256Overflow reduces rb modulo 2^256, like unsigned wrapping.
func simulateBigU256Overflow(rb *big.Int) *big.Int {
	return new(big.Int).Mod(rb, wrapBigU256)
}

// simulateBigI256Overflow reduces rb into [MinI256, MaxI256] the way two's
// complement wrapping does.
func simulateBigI256Overflow(rb *big.Int) *big.Int {
	r := new(big.Int).Mod(rb, wrapBigU256)
	if r.Cmp(maxBigI256) > 0 {
		r.Sub(r, wrapBigU256)
	}
	return r
}

func bigFitsU256(b *big.Int) bool { return b.Sign() >= 0 && b.Cmp(maxBigU256) <= 0 }
func bigFitsI256(b *big.Int) bool { return b.Cmp(minBigI256) >= 0 && b.Cmp(maxBigI256) <= 0 }
