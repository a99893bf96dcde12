package bigverify

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/oisee/bignum/pkg/bigint"
	"github.com/oisee/bignum/pkg/biguint"
	"github.com/oisee/bignum/pkg/birand"
)

func randUint(rng *rand.Rand, bits uint) *biguint.Uint {
	return birand.UintN(rng, 1+rng.UintN(bits))
}

// randInt draws a random magnitude and gives it a random sign, so the
// checks below exercise all four sign combinations roughly equally.
func randInt(rng *rand.Rand, bits uint) *bigint.Int {
	z := mustInt(randUint(rng, bits))
	if rng.IntN(2) == 0 {
		z.Neg(z)
	}
	return z
}

func mustInt(u *biguint.Uint) *bigint.Int {
	z := new(bigint.Int)
	if _, err := z.SetString(u.String()); err != nil {
		panic("bigverify: rendering a Uint produced an unparseable string: " + err.Error())
	}
	return z
}

// UintChecks are the BigUint algebraic identities bigverify knows how to
// exercise.
var UintChecks = []Check{
	{"uint-add-commutative", func(rng *rand.Rand, bits uint) error {
		a, b := randUint(rng, bits), randUint(rng, bits)
		lhs := new(biguint.Uint).Add(a, b)
		rhs := new(biguint.Uint).Add(b, a)
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("%s + %s: %s != %s", a, b, lhs, rhs)
		}
		return nil
	}},
	{"uint-mul-commutative", func(rng *rand.Rand, bits uint) error {
		a, b := randUint(rng, bits), randUint(rng, bits)
		lhs := new(biguint.Uint).Mul(a, b)
		rhs := new(biguint.Uint).Mul(b, a)
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("%s * %s: %s != %s", a, b, lhs, rhs)
		}
		return nil
	}},
	{"uint-mul-distributes-over-add", func(rng *rand.Rand, bits uint) error {
		a, b, c := randUint(rng, bits), randUint(rng, bits), randUint(rng, bits)
		bc := new(biguint.Uint).Add(b, c)
		lhs := new(biguint.Uint).Mul(a, bc)
		ab := new(biguint.Uint).Mul(a, b)
		ac := new(biguint.Uint).Mul(a, c)
		rhs := new(biguint.Uint).Add(ab, ac)
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("%s * (%s + %s): %s != %s", a, b, c, lhs, rhs)
		}
		return nil
	}},
	{"uint-quorem-reconstructs-dividend", func(rng *rand.Rand, bits uint) error {
		x, y := randUint(rng, bits), randUint(rng, 1+bits/2)
		if !y.Bool() {
			return nil
		}
		var q, r biguint.Uint
		if _, _, err := q.QuoRem(x, y, &r); err != nil {
			return fmt.Errorf("QuoRem(%s, %s): %w", x, y, err)
		}
		qy := new(biguint.Uint).Mul(&q, y)
		got := new(biguint.Uint).Add(qy, &r)
		if got.Cmp(x) != 0 {
			return fmt.Errorf("q*y+r for %s/%s: got %s, want %s", x, y, got, x)
		}
		return nil
	}},
	{"uint-shift-left-then-right-is-identity", func(rng *rand.Rand, bits uint) error {
		x := randUint(rng, bits)
		n := uint(rng.IntN(64))
		shifted := new(biguint.Uint).Lsh(x, n)
		back := new(biguint.Uint).Rsh(shifted, n)
		if back.Cmp(x) != 0 {
			return fmt.Errorf("(%s << %d) >> %d: got %s, want %s", x, n, n, back, x)
		}
		return nil
	}},
	{"uint-quofloat64-agrees-with-quorem", func(rng *rand.Rand, bits uint) error {
		x, y := randUint(rng, bits), randUint(rng, 1+bits/2)
		if !y.Bool() {
			return nil
		}
		got, err := x.QuoFloat64(y)
		if err != nil {
			return fmt.Errorf("QuoFloat64(%s, %s): %w", x, y, err)
		}
		var q, r biguint.Uint
		if _, _, err := q.QuoRem(x, y, &r); err != nil {
			return fmt.Errorf("QuoRem(%s, %s): %w", x, y, err)
		}
		// got should agree, to a relative tolerance of 1e-6, with the
		// truncating quotient plus its fractional remainder, since both
		// describe the same exact rational value x/y.
		want := q.Float64() + r.Float64()/y.Float64()
		if math.Abs(got-want) > want*1e-6+1e-9 {
			return fmt.Errorf("%s/%s as float: got %v, want approximately %v", x, y, got, want)
		}
		return nil
	}},
	{"uint-exp-matches-repeated-mul", func(rng *rand.Rand, bits uint) error {
		base := randUint(rng, 1+bits/8)
		n := uint(rng.IntN(6))
		got := new(biguint.Uint).Exp(base, biguint.NewUint(uint64(n)))
		want := biguint.NewUint(1)
		for i := uint(0); i < n; i++ {
			want.Mul(want, base)
		}
		if got.Cmp(want) != 0 {
			return fmt.Errorf("%s**%d: got %s, want %s", base, n, got, want)
		}
		return nil
	}},
}

// IntChecks are the BigInt algebraic identities bigverify knows how to
// exercise, including the two's-complement bitwise identities.
var IntChecks = []Check{
	{"int-add-commutative", func(rng *rand.Rand, bits uint) error {
		a, b := randInt(rng, bits), randInt(rng, bits)
		lhs := new(bigint.Int).Add(a, b)
		rhs := new(bigint.Int).Add(b, a)
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("%s + %s: %s != %s", a, b, lhs, rhs)
		}
		return nil
	}},
	{"int-double-negation", func(rng *rand.Rand, bits uint) error {
		a := randInt(rng, bits)
		neg := new(bigint.Int).Neg(a)
		back := new(bigint.Int).Neg(neg)
		if back.Cmp(a) != 0 {
			return fmt.Errorf("-(-%s): got %s", a, back)
		}
		return nil
	}},
	{"int-not-is-neg-succ", func(rng *rand.Rand, bits uint) error {
		a := randInt(rng, bits)
		lhs := new(bigint.Int).Not(a)
		rhs := new(bigint.Int).Add(a, bigint.NewInt(1))
		rhs.Neg(rhs)
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("^%s: got %s, want %s", a, lhs, rhs)
		}
		return nil
	}},
	{"int-xor-self-is-zero", func(rng *rand.Rand, bits uint) error {
		a := randInt(rng, bits)
		z := new(bigint.Int).Xor(a, a)
		if z.Bool() {
			return fmt.Errorf("%s ^ %s: got %s, want 0", a, a, z)
		}
		return nil
	}},
	{"int-quofloat64-sign-matches-operand-signs", func(rng *rand.Rand, bits uint) error {
		x, y := randInt(rng, bits), randInt(rng, 1+bits/2)
		if !y.Bool() {
			return nil
		}
		got, err := x.QuoFloat64(y)
		if err != nil {
			return fmt.Errorf("QuoFloat64(%s, %s): %w", x, y, err)
		}
		wantNeg := (x.Sign() < 0) != (y.Sign() < 0)
		if x.Bool() && (got < 0) != wantNeg {
			return fmt.Errorf("%s/%s as float: got %v, sign mismatch (want negative=%v)", x, y, got, wantNeg)
		}
		return nil
	}},
	{"int-divmod-remainder-takes-divisor-sign", func(rng *rand.Rand, bits uint) error {
		x, y := randInt(rng, bits), randInt(rng, 1+bits/2)
		if !y.Bool() {
			return nil
		}
		var q, m bigint.Int
		if _, _, err := q.DivMod(x, y, &m); err != nil {
			return fmt.Errorf("DivMod(%s, %s): %w", x, y, err)
		}
		if m.Bool() && m.Sign() != y.Sign() {
			return fmt.Errorf("DivMod(%s, %s): remainder %s has wrong sign", x, y, &m)
		}
		qy := new(bigint.Int).Mul(&q, y)
		got := new(bigint.Int).Add(qy, &m)
		if got.Cmp(x) != 0 {
			return fmt.Errorf("q*y+m for %s/%s: got %s, want %s", x, y, got, x)
		}
		return nil
	}},
}
