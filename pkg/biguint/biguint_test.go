package biguint

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/oisee/bignum/pkg/bigerr"
)

func mustUint(t *testing.T, s string) *Uint {
	t.Helper()
	z, err := new(Uint).SetString(s)
	if err != nil {
		t.Fatalf("SetString(%q): %v", s, err)
	}
	return z
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b, wantSum string
	}{
		{"0", "0", "0"},
		{"1", "1", "2"},
		{"18446744073709551615", "1", "18446744073709551616"}, // carry across a limb
		{"170141183460469231731687303715884105727", "1", "170141183460469231731687303715884105728"},
	}
	for _, tt := range tests {
		a, b := mustUint(t, tt.a), mustUint(t, tt.b)
		sum := new(Uint).Add(a, b)
		if sum.String() != tt.wantSum {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, sum, tt.wantSum)
		}
		diff, err := new(Uint).Sub(sum, b)
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		if diff.Cmp(a) != 0 {
			t.Errorf("(%s+%s)-%s = %s, want %s", tt.a, tt.b, tt.b, diff, tt.a)
		}
	}
}

func TestSubUnderflow(t *testing.T) {
	a, b := mustUint(t, "1"), mustUint(t, "2")
	if _, err := new(Uint).Sub(a, b); !errors.Is(err, bigerr.ErrDomain) {
		t.Errorf("Sub(1,2) error = %v, want bigerr.ErrDomain", err)
	}
}

func TestMulSchoolbookAndKaratsubaAgree(t *testing.T) {
	a := mustUint(t, "123456789012345678901234567890123456789012345678901234567890")
	b := mustUint(t, "987654321098765432109876543210987654321098765432109876543210")

	orig := karatsubaThreshold
	defer SetKaratsubaThreshold(orig)

	SetKaratsubaThreshold(1 << 30) // force schoolbook
	schoolbook := new(Uint).Mul(a, b)

	SetKaratsubaThreshold(1) // force karatsuba
	karatsuba := new(Uint).Mul(a, b)

	if schoolbook.Cmp(karatsuba) != 0 {
		t.Errorf("schoolbook %s != karatsuba %s", schoolbook, karatsuba)
	}
}

func TestQuoRem(t *testing.T) {
	tests := []struct {
		x, y, wantQ, wantR string
	}{
		{"100", "7", "14", "2"},
		{"0", "5", "0", "0"},
		{"18446744073709551616", "2", "9223372036854775808", "0"}, // 2^64 / 2
		{"340282366920938463463374607431768211455", "18446744073709551616", "18446744073709551615", "18446744073709551615"},
	}
	for _, tt := range tests {
		x, y := mustUint(t, tt.x), mustUint(t, tt.y)
		var q, r Uint
		if _, _, err := q.QuoRem(x, y, &r); err != nil {
			t.Fatalf("QuoRem(%s,%s): %v", tt.x, tt.y, err)
		}
		if q.String() != tt.wantQ || r.String() != tt.wantR {
			t.Errorf("%s / %s = %s r %s, want %s r %s", tt.x, tt.y, &q, &r, tt.wantQ, tt.wantR)
		}
	}
}

// TestQuoRemMultiLimbDivisor exercises Knuth D's general path (divisor
// spanning more than one limb, requiring qhat estimation and refinement)
// by checking the division identity rather than a hand-computed quotient.
func TestQuoRemMultiLimbDivisor(t *testing.T) {
	x := mustUint(t, "123456789012345678901234567890123456789012345678901234567890")
	y := mustUint(t, "987654321098765432109876543210987")
	var q, r Uint
	if _, _, err := q.QuoRem(x, y, &r); err != nil {
		t.Fatalf("QuoRem: %v", err)
	}
	if r.Cmp(y) >= 0 {
		t.Fatalf("remainder %s not smaller than divisor %s", &r, y)
	}
	qy := new(Uint).Mul(&q, y)
	got := new(Uint).Add(qy, &r)
	if got.Cmp(x) != 0 {
		t.Errorf("q*y+r = %s, want %s", got, x)
	}
}

func TestQuoRemByZero(t *testing.T) {
	x, y := mustUint(t, "5"), mustUint(t, "0")
	var q, r Uint
	if _, _, err := q.QuoRem(x, y, &r); !errors.Is(err, bigerr.ErrDomain) {
		t.Errorf("QuoRem by zero error = %v, want bigerr.ErrDomain", err)
	}
}

func TestShifts(t *testing.T) {
	x := mustUint(t, "1")
	got := new(Uint).Lsh(x, 100)
	want := mustUint(t, "1267650600228229401496703205376") // 2^100
	if got.Cmp(want) != 0 {
		t.Errorf("1<<100 = %s, want %s", got, want)
	}
	back := new(Uint).Rsh(got, 100)
	if back.Cmp(x) != 0 {
		t.Errorf("(1<<100)>>100 = %s, want 1", back)
	}
}

func TestBitwise(t *testing.T) {
	x := new(Uint).Lsh(mustUint(t, "1"), 10) // 1024
	y := new(Uint).Lsh(mustUint(t, "1"), 5)  // 32
	or := new(Uint).Or(x, y)
	if or.Uint64() != 1024+32 {
		t.Errorf("1024|32 = %s, want 1056", or)
	}
	and := new(Uint).And(x, y)
	if and.Bool() {
		t.Errorf("1024&32 = %s, want 0", and)
	}
	xor := new(Uint).Xor(x, x)
	if xor.Bool() {
		t.Errorf("x^x = %s, want 0", xor)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "9", "10", "99999999999999999999999999999999999999",
		"123456789012345678901234567890",
	}
	for _, v := range values {
		u := mustUint(t, v)
		if u.String() != v {
			t.Errorf("round trip %q: got %q", v, u.String())
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	tests := []float64{0, 1, 2, 1024, 1e10, 1.8446744073709552e19}
	for _, f := range tests {
		u, err := new(Uint).SetFloat64(f)
		if err != nil {
			t.Fatalf("SetFloat64(%v): %v", f, err)
		}
		got := u.Float64()
		if math.Abs(got-f) > f*1e-9+1 {
			t.Errorf("Float64 round trip for %v: got %v", f, got)
		}
	}
}

func TestSetFloat64Rejects(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1}
	for _, f := range bad {
		if _, err := new(Uint).SetFloat64(f); !errors.Is(err, bigerr.ErrConversion) {
			t.Errorf("SetFloat64(%v) error = %v, want bigerr.ErrConversion", f, err)
		}
	}
}

func TestFormat(t *testing.T) {
	x := mustUint(t, "255")
	tests := []struct {
		format, want string
	}{
		{"%d", "255"},
		{"%b", "11111111"},
		{"%#b", "0b11111111"},
		{"%o", "377"},
		{"%#o", "0377"},
		{"%x", "ff"},
		{"%#x", "0xff"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, x)
		if got != tt.want {
			t.Errorf("Sprintf(%q, 255) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestExp(t *testing.T) {
	tests := []struct {
		base, exp, want string
	}{
		{"2", "10", "1024"},
		{"0", "0", "1"},
		{"5", "0", "1"},
		{"2", "128", "340282366920938463463374607431768211456"},
	}
	for _, tt := range tests {
		base, exp := mustUint(t, tt.base), mustUint(t, tt.exp)
		got := new(Uint).Exp(base, exp)
		if got.String() != tt.want {
			t.Errorf("%s**%s = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestQuoFloat64(t *testing.T) {
	tests := []struct {
		x, y string
		want float64
	}{
		{"1", "2", 0.5},
		{"10", "4", 2.5},
		{"0", "5", 0},
		{"100", "1", 100},
	}
	for _, tt := range tests {
		x, y := mustUint(t, tt.x), mustUint(t, tt.y)
		got, err := x.QuoFloat64(y)
		if err != nil {
			t.Fatalf("QuoFloat64(%s,%s): %v", tt.x, tt.y, err)
		}
		if got != tt.want {
			t.Errorf("%s/%s = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestQuoFloat64AgreesWithNativeDivision(t *testing.T) {
	x := mustUint(t, "123456789012345678901234567890")
	y := mustUint(t, "987654321098765")
	got, err := x.QuoFloat64(y)
	if err != nil {
		t.Fatalf("QuoFloat64: %v", err)
	}
	want := x.Float64() / y.Float64() // both operands fit float64's range here, so this is also accurate
	if math.Abs(got-want) > want*1e-9 {
		t.Errorf("QuoFloat64 = %v, want approximately %v", got, want)
	}
}

func TestQuoFloat64WideOperandsDontOverflow(t *testing.T) {
	// x has roughly 2000 bits: far beyond float64's exponent range, so
	// x.Float64() alone would already be +Inf. x/y stays representable.
	x := new(Uint).Exp(mustUint(t, "2"), mustUint(t, "2000"))
	y := new(Uint).Exp(mustUint(t, "2"), mustUint(t, "1999"))
	got, err := x.QuoFloat64(y)
	if err != nil {
		t.Fatalf("QuoFloat64: %v", err)
	}
	if got != 2 {
		t.Errorf("2**2000 / 2**1999 = %v, want 2", got)
	}
}

func TestQuoFloat64ByZero(t *testing.T) {
	x, y := mustUint(t, "5"), mustUint(t, "0")
	if _, err := x.QuoFloat64(y); !errors.Is(err, bigerr.ErrDomain) {
		t.Errorf("QuoFloat64 by zero error = %v, want bigerr.ErrDomain", err)
	}
}

func TestLenConvention(t *testing.T) {
	if got := new(Uint).Len(); got != 1 {
		t.Errorf("zero value Len() = %d, want 1", got)
	}
}

func TestHashConsistentWithCmp(t *testing.T) {
	a := mustUint(t, "123456789012345678901234567890")
	b := mustUint(t, "123456789012345678901234567890")
	if a.Cmp(b) != 0 {
		t.Fatalf("test fixture bug: a != b")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal values hashed differently: %d != %d", a.Hash(), b.Hash())
	}
}
