// Package bigint implements Int: an arbitrary-precision signed integer
// stored as a sign flag plus a biguint.Uint magnitude. Bitwise operators
// behave as though the value were stored in infinite-width two's
// complement, synthesized on demand from the sign-magnitude form.
package bigint

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bigerr"
	"github.com/oisee/bignum/pkg/biguint"
)

// Int is an arbitrary-precision signed integer. The zero value represents
// 0 and is ready to use. neg is meaningless when abs is zero: Int never
// represents a negative zero.
type Int struct {
	neg bool
	abs biguint.Uint
}

// NewInt returns an Int initialized to v.
func NewInt(v int64) *Int {
	z := new(Int)
	return z.SetInt64(v)
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	z.abs.SetUint64(u)
	z.neg = neg && z.abs.Bool()
	return z
}

// SetUint64 sets z to v (non-negative) and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	z.abs.SetUint64(v)
	z.neg = false
	return z
}

// Set sets z to a copy of x and returns z.
func (z *Int) Set(x *Int) *Int {
	z.abs.Set(&x.abs)
	z.neg = x.neg
	return z
}

// SetString parses an optionally "-"-or-"+"-prefixed base-10 string into
// z. On a malformed string z is left unchanged and the error wraps
// bigerr.ErrParse.
func (z *Int) SetString(s string) (*Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", bigerr.ErrParse)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if _, err := z.abs.SetString(s); err != nil {
		return nil, err
	}
	z.neg = neg && z.abs.Bool()
	return z, nil
}

// SetFloat64 truncates f toward zero into z. NaN or infinite f reports an
// error wrapping bigerr.ErrConversion.
func (z *Int) SetFloat64(f float64) (*Int, error) {
	neg := f < 0
	if neg {
		f = -f
	}
	if _, err := z.abs.SetFloat64(f); err != nil {
		return nil, err
	}
	z.neg = neg && z.abs.Bool()
	return z, nil
}

// normalizeSign clears neg whenever the magnitude is zero, so Int never
// represents a negative zero.
func (z *Int) normalizeSign() *Int {
	if !z.abs.Bool() {
		z.neg = false
	}
	return z
}

// Sign returns -1, 0, or +1 depending on x's sign.
func (x *Int) Sign() int {
	if !x.abs.Bool() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs.Set(&x.abs)
	z.neg = !x.neg
	return z.normalizeSign()
}

// Abs sets z = |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs.Set(&x.abs)
	z.neg = false
	return z
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return y.abs.Cmp(&x.abs) // both negative: larger magnitude sorts smaller
	default:
		return x.abs.Cmp(&y.abs)
	}
}

// Bool reports whether x is non-zero.
func (x *Int) Bool() bool {
	return x.abs.Bool()
}

// Int64 returns the low 64 bits of x as a signed value, truncating
// silently like a native narrowing conversion.
func (x *Int) Int64() int64 {
	v := int64(x.abs.Uint64())
	if x.neg {
		return -v
	}
	return v
}

// Float64 returns the nearest float64 to x.
func (x *Int) Float64() float64 {
	v := x.abs.Float64()
	if x.neg {
		return -v
	}
	return v
}

// QuoFloat64 returns x/y as the nearest float64, rounding to
// nearest-even, dividing the magnitudes directly rather than converting x
// and y to float64 first. Reports bigerr.ErrDomain if y is zero.
func (x *Int) QuoFloat64(y *Int) (float64, error) {
	v, err := x.abs.QuoFloat64(&y.abs)
	if err != nil {
		return 0, err
	}
	if x.neg != y.neg {
		return -v, nil
	}
	return v, nil
}

// Len reports the number of 64-bit limbs in x's magnitude (1 for zero),
// ignoring sign.
func (x *Int) Len() int {
	return x.abs.Len()
}

// Hash returns a hash of x's value consistent with Cmp.
func (x *Int) Hash() uint64 {
	h := x.abs.Hash()
	if x.neg {
		h ^= 0x9e3779b97f4a7c15 // fold sign in so +v and -v never collide
	}
	return h
}

// String renders x in base 10, with a leading '-' when negative.
func (x *Int) String() string {
	if x.neg {
		return "-" + x.abs.String()
	}
	return x.abs.String()
}

// Format implements fmt.Formatter, delegating digit rendering to the
// magnitude and handling only the sign prefix itself.
func (x *Int) Format(f fmt.State, verb rune) {
	if x.neg {
		fmt.Fprint(f, "-")
	}
	x.abs.Format(f, verb)
}
