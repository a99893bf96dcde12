package bigint

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bigerr"
	"github.com/oisee/bignum/pkg/biguint"
)

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		z.abs.Add(&x.abs, &y.abs)
		z.neg = x.neg
		return z.normalizeSign()
	}
	// Opposite signs: subtract the smaller magnitude from the larger and
	// take the sign of whichever magnitude won.
	if x.abs.Cmp(&y.abs) >= 0 {
		mustSub(&z.abs, &x.abs, &y.abs)
		z.neg = x.neg
	} else {
		mustSub(&z.abs, &y.abs, &x.abs)
		z.neg = y.neg
	}
	return z.normalizeSign()
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	negY := Int{neg: !y.neg, abs: y.abs}
	return z.Add(x, negY.normalizeSign())
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.abs.Mul(&x.abs, &y.abs)
	z.neg = x.neg != y.neg
	return z.normalizeSign()
}

// QuoRem sets z = x / y truncated toward zero, r = x - z*y (r takes x's
// sign, matching Go's native / and % on integers). Reports
// bigerr.ErrDomain if y is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if !y.abs.Bool() {
		return nil, nil, fmt.Errorf("%w: division by zero", bigerr.ErrDomain)
	}
	if _, _, err := z.abs.QuoRem(&x.abs, &y.abs, &r.abs); err != nil {
		return nil, nil, err
	}
	z.neg = x.neg != y.neg
	r.neg = x.neg
	z.normalizeSign()
	r.normalizeSign()
	return z, r, nil
}

// DivMod sets z = floor(x/y), m = x - z*y. m always takes y's sign (or
// is zero), so 0 <= m < |y| when y > 0 and -|y| < m <= 0 when y < 0.
// Reports bigerr.ErrDomain if y is zero.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int, error) {
	var q, r Int
	if _, _, err := q.QuoRem(x, y, &r); err != nil {
		return nil, nil, err
	}
	if r.Bool() && r.neg != y.neg {
		q.Sub(&q, NewInt(1))
		r.Add(&r, y)
	}
	z.Set(&q)
	m.Set(&r)
	return z, m, nil
}

// Exp sets z = x**yExp via square-and-multiply and returns z. yExp must
// be non-negative; a negative exponent reports bigerr.ErrDomain since
// Int has no rational representation for the fractional result. Modular
// exponentiation is intentionally not provided.
func (z *Int) Exp(x, yExp *Int) (*Int, error) {
	if yExp.neg {
		return nil, fmt.Errorf("%w: negative exponent %s", bigerr.ErrDomain, yExp.String())
	}
	result := NewInt(1)
	base := new(Int).Set(x)
	n := yExp.abs.BitLen()
	for i := 0; i < n; i++ {
		if yExp.abs.Bit(uint(i)) == 1 {
			result.Mul(result, base)
		}
		if i != n-1 {
			base.Mul(base, base)
		}
	}
	z.Set(result)
	return z, nil
}

// mustSub computes z = x - y for x >= y, panicking if that invariant is
// violated; all call sites here have already established it.
func mustSub(z, x, y *biguint.Uint) {
	if _, err := z.Sub(x, y); err != nil {
		panic("bigint: subtraction invariant violated: " + err.Error())
	}
}
