package biguint

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bigerr"
	"github.com/oisee/bignum/pkg/limb"
)

// Uint is an arbitrary-precision unsigned integer. The zero value of Uint
// represents 0 and is ready to use without further initialization.
type Uint struct {
	m mag
}

// NewUint returns a Uint initialized to v.
func NewUint(v uint64) *Uint {
	z := new(Uint)
	return z.SetUint64(v)
}

// SetUint64 sets z to v and returns z.
func (z *Uint) SetUint64(v uint64) *Uint {
	z.m = z.m.setUint64(v)
	return z
}

// SetString parses a base-10 string into z. On a malformed string z is
// left unchanged and the returned error wraps bigerr.ErrParse.
func (z *Uint) SetString(s string) (*Uint, error) {
	m, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	z.m = m
	return z, nil
}

// SetFloat64 truncates f toward zero into z. f must be finite and
// non-negative; otherwise the returned error wraps bigerr.ErrConversion
// and z is left unchanged.
func (z *Uint) SetFloat64(f float64) (*Uint, error) {
	m, err := fromFloat64(f)
	if err != nil {
		return nil, err
	}
	z.m = m
	return z, nil
}

// Set sets z to a copy of x and returns z.
func (z *Uint) Set(x *Uint) *Uint {
	z.m = z.m.set(x.m)
	return z
}

// Add sets z = x + y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.m = z.m.add(x.m, y.m)
	return z
}

// Sub sets z = x - y and returns z. Sub reports bigerr.ErrDomain if
// x < y, since Uint has no representation for negative values.
func (z *Uint) Sub(x, y *Uint) (*Uint, error) {
	if x.m.cmp(y.m) < 0 {
		return nil, fmt.Errorf("%w: %s - %s is negative", bigerr.ErrDomain, x.String(), y.String())
	}
	z.m = z.m.sub(x.m, y.m)
	return z, nil
}

// Mul sets z = x * y and returns z.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.m = z.m.mul(x.m, y.m)
	return z
}

// QuoRem sets z = x / y, r = x % y and returns (z, r). QuoRem reports
// bigerr.ErrDomain if y is zero.
func (z *Uint) QuoRem(x, y, r *Uint) (*Uint, *Uint, error) {
	if y.m.isZero() {
		return nil, nil, fmt.Errorf("%w: division by zero", bigerr.ErrDomain)
	}
	z.m, r.m = z.m.divmod(r.m, x.m, y.m)
	return z, r, nil
}

// Exp sets z = x**y via square-and-multiply and returns z.
func (z *Uint) Exp(x, y *Uint) *Uint {
	result := NewUint(1)
	base := new(Uint).Set(x)
	n := y.m.bitLen()
	for i := 0; i < n; i++ {
		if y.m.bit(uint(i)) == 1 {
			result.Mul(result, base)
		}
		if i != n-1 {
			base.Mul(base, base)
		}
	}
	z.Set(result)
	return z
}

// QuoFloat64 returns x/y as the nearest float64, rounding to
// nearest-even. Unlike x.Float64()/y.Float64(), the division is performed
// on the magnitudes directly, so the result stays correct even when x or
// y individually overflows or underflows float64's range. Reports
// bigerr.ErrDomain if y is zero.
func (x *Uint) QuoFloat64(y *Uint) (float64, error) {
	return quoFloat64(x.m, y.m)
}

// Lsh sets z = x << n and returns z.
func (z *Uint) Lsh(x *Uint, n uint) *Uint {
	z.m = z.m.shl(x.m, n)
	return z
}

// Rsh sets z = x >> n and returns z.
func (z *Uint) Rsh(x *Uint, n uint) *Uint {
	z.m = z.m.shr(x.m, n)
	return z
}

// SetBit sets the i'th bit of x to b (0 or 1) and stores the result in z.
func (z *Uint) SetBit(x *Uint, i uint, b uint) *Uint {
	z.m = z.m.setBit(x.m, i, b)
	return z
}

// Bit returns the value of the i'th bit of x (0 or 1).
func (x *Uint) Bit(i uint) uint {
	return x.m.bit(i)
}

// And sets z = x & y and returns z.
func (z *Uint) And(x, y *Uint) *Uint {
	z.m = z.m.and(x.m, y.m)
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Uint) AndNot(x, y *Uint) *Uint {
	z.m = z.m.andNot(x.m, y.m)
	return z
}

// Or sets z = x | y and returns z.
func (z *Uint) Or(x, y *Uint) *Uint {
	z.m = z.m.or(x.m, y.m)
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Uint) Xor(x, y *Uint) *Uint {
	z.m = z.m.xor(x.m, y.m)
	return z
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *Uint) Cmp(y *Uint) int {
	return x.m.cmp(y.m)
}

// Bool reports whether x is non-zero, mirroring a truthiness test in
// the source language this library's semantics were drawn from.
func (x *Uint) Bool() bool {
	return !x.m.isZero()
}

// Len reports the external limb count: 1 for zero, otherwise the number
// of non-zero-trimmed 64-bit limbs.
func (x *Uint) Len() int {
	return x.m.length()
}

// BitLen returns the number of bits required to represent x; BitLen(0) is 0.
func (x *Uint) BitLen() int {
	return x.m.bitLen()
}

// Uint64 returns the low 64 bits of x, truncating silently like a native
// narrowing conversion.
func (x *Uint) Uint64() uint64 {
	if len(x.m) == 0 {
		return 0
	}
	return uint64(x.m[0])
}

// Float64 returns the nearest float64 to x, rounding to nearest-even, or
// +Inf if x exceeds float64's range.
func (x *Uint) Float64() float64 {
	return x.m.float64()
}

// Hash returns a hash of x's value consistent with Cmp: equal values
// under Cmp always hash equal. It folds limbs with a multiplicative mix
// so permutations and magnitude both affect the result.
func (x *Uint) Hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a offset basis
	const prime uint64 = 1099511628211
	for _, w := range x.m {
		h ^= uint64(w)
		h *= prime
	}
	return h
}

// String renders x in base 10.
func (x *Uint) String() string {
	return x.m.decimalString()
}

// Format implements fmt.Formatter, supporting %d, %b, %o, and %x (with
// %#x / %#o producing the conventional 0x / 0 prefixes), alongside the
// usual %v and %s.
func (x *Uint) Format(f fmt.State, verb rune) {
	formatMag(f, verb, x.m)
}

// Bits returns a copy of x's little-endian 64-bit limbs. The result is
// empty for zero. Mirrors math/big's Int.Bits as the escape hatch
// between the library's internal limb layout and a caller (or
// serializer) that wants direct access to it.
func (x *Uint) Bits() []uint64 {
	out := make([]uint64, len(x.m))
	for i, w := range x.m {
		out[i] = uint64(w)
	}
	return out
}

// SetBits sets z from a little-endian slice of 64-bit limbs, trims any
// high-order zero limbs, and returns z.
func (z *Uint) SetBits(words []uint64) *Uint {
	m := make(mag, len(words))
	for i, w := range words {
		m[i] = limb.Word(w)
	}
	z.m = m.normalize()
	return z
}
