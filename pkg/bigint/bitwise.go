package bigint

import "github.com/oisee/bignum/pkg/biguint"

// Bitwise operators on Int behave as if the value were stored in
// infinite-width two's complement: a non-negative x has its magnitude's
// bits extended with 0s, a negative x is represented as ~(|x|-1)
// extended with 1s. Everything here is synthesized from the
// sign-magnitude storage on demand; nothing is ever actually stored in
// two's complement form.

// signBit returns the bit (0 or 1) of x's infinite two's-complement
// extension at position i. dminus1 must be |x|-1, precomputed once by
// the caller when x.neg (ignored otherwise).
func signBit(neg bool, abs, dminus1 *biguint.Uint, i uint) uint {
	if !neg {
		return abs.Bit(i)
	}
	return 1 - dminus1.Bit(i)
}

// twosComplementOperands prepares the (neg, abs, abs-1) triple a bitwise
// combiner needs for one operand.
func twosComplementOperands(x *Int) (neg bool, abs, dminus1 *biguint.Uint) {
	if !x.neg {
		return false, &x.abs, nil
	}
	one := biguint.NewUint(1)
	d := new(biguint.Uint)
	if _, err := d.Sub(&x.abs, one); err != nil {
		panic("bigint: |x| < 1 for a negative Int: " + err.Error())
	}
	return true, &x.abs, d
}

// combine folds op across x and y's infinite two's-complement bit
// streams, word by word from the most significant down, and decodes the
// result back to sign-magnitude. resultNeg is op applied to x and y's
// sign-extension bits (constant 0 or 1 beyond each operand's own width).
func combine(x, y *Int, op func(a, b uint) uint, resultNeg bool) *biguint.Uint {
	xNeg, xAbs, xD := twosComplementOperands(x)
	yNeg, yAbs, yD := twosComplementOperands(y)

	n := xAbs.BitLen()
	if yAbs.BitLen() > n {
		n = yAbs.BitLen()
	}
	n++ // guard bit: lets the sign settle before truncation below

	nWords := (n + 63) / 64

	result := biguint.NewUint(0)
	word := new(biguint.Uint)
	for w := nWords - 1; w >= 0; w-- {
		var bits uint64
		for b := 63; b >= 0; b-- {
			i := uint(w*64 + b)
			xb := signBit(xNeg, xAbs, xD, i)
			yb := signBit(yNeg, yAbs, yD, i)
			v := op(xb, yb)
			if resultNeg {
				v = 1 - v // bits stored here are of (|result|-1), i.e. ~result
			}
			bits = bits<<1 | uint64(v)
		}
		result.Lsh(result, 64)
		word.SetUint64(bits)
		result.Or(result, word)
	}

	if resultNeg {
		one := biguint.NewUint(1)
		result.Add(result, one)
	}
	return result
}

// And sets z = x & y (two's-complement semantics) and returns z.
func (z *Int) And(x, y *Int) *Int {
	resultNeg := x.neg && y.neg
	z.abs = *combine(x, y, func(a, b uint) uint { return a & b }, resultNeg)
	z.neg = resultNeg
	return z.normalizeSign()
}

// Or sets z = x | y (two's-complement semantics) and returns z.
func (z *Int) Or(x, y *Int) *Int {
	resultNeg := x.neg || y.neg
	z.abs = *combine(x, y, func(a, b uint) uint { return a | b }, resultNeg)
	z.neg = resultNeg
	return z.normalizeSign()
}

// Xor sets z = x ^ y (two's-complement semantics) and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	resultNeg := x.neg != y.neg
	z.abs = *combine(x, y, func(a, b uint) uint { return a ^ b }, resultNeg)
	z.neg = resultNeg
	return z.normalizeSign()
}

// Not sets z = ^x, i.e. -(x+1), and returns z.
func (z *Int) Not(x *Int) *Int {
	sum := new(Int).Add(x, NewInt(1))
	return z.Neg(sum)
}

// Lsh sets z = x << n (an exact multiplication by 2^n, sign unchanged)
// and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs.Lsh(&x.abs, n)
	z.neg = x.neg
	return z.normalizeSign()
}

// Rsh sets z = x >> n and returns z. For non-negative x this is the
// magnitude's logical right shift; for negative x it floors toward
// negative infinity, matching two's-complement arithmetic shift (e.g.
// -1 >> n == -1 for any n >= 0).
func (z *Int) Rsh(x *Int, n uint) *Int {
	if !x.neg {
		z.abs.Rsh(&x.abs, n)
		z.neg = false
		return z.normalizeSign()
	}
	// -(m) >> n == -((m-1) >> n) - 1, i.e. floor division by 2^n.
	one := biguint.NewUint(1)
	d := new(biguint.Uint)
	if _, err := d.Sub(&x.abs, one); err != nil {
		panic("bigint: |x| < 1 for a negative Int: " + err.Error())
	}
	d.Rsh(d, n)
	z.abs.Add(d, one)
	z.neg = true
	return z.normalizeSign()
}

// Bit returns the value (0 or 1) of x's i'th bit under the infinite
// two's-complement interpretation.
func (x *Int) Bit(i uint) uint {
	neg, abs, d := twosComplementOperands(x)
	return signBit(neg, abs, d, i)
}
