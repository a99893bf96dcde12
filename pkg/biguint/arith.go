package biguint

import "github.com/oisee/bignum/pkg/limb"

// add sets z = x+y for magnitudes and returns z, reusing z's buffer.
// Ripple-add limb by limb, appending a new most-significant limb if a
// carry survives past both operands.
func (z mag) add(x, y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)
	z = z.make(len(x) + 1)
	var c limb.Word
	i := 0
	for ; i < len(y); i++ {
		z[i], c = limb.AddWithCarry(x[i], y[i], c)
	}
	for ; i < len(x); i++ {
		z[i], c = limb.AddWithCarry(x[i], 0, c)
	}
	z[i] = c
	return z.normalize()
}

// sub sets z = x-y for magnitudes and returns z. Precondition: x >= y
// (callers enforce this; BigInt's signed Sub picks operand order via cmp
// before calling). Violating the precondition produces a wrapped
// two's-complement-looking result, which is why the exported Uint.Sub
// checks x >= y before calling it.
func (z mag) sub(x, y mag) mag {
	z = z.make(len(x))
	var b limb.Word
	i := 0
	for ; i < len(y); i++ {
		z[i], b = limb.SubWithBorrow(x[i], y[i], b)
	}
	for ; i < len(x); i++ {
		z[i], b = limb.SubWithBorrow(x[i], 0, b)
	}
	// b must be 0 here under the precondition x >= y.
	return z.normalize()
}
