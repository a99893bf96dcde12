// Package biguint implements BigUint: an arbitrary-precision unsigned
// integer built from a little-endian vector of 64-bit limbs.
package biguint

import "github.com/oisee/bignum/pkg/limb"

// mag is the little-endian limb vector underlying a Uint. Index 0 is the
// least significant limb. Normalized form: either empty (representing
// zero) or its most-significant limb is non-zero. Free functions on mag
// mirror the "return a value, optionally reusing the receiver's backing
// array as scratch" convention: every mag-returning function may grow or
// shrink its first (destination) argument's backing array, but never
// mutates operands in a way visible to the caller unless the destination
// and an operand alias on purpose.
type mag []limb.Word

// normalize trims trailing (high-order) zero limbs so the invariant holds.
func (z mag) normalize() mag {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// make returns a mag of length n backed by z's array when it has enough
// capacity, or a freshly allocated one otherwise. Contents are not
// zeroed beyond what growslice already guarantees for freshly allocated
// memory; callers that need zeroed limbs use makeZeroed.
func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4 // small headroom so repeated compound ops don't reallocate every step
	return make(mag, n, n+extra)
}

func (z mag) makeZeroed(n int) mag {
	r := z.make(n)
	for i := range r {
		r[i] = 0
	}
	return r
}

// set copies x into z (reusing z's buffer) and returns the result.
func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z mag) setWord(x limb.Word) mag {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z mag) setUint64(x uint64) mag {
	return z.setWord(limb.Word(x))
}

// alias reports whether x and y share a backing array, i.e. writing
// through one could clobber data still needed from the other. Mirrors
// math/big's own alias() check used before reusing a destination buffer.
func alias(x, y mag) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// isZero reports whether the normalized magnitude is zero.
func (x mag) isZero() bool {
	return len(x) == 0
}

// cmp compares x and y as unsigned magnitudes: -1, 0, +1.
func (x mag) cmp(y mag) int {
	switch {
	case len(x) != len(y):
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bitLen returns the number of bits required to represent x; bitLen of
// zero is 0.
func (x mag) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limb.Bits + int(limb.Len(x[len(x)-1]))
}

// length implements the spec's external len() convention: 1 for zero,
// otherwise the limb count.
func (x mag) length() int {
	if len(x) == 0 {
		return 1
	}
	return len(x)
}

// bit returns the value of the i'th bit (0 or 1), i >= 0.
func (x mag) bit(i uint) uint {
	limbIdx := i / limb.Bits
	if int(limbIdx) >= len(x) {
		return 0
	}
	return uint(x[limbIdx]>>(i%limb.Bits)) & 1
}

// trailingZeroBits returns the number of trailing zero bits across the
// whole magnitude; the result for a zero magnitude is 0 (unused in this
// library since it never arises on a precondition-checked path).
func (x mag) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*limb.Bits + limb.TrailingZeros(w)
		}
	}
	return 0
}
