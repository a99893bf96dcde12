package biguint

import "github.com/oisee/bignum/pkg/limb"

// shl sets z = x << n and returns z. n splits into a whole-limb part w and
// a sub-limb bit part b; limb i of the result is (x[i]<<b) with the high b
// bits of x[i-1] OR'd in. Each output limb is a pure function of at most
// two input limbs (no carry state threaded between iterations), so the
// loop can run high-to-low even when z and x share a backing array: every
// write lands at index i+w, strictly above every index a later (lower i)
// step still needs to read.
func (z mag) shl(x mag, n uint) mag {
	if len(x) == 0 || n == 0 {
		return z.set(x)
	}
	w := int(n / limb.Bits)
	b := n % limb.Bits

	out := z.make(len(x) + w + 1)
	top := x[len(x)-1] >> (limb.Bits - b) // 0 when b == 0, per Go's shift-by->=width-is-0 rule
	for i := len(x) - 1; i >= 0; i-- {
		hi := x[i] << b
		var lo limb.Word
		if i > 0 {
			lo = x[i-1] >> (limb.Bits - b)
		}
		out[i+w] = hi | lo
	}
	out[len(x)+w] = top
	for i := 0; i < w; i++ {
		out[i] = 0
	}
	return out.normalize()
}

// shr sets z = x >> n and returns z. Symmetric to shl: limb i of the
// result depends only on src[i] and src[i+1] (src being x with its low w
// whole limbs dropped), so ascending order is alias-safe.
func (z mag) shr(x mag, n uint) mag {
	w := n / limb.Bits
	b := n % limb.Bits

	if w >= uint(len(x)) {
		return z[:0]
	}
	src := x[w:]
	out := z.make(len(src))
	for i := 0; i < len(src); i++ {
		lo := src[i] >> b
		var hi limb.Word
		if i+1 < len(src) {
			hi = src[i+1] << (limb.Bits - b) // 0 when b == 0
		}
		out[i] = lo | hi
	}
	return out.normalize()
}

// setBit sets z to x with bit i set to b (0 or 1) and returns z.
func (z mag) setBit(x mag, i uint, b uint) mag {
	limbIdx := int(i / limb.Bits)
	n := len(x)
	if limbIdx >= n {
		n = limbIdx + 1
	}
	out := z.make(n)
	copy(out, x) // copy is memmove-safe even when out and x share a backing array
	for j := len(x); j < n; j++ {
		out[j] = 0
	}
	mask := limb.Word(1) << (i % limb.Bits)
	if b != 0 {
		out[limbIdx] |= mask
	} else {
		out[limbIdx] &^= mask
	}
	return out.normalize()
}
