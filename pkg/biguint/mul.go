package biguint

import "github.com/oisee/bignum/pkg/limb"

// karatsubaThreshold is the limb-count crossover between schoolbook and
// Karatsuba multiplication. Benchmarked for the reference 64-bit limb;
// implementers targeting other architectures should retune it. Correctness
// does not depend on the exact value.
var karatsubaThreshold = 40

// SetKaratsubaThreshold overrides the schoolbook/Karatsuba crossover point
// (in limbs of the smaller operand). Intended for benchmarking; not safe
// for concurrent use with in-flight multiplications.
func SetKaratsubaThreshold(limbs int) {
	if limbs > 0 {
		karatsubaThreshold = limbs
	}
}

// mul sets z = x*y and returns z. Dispatches to schoolbook or Karatsuba
// based on the size of the smaller operand.
func (z mag) mul(x, y mag) mag {
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	m := len(x)
	if len(y) < m {
		m = len(y)
	}
	if m <= karatsubaThreshold {
		return z.mulSchoolbook(x, y)
	}
	return karatsuba(x, y)
}

// mulSchoolbook computes x*y with the classic O(nm) double-limb
// accumulator per output limb.
func (z mag) mulSchoolbook(x, y mag) mag {
	if alias(z, x) || alias(z, y) {
		z = nil // z overlaps an operand; can't reuse its buffer as scratch
	}
	z = z.makeZeroed(len(x) + len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry limb.Word
		for j, yj := range y {
			lo, hi := limb.WideMul(xi, yj)
			var c0, c1 limb.Word
			lo, c0 = limb.AddWithCarry(z[i+j], lo, 0)
			lo, c1 = limb.AddWithCarry(lo, carry, 0)
			z[i+j] = lo
			carry = hi + c0 + c1
		}
		z[i+len(y)], _ = limb.AddWithCarry(z[i+len(y)], carry, 0)
	}
	return z.normalize()
}

// karatsuba multiplies x and y via the divide-and-conquer identity
//
//	x = hi_x*B^k + lo_x,  y = hi_y*B^k + lo_y
//	z0 = lo_x*lo_y
//	z2 = hi_x*hi_y
//	z1 = (lo_x+hi_x)*(lo_y+hi_y) - z0 - z2
//	x*y = z2*B^2k + z1*B^k + z0
//
// recursing until an operand drops to or below karatsubaThreshold limbs.
func karatsuba(x, y mag) mag {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	k := n / 2

	xlo, xhi := splitAt(x, k)
	ylo, yhi := splitAt(y, k)

	var z0, z1, z2 mag
	z0 = z0.mul(xlo, ylo)
	z2 = z2.mul(xhi, yhi)

	var sx, sy mag
	sx = sx.add(xlo, xhi)
	sy = sy.add(ylo, yhi)
	z1 = z1.mul(sx, sy)

	// z1 -= z0 + z2 (z1 is always >= z0+z2 by construction: (a+b)(c+d) =
	// ac+ad+bc+bd >= ac+bd for non-negative limbs).
	var sum mag
	sum = sum.add(z0, z2)
	z1 = z1.sub(z1, sum)

	// x*y has at most len(x)+len(y) limbs; the decomposition below sums to
	// exactly x*y, so it fits without truncation. A couple of spare limbs
	// absorb any carry propagation past the nominal bound.
	var result mag
	result = result.makeZeroed(len(x) + len(y) + 2)
	result = addShifted(result, z0, 0)
	result = addShifted(result, z1, k)
	result = addShifted(result, z2, 2*k)
	return result.normalize()
}

// splitAt splits x into (lo, hi) at limb index k: x == hi*B^k + lo.
func splitAt(x mag, k int) (lo, hi mag) {
	if k >= len(x) {
		return x, nil
	}
	return x[:k], x[k:]
}

// addShifted adds src, shifted left by shift limbs, into dst in place.
// dst must already be large enough (callers size it to the final product
// length up front).
func addShifted(dst, src mag, shift int) mag {
	var c limb.Word
	i := 0
	for ; i < len(src); i++ {
		dst[shift+i], c = limb.AddWithCarry(dst[shift+i], src[i], c)
	}
	for c != 0 {
		dst[shift+i], c = limb.AddWithCarry(dst[shift+i], 0, c)
		i++
	}
	return dst
}
