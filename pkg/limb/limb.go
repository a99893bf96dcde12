// Package limb implements the word-level primitives the big-integer engine
// is built from: a 64-bit limb type and the add/sub/mul/div operations that
// need double-width intermediates to carry correctly.
package limb

import "math/bits"

// Word is the fixed-width machine word used as a digit of the big-integer
// base B = 2^64.
type Word = uint64

// Bits is the width of a Word in bits.
const Bits = 64

// AddWithCarry returns sum = a + b + cin mod B and cout = 1 iff the true
// sum overflowed a Word. cin and cout are always 0 or 1.
func AddWithCarry(a, b, cin Word) (sum, cout Word) {
	s, c := bits.Add64(a, b, cin)
	return s, c
}

// SubWithBorrow returns diff = a - b - bin mod B and bout = 1 iff a < b +
// bin. bin and bout are always 0 or 1.
func SubWithBorrow(a, b, bin Word) (diff, bout Word) {
	d, brw := bits.Sub64(a, b, bin)
	return d, brw
}

// WideMul returns the full 128-bit product of a and b as (lo, hi), such
// that lo + hi*B == a*b.
func WideMul(a, b Word) (lo, hi Word) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// DivWide divides the 128-bit value hi*B+lo by d and returns the quotient
// and remainder. d must be non-zero and hi < d, or the result overflows a
// Word and DivWide panics (mirrors bits.Div64's own precondition).
func DivWide(hi, lo, d Word) (q, r Word) {
	return bits.Div64(hi, lo, d)
}

// LeadingZeros returns the number of leading zero bits in w.
func LeadingZeros(w Word) uint {
	return uint(bits.LeadingZeros64(w))
}

// TrailingZeros returns the number of trailing zero bits in w. The result
// for w == 0 is Bits.
func TrailingZeros(w Word) uint {
	return uint(bits.TrailingZeros64(w))
}

// Len returns the minimum number of bits required to represent w; Len(0)
// is 0.
func Len(w Word) uint {
	return uint(bits.Len64(w))
}

// OnesCount returns the number of one bits ("population count") in w.
func OnesCount(w Word) int {
	return bits.OnesCount64(w)
}
