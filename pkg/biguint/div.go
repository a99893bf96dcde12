package biguint

import "github.com/oisee/bignum/pkg/limb"

// divmod computes q = u/v, rdst = u%v (Knuth's Algorithm D, TAOCP vol. 2
// §4.3.1) and returns (q, r). v must be non-zero and normalized; callers
// above this package (biguint.Uint, bigint.Int) turn a zero divisor into
// bigerr.ErrDomain before ever reaching here.
func (q mag) divmod(rdst mag, u, v mag) (mag, mag) {
	if len(v) == 0 {
		panic("biguint: division by zero")
	}
	if len(v) == 1 {
		return q.divmodWord(rdst, u, v[0])
	}
	if u.cmp(v) < 0 {
		return q[:0], rdst.set(u)
	}

	n := len(v)
	m := len(u) - n // m >= 0 here, since u >= v and len(v) == n implies len(u) >= n

	s := limb.LeadingZeros(v[n-1])
	vn := shiftLeftFixed(v, s, n)
	un := shiftLeftFixed(u, s, n+m+1)

	qout := q.make(m + 1)
	for j := m; j >= 0; j-- {
		qhat, rhat := estimateQuotientDigit(un, vn, j, n)

		borrow := mulSub(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			qhat--
			addBack(un[j:j+n+1], vn)
		}
		_ = rhat
		qout[j] = qhat
	}

	r := rdst.shr(un[:n], s)
	return qout.normalize(), r
}

// divmodWord is the single-limb fast path: repeated div_wide across u's
// limbs from most to least significant, carrying the remainder forward.
func (q mag) divmodWord(rdst mag, u mag, d limb.Word) (mag, mag) {
	qout := q.make(len(u))
	var rem limb.Word
	for i := len(u) - 1; i >= 0; i-- {
		qout[i], rem = limb.DivWide(rem, u[i], d)
	}
	return qout.normalize(), rdst.setWord(rem)
}

// estimateQuotientDigit computes the trial digit q̂ for position j against
// the top two limbs of v, then refines it (at most twice) per Knuth's
// algorithm so the subsequent multiply-subtract never needs more than one
// add-back correction.
func estimateQuotientDigit(un, vn mag, j, n int) (qhat, rhat limb.Word) {
	numHi, numLo := un[j+n], un[j+n-1]
	var overflowed bool
	if numHi == vn[n-1] {
		qhat = ^limb.Word(0)
		var c limb.Word
		rhat, c = limb.AddWithCarry(numLo, vn[n-1], 0)
		overflowed = c != 0
	} else {
		qhat, rhat = limb.DivWide(numHi, numLo, vn[n-1])
	}

	for !overflowed {
		lo2, hi2 := limb.WideMul(qhat, vn[n-2])
		if hi2 < rhat || (hi2 == rhat && lo2 <= un[j+n-2]) {
			break
		}
		qhat--
		var c limb.Word
		rhat, c = limb.AddWithCarry(rhat, vn[n-1], 0)
		overflowed = c != 0
	}
	return qhat, rhat
}

// mulSub subtracts qhat*v from dst in place (dst has n+1 limbs for v's n
// limbs) and returns the final borrow: 1 means qhat overshot by exactly
// one and the caller must decrement qhat and add v back once.
func mulSub(dst, v mag, qhat limb.Word) limb.Word {
	var mulCarry, borrow limb.Word
	for i := 0; i < len(v); i++ {
		lo, hi := limb.WideMul(qhat, v[i])
		lo, c := limb.AddWithCarry(lo, mulCarry, 0)
		mulCarry = hi + c
		dst[i], borrow = limb.SubWithBorrow(dst[i], lo, borrow)
	}
	dst[len(v)], borrow = limb.SubWithBorrow(dst[len(v)], mulCarry, borrow)
	return borrow
}

// addBack adds v back into dst (n+1 limbs), undoing one mulSub
// overcorrection. The final carry is discarded: it exactly cancels the
// borrow mulSub returned, by construction of Knuth's algorithm.
func addBack(dst, v mag) {
	var carry limb.Word
	for i := 0; i < len(v); i++ {
		dst[i], carry = limb.AddWithCarry(dst[i], v[i], carry)
	}
	dst[len(v)], _ = limb.AddWithCarry(dst[len(v)], 0, carry)
}

// shiftLeftFixed shifts x left by s bits (0 <= s < limb.Bits) into a
// freshly allocated buffer of exactly outLen limbs, zero-extended. Used
// only for Knuth D's normalization step, where the destination length is
// dictated by the algorithm rather than the natural shl growth rule.
func shiftLeftFixed(x mag, s uint, outLen int) mag {
	out := make(mag, outLen)
	if s == 0 {
		copy(out, x)
		return out
	}
	var carry limb.Word
	for i := 0; i < len(x) && i < outLen; i++ {
		out[i] = (x[i] << s) | carry
		carry = x[i] >> (limb.Bits - s)
	}
	if len(x) < outLen {
		out[len(x)] = carry
	}
	return out
}
