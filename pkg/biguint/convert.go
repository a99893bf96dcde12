package biguint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oisee/bignum/pkg/bigerr"
	"github.com/oisee/bignum/pkg/limb"
)

// decimalChunkDigits is the largest digit count whose 10^n still fits a
// single 64-bit limb (10^19 < 2^64 < 10^20); chunking the string at this
// width turns the O(n) decimal/binary conversion into O(n/19) limb-level
// multiply-adds instead of one per digit.
const decimalChunkDigits = 19

var decimalPow10 = [decimalChunkDigits + 1]limb.Word{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// mulAddWord computes x*m + a for a single-limb multiplier m and addend a,
// returning a freshly normalized magnitude.
func mulAddWord(x mag, m, a limb.Word) mag {
	z := make(mag, len(x)+1)
	carry := a
	for i, xi := range x {
		lo, hi := limb.WideMul(xi, m)
		var c limb.Word
		lo, c = limb.AddWithCarry(lo, carry, 0)
		carry = hi + c
		z[i] = lo
	}
	z[len(x)] = carry
	return mag(z).normalize()
}

// parseDecimal converts a base-10 string (no sign, no separators) into a
// magnitude, chunking from the right in groups of decimalChunkDigits.
func parseDecimal(s string) (mag, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty decimal string", bigerr.ErrParse)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: non-digit %q in decimal string", bigerr.ErrParse, r)
		}
	}

	var acc mag
	for len(s) > 0 {
		chunkLen := len(s) % decimalChunkDigits
		if chunkLen == 0 {
			chunkLen = decimalChunkDigits
		}
		chunk := s[:chunkLen]
		s = s[chunkLen:]
		val, err := strconv.ParseUint(chunk, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bigerr.ErrParse, err)
		}
		acc = mulAddWord(acc, decimalPow10[chunkLen], limb.Word(val))
	}
	return acc, nil
}

// decimalString renders x in base 10 by repeated division by 10^19,
// collecting 19-digit groups least-significant first and printing them
// most-significant first.
func (x mag) decimalString() string {
	if x.isZero() {
		return "0"
	}

	var groups []uint64
	cur := x
	pow := decimalPow10[decimalChunkDigits]
	for !cur.isZero() {
		q, r := mag(nil).divmodWord(nil, cur, pow)
		var word limb.Word
		if len(r) > 0 {
			word = r[0]
		}
		groups = append(groups, uint64(word))
		cur = q
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(groups[len(groups)-1], 10))
	for i := len(groups) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*d", decimalChunkDigits, groups[i])
	}
	return sb.String()
}

// fromFloat64 truncates a non-negative finite float toward zero into a
// magnitude. Negative, NaN, or infinite inputs have no BigUint
// representation.
func fromFloat64(f float64) (mag, error) {
	if math.IsNaN(f) {
		return nil, fmt.Errorf("%w: NaN has no BigUint representation", bigerr.ErrConversion)
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: infinite float has no BigUint representation", bigerr.ErrConversion)
	}
	if f < 0 {
		return nil, fmt.Errorf("%w: negative float %v has no BigUint representation", bigerr.ErrConversion, f)
	}
	if f < 1 {
		return nil, nil
	}

	frac, exp := math.Frexp(f) // f == frac * 2^exp, 0.5 <= frac < 1
	mantissa := uint64(frac * (1 << 53))
	shift := exp - 53

	m := mag(nil).setUint64(mantissa)
	if shift >= 0 {
		return m.shl(m, uint(shift)), nil
	}
	return m.shr(m, uint(-shift)), nil
}

// float64 converts x to the nearest float64, rounding to nearest-even on
// precision loss, per IEEE 754 double semantics. Magnitudes requiring an
// exponent beyond float64's range convert to +Inf.
func (x mag) float64() float64 {
	if x.isZero() {
		return 0
	}
	bl := x.bitLen()
	if bl <= 53 {
		return float64(x.asUint64())
	}
	if bl > 1024 {
		return math.Inf(1)
	}

	shift := uint(bl - 54)
	top := mag(nil).shr(x, shift) // top 54 significant bits, MSB at bit 53
	topWord := top.asUint64()
	roundBit := topWord & 1
	mantissa := topWord >> 1 // 53-bit mantissa, implicit leading 1 included

	sticky := x.hasSetBitBelow(shift)

	if roundBit != 0 && (sticky || mantissa&1 != 0) {
		mantissa++
		if mantissa == 1<<53 {
			mantissa >>= 1
			bl++
			if bl > 1024 {
				return math.Inf(1)
			}
		}
	}

	exponent := bl - 53
	return math.Ldexp(float64(mantissa), exponent)
}

// quoFloat64 computes the correctly-rounded float64 nearest to x/y by
// dividing the magnitudes directly, rather than converting each operand to
// float64 first (which would lose precision, or overflow to Inf/underflow
// to 0, long before the true quotient does for operands outside a
// double's own range). It mirrors the classic fixed-point division
// technique: shift the dividend so the integer quotient carries a handful
// of guard bits past float64's 53-bit mantissa, fold any division
// remainder into the quotient's low bit as a sticky flag, then let the
// existing round-to-nearest-even mag.float64 conversion do the rounding.
func quoFloat64(x, y mag) (float64, error) {
	if y.isZero() {
		return 0, fmt.Errorf("%w: division by zero", bigerr.ErrDomain)
	}
	if x.isZero() {
		return 0, nil
	}

	const guardBits = 64
	shift := guardBits + y.bitLen() - x.bitLen()

	var num, den mag
	if shift >= 0 {
		num = mag(nil).shl(x, uint(shift))
		den = y
	} else {
		num = x
		den = mag(nil).shl(y, uint(-shift))
	}

	q, r := mag(nil).divmod(nil, num, den)
	if !r.isZero() {
		q = q.setBit(q, 0, 1)
	}
	return math.Ldexp(q.float64(), -shift), nil
}

// asUint64 returns x's value, assuming the caller has already established
// it fits in 64 bits.
func (x mag) asUint64() uint64 {
	if len(x) == 0 {
		return 0
	}
	return uint64(x[0])
}

// hasSetBitBelow reports whether any of x's low `n` bits is set.
func (x mag) hasSetBitBelow(n uint) bool {
	return x.trailingZeroBits() < n && !x.isZero()
}
