package biguint

import (
	"fmt"
	"io"

	"github.com/oisee/bignum/pkg/convcatalog"
)

// formatMag implements fmt.Formatter for a magnitude against the bases
// registered in convcatalog. Power-of-two bases are rendered by
// extracting fixed-width bit groups from the least significant digit
// up; base 10 falls back to the long-division decimalString.
func formatMag(f fmt.State, verb rune, m mag) {
	base, ok := convcatalog.Lookup(verb)
	if !ok {
		switch verb {
		case 'v', 's':
			base = convcatalog.Base{Name: "decimal", Digits: "0123456789"}
		default:
			fmt.Fprintf(f, "%%!%c(biguint.Uint)", verb)
			return
		}
	}

	var body string
	if base.BitsPerUnit == 0 {
		body = m.decimalString()
	} else {
		body = formatPowerOfTwo(m, base)
	}

	if f.Flag('#') && base.Prefix != "" && body != "0" {
		body = base.Prefix + body
	}
	io.WriteString(f, body)
}

// formatPowerOfTwo renders m in a base whose radix is 2^k by slicing its
// bits into k-wide groups from the bottom up, writing each digit into the
// buffer from its end so the most significant digit comes first.
func formatPowerOfTwo(m mag, base convcatalog.Base) string {
	bl := m.bitLen()
	if bl == 0 {
		return "0"
	}
	k := base.BitsPerUnit
	nDigits := (uint(bl) + k - 1) / k

	buf := make([]byte, nDigits)
	for d := uint(0); d < nDigits; d++ {
		var v uint
		lo := d * k
		for b := uint(0); b < k; b++ {
			v |= m.bit(lo+b) << b
		}
		buf[nDigits-1-d] = base.Digit(v)
	}
	return string(buf)
}
