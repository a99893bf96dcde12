// Package convcatalog is an indexed table of the output bases BigUint and
// BigInt know how to render to (parsing is base 10 only and does not use
// this table), mirroring how an opcode
// catalog maps a mnemonic to its encoding metadata.
package convcatalog

import "fmt"

// Base describes one numeric base's textual rendering: its digit
// alphabet (also giving its radix via len(Digits)), the bits consumed
// per digit when the radix is a power of two (0 otherwise, meaning the
// base requires general long division to render), and the conventional
// prefix a formatter prepends under the '#' flag.
type Base struct {
	Name        string
	Digits      string
	BitsPerUnit uint // 0 unless radix is a power of two
	Prefix      string
}

var table = map[rune]Base{
	'b': {Name: "binary", Digits: "01", BitsPerUnit: 1, Prefix: "0b"},
	'o': {Name: "octal", Digits: "01234567", BitsPerUnit: 3, Prefix: "0"},
	'O': {Name: "octal", Digits: "01234567", BitsPerUnit: 3, Prefix: "0o"},
	'd': {Name: "decimal", Digits: "0123456789", BitsPerUnit: 0, Prefix: ""},
	'x': {Name: "hex", Digits: "0123456789abcdef", BitsPerUnit: 4, Prefix: "0x"},
	'X': {Name: "hex", Digits: "0123456789ABCDEF", BitsPerUnit: 4, Prefix: "0X"},
}

// Lookup returns the Base registered for a format verb (as used by
// fmt.Formatter: 'b', 'o', 'O', 'd', 'x', 'X') and whether it exists.
func Lookup(verb rune) (Base, bool) {
	b, ok := table[verb]
	return b, ok
}

// Digit returns the printable digit for value v in base b, panicking if
// v is out of range; callers are expected to have already reduced v mod
// len(b.Digits).
func (b Base) Digit(v uint) byte {
	if int(v) >= len(b.Digits) {
		panic(fmt.Sprintf("convcatalog: digit value %d out of range for base %s", v, b.Name))
	}
	return b.Digits[v]
}
