package bigint

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/oisee/bignum/pkg/bigerr"
)

// Wire format: one sign byte (0x00 non-negative, 0x01 negative), an
// 8-byte little-endian limb count, then that many little-endian 64-bit
// limb words. A zero value always serializes as {0x00, 0} with no
// following words.

const (
	signPositive = 0x00
	signNegative = 0x01
)

// WriteFile serializes x to path, truncating or creating it as needed.
func (x *Int) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", bigerr.ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sign := byte(signPositive)
	if x.neg {
		sign = signNegative
	}
	if _, err = f.Write([]byte{sign}); err != nil {
		return fmt.Errorf("%w: writing sign byte: %v", bigerr.ErrIO, err)
	}

	words := x.abs.Bits()
	if err = binary.Write(f, binary.LittleEndian, uint64(len(words))); err != nil {
		return fmt.Errorf("%w: writing limb count: %v", bigerr.ErrIO, err)
	}
	if err = binary.Write(f, binary.LittleEndian, words); err != nil {
		return fmt.Errorf("%w: writing limbs: %v", bigerr.ErrIO, err)
	}
	return nil
}

// ReadFile deserializes an Int previously written by WriteFile. The
// file is rejected with bigerr.ErrFormat if it is truncated or malformed
// rather than silently accepting partial data.
func ReadFile(path string) (z *Int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", bigerr.ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var sign [1]byte
	if _, err := f.Read(sign[:]); err != nil {
		return nil, fmt.Errorf("%w: reading sign byte: %v", bigerr.ErrFormat, err)
	}
	if sign[0] != signPositive && sign[0] != signNegative {
		return nil, fmt.Errorf("%w: invalid sign byte %#x", bigerr.ErrFormat, sign[0])
	}

	var count uint64
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading limb count: %v", bigerr.ErrFormat, err)
	}

	// A truncated or hostile header can claim an enormous limb count;
	// bound it against what the file could actually hold (8 bytes/limb)
	// before allocating, rather than trusting it outright.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", bigerr.ErrIO, path, err)
	}
	const headerSize = 1 + 8 // sign byte + limb count
	maxLimbs := uint64(0)
	if info.Size() > headerSize {
		maxLimbs = uint64(info.Size()-headerSize) / 8
	}
	if count > maxLimbs {
		return nil, fmt.Errorf("%w: limb count %d exceeds file size", bigerr.ErrFormat, count)
	}

	words := make([]uint64, count)
	if count > 0 {
		if err := binary.Read(f, binary.LittleEndian, words); err != nil {
			return nil, fmt.Errorf("%w: reading limbs: %v", bigerr.ErrFormat, err)
		}
	}

	z = new(Int)
	z.abs.SetBits(words)
	z.neg = sign[0] == signNegative && z.abs.Bool()
	return z, nil
}
