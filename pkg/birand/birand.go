// Package birand generates random BigUint values. Seeding
// follows the same pattern as the project's MCMC search sampler: two
// independent 64-bit draws from OS entropy feed math/rand/v2's PCG,
// rather than trusting a single wall-clock-derived seed.
package birand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/oisee/bignum/pkg/biguint"
)

// New returns a PRNG seeded from the OS entropy source. Each call draws
// a fresh seed; callers needing reproducible sequences should instead
// build their own rand.NewPCG(seed1, seed2) and wrap it with rand.New.
func New() *rand.Rand {
	var seedBytes [16]byte
	if _, err := cryptorand.Read(seedBytes[:]); err != nil {
		// crypto/rand.Read failing means the OS entropy source is
		// unavailable; there is no degraded mode worth offering.
		panic(fmt.Sprintf("birand: reading OS entropy: %v", err))
	}
	seed1 := binary.LittleEndian.Uint64(seedBytes[0:8])
	seed2 := binary.LittleEndian.Uint64(seedBytes[8:16])
	return rand.New(rand.NewPCG(seed1, seed2))
}

// UintN returns a random *biguint.Uint with at most bits significant bits
// (bits == 0 yields 0). The top one of its (bits+63)/64 limbs is redrawn
// until non-zero, so the result always has exactly that many limbs: it is
// uniform over those values only, and never returns 0 or a value with
// fewer limbs when bits > 0.
func UintN(r *rand.Rand, bits uint) *biguint.Uint {
	if bits == 0 {
		return biguint.NewUint(0)
	}
	nWords := (bits + 63) / 64
	topBits := bits % 64
	if topBits == 0 {
		topBits = 64
	}

	words := make([]uint64, nWords)
	for i := range words {
		words[i] = r.Uint64()
	}
	topMask := uint64(1)<<topBits - 1
	words[len(words)-1] &= topMask
	for words[len(words)-1] == 0 {
		words[len(words)-1] = r.Uint64() & topMask
	}

	return fromWords(words)
}

// Limbs returns a uniformly random *biguint.Uint with exactly n limbs (n
// == 0 yields 0). It is UintN expressed in limbs rather than bits: the
// top limb is forced non-zero, so the result's Len() is always n.
func Limbs(r *rand.Rand, n uint) *biguint.Uint {
	if n == 0 {
		return biguint.NewUint(0)
	}
	return UintN(r, n*64)
}

// fromWords builds a *biguint.Uint from little-endian 64-bit words via
// the public shift/or surface, keeping mag's internals unexported.
func fromWords(words []uint64) *biguint.Uint {
	acc := biguint.NewUint(0)
	word := new(biguint.Uint)
	for i := len(words) - 1; i >= 0; i-- {
		acc.Lsh(acc, 64)
		word.SetUint64(words[i])
		acc.Or(acc, word)
	}
	return acc
}

// Below reports a uniformly random *biguint.Uint in [0, bound). bound
// must be non-zero.
func Below(r *rand.Rand, bound *biguint.Uint) *biguint.Uint {
	if !bound.Bool() {
		panic("birand: zero bound")
	}
	bits := uint(bound.BitLen())
	nWords := (bits + 63) / 64
	topMask := uint64(1)<<(bits-(nWords-1)*64) - 1
	words := make([]uint64, nWords)
	for {
		// Draw every limb freely (no top-limb redraw as in UintN), so each
		// value below 2^bits, zero included, is equally likely.
		for i := range words {
			words[i] = r.Uint64()
		}
		words[len(words)-1] &= topMask
		candidate := fromWords(words)
		if candidate.Cmp(bound) < 0 {
			return candidate
		}
	}
}
