package birand

import (
	"math/rand/v2"
	"testing"
)

func TestUintNBitWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		u := UintN(rng, 40)
		if u.BitLen() > 40 {
			t.Fatalf("UintN(40) returned a %d-bit value", u.BitLen())
		}
	}
}

func TestUintNZeroBits(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if u := UintN(rng, 0); u.Bool() {
		t.Errorf("UintN(0) = %s, want 0", u)
	}
}

func TestBelowStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	bound := UintN(rng, 37)
	for !bound.Bool() {
		bound = UintN(rng, 37)
	}
	for i := 0; i < 500; i++ {
		got := Below(rng, bound)
		if got.Cmp(bound) >= 0 {
			t.Fatalf("Below returned %s >= bound %s", got, bound)
		}
	}
}

func TestLimbsExactLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 50; i++ {
		u := Limbs(rng, 100)
		if u.Len() != 100 {
			t.Fatalf("Limbs(100).Len() = %d, want 100", u.Len())
		}
	}
}

func TestLimbsZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	if u := Limbs(rng, 0); u.Bool() {
		t.Errorf("Limbs(0) = %s, want 0", u)
	}
}

func TestNewProducesDistinctSeeds(t *testing.T) {
	a := New().Uint64()
	b := New().Uint64()
	if a == b {
		t.Skip("extremely unlikely collision; not a hard failure")
	}
}
