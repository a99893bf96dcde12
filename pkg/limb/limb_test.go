package limb

import "testing"

// byteOnesTable cross-checks OnesCount against an independently computed
// table, the way pkg/cpu/flags.go builds ParityTable by hand instead of
// trusting a single code path.
var byteOnesTable [256]int

func init() {
	for i := 0; i < 256; i++ {
		n := 0
		for b := i; b != 0; b >>= 1 {
			n += b & 1
		}
		byteOnesTable[i] = n
	}
}

func TestOnesCountMatchesTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		if got := OnesCount(Word(i)); got != byteOnesTable[i] {
			t.Errorf("OnesCount(%d) = %d, want %d", i, got, byteOnesTable[i])
		}
	}
}

func TestAddWithCarry(t *testing.T) {
	tests := []struct {
		a, b, cin Word
		wantSum   Word
		wantCarry Word
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 2, 0},
		{^Word(0), 1, 0, 0, 1},
		{^Word(0), 0, 1, 0, 1},
		{^Word(0), ^Word(0), 1, ^Word(0), 1},
	}
	for _, tc := range tests {
		sum, cout := AddWithCarry(tc.a, tc.b, tc.cin)
		if sum != tc.wantSum || cout != tc.wantCarry {
			t.Errorf("AddWithCarry(%d,%d,%d) = (%d,%d), want (%d,%d)",
				tc.a, tc.b, tc.cin, sum, cout, tc.wantSum, tc.wantCarry)
		}
	}
}

func TestSubWithBorrow(t *testing.T) {
	tests := []struct {
		a, b, bin  Word
		wantDiff   Word
		wantBorrow Word
	}{
		{0, 0, 0, 0, 0},
		{5, 3, 0, 2, 0},
		{0, 1, 0, ^Word(0), 1},
		{3, 3, 1, ^Word(0), 1},
		{0, 0, 1, ^Word(0), 1},
	}
	for _, tc := range tests {
		diff, bout := SubWithBorrow(tc.a, tc.b, tc.bin)
		if diff != tc.wantDiff || bout != tc.wantBorrow {
			t.Errorf("SubWithBorrow(%d,%d,%d) = (%d,%d), want (%d,%d)",
				tc.a, tc.b, tc.bin, diff, bout, tc.wantDiff, tc.wantBorrow)
		}
	}
}

func TestWideMul(t *testing.T) {
	lo, hi := WideMul(^Word(0), ^Word(0))
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	if hi != 0xFFFFFFFFFFFFFFFE || lo != 1 {
		t.Errorf("WideMul(max,max) = (%#x,%#x), want (0x1, 0xFFFFFFFFFFFFFFFE)", lo, hi)
	}

	lo, hi = WideMul(0, 12345)
	if lo != 0 || hi != 0 {
		t.Errorf("WideMul(0,x) = (%#x,%#x), want (0,0)", lo, hi)
	}
}

func TestDivWide(t *testing.T) {
	// (1*B + 5) / 3, with B = 2^64: dividend = 2^64 + 5 = 18446744073709551621
	// 18446744073709551621 / 3 = 6148914691236517207 remainder 0
	q, r := DivWide(1, 5, 3)
	if q != 6148914691236517207 || r != 0 {
		t.Errorf("DivWide(1,5,3) = (%d,%d), want (6148914691236517207,0)", q, r)
	}

	q, r = DivWide(0, 17, 5)
	if q != 3 || r != 2 {
		t.Errorf("DivWide(0,17,5) = (%d,%d), want (3,2)", q, r)
	}
}
