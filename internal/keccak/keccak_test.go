package keccak

import "testing"

// TestPermuteZeroState checks against the standard Keccak-f[1600]
// known-answer vector: permuting the all-zero state once yields a first
// lane of 0xF1258F7940E1DDE7. This value is widely reproduced across
// independent Keccak implementations and is a useful canary for a
// transposed rho/pi table or a wrong rotation direction.
func TestPermuteZeroState(t *testing.T) {
	var a [25]uint64
	Permute(&a)
	if want := uint64(0xF1258F7940E1DDE7); a[0] != want {
		t.Fatalf("a[0] = %#016x, want %#016x", a[0], want)
	}
}

func TestPermuteDeterministic(t *testing.T) {
	var a, b [25]uint64
	for i := range a {
		a[i] = uint64(i)*0x0101010101010101 + 1
	}
	b = a
	Permute(&a)
	Permute(&b)
	if a != b {
		t.Fatalf("Permute is not deterministic for identical inputs")
	}
}

func TestPermuteChangesState(t *testing.T) {
	var a [25]uint64
	orig := a
	Permute(&a)
	if a == orig {
		t.Fatalf("Permute left the all-zero state unchanged")
	}
}

// TestPermuteAvalanche checks that flipping a single input bit changes a
// large fraction of the output bits, a basic diffusion sanity check rather
// than an exact-value assertion.
func TestPermuteAvalanche(t *testing.T) {
	var a, b [25]uint64
	b[0] = 1
	Permute(&a)
	Permute(&b)
	diff := 0
	for i := range a {
		x := a[i] ^ b[i]
		for x != 0 {
			diff += int(x & 1)
			x >>= 1
		}
	}
	if diff < 400 {
		t.Fatalf("flipping one input bit only changed %d of 1600 output bits", diff)
	}
}
