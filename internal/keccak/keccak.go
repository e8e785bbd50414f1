// Package keccak implements the Keccak-f[1600] permutation: a pure,
// deterministic function over a 25-lane, 64-bit-wide state. It has no
// notion of rate, capacity, or padding; those belong to the sponge
// built on top of it.
package keccak

// Rounds is the number of rounds Keccak-f[1600] applies per permutation call.
const Rounds = 24

// roundConstants are the ι step's per-round constants, reproduced
// bit-exactly from the Keccak specification.
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// piIndices gives the destination lane, in the linearized 5x5 state, that
// each step of the chained rho+pi assignment writes to.
var piIndices = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// rhoOffsets gives the rotation amount applied at the matching step of the
// chained rho+pi assignment.
var rhoOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// Permute applies the 24-round Keccak-f[1600] permutation in place to a.
func Permute(a *[25]uint64) {
	var c, d [5]uint64
	for round := 0; round < Rounds; round++ {
		// theta
		for i := 0; i < 5; i++ {
			c[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			d[i] = rotl64(c[(i+1)%5], 1) ^ c[(i+4)%5]
		}
		for i := 0; i < 5; i++ {
			for col := 0; col < 25; col += 5 {
				a[col+i] ^= d[i]
			}
		}

		// rho + pi: chained assignment starting from a[1].
		t := a[1]
		for i := 0; i < 24; i++ {
			dst := piIndices[i]
			prev := a[dst]
			a[dst] = rotl64(t, rhoOffsets[i])
			t = prev
		}

		// chi
		var row [5]uint64
		for base := 0; base < 25; base += 5 {
			copy(row[:], a[base:base+5])
			for i := 0; i < 5; i++ {
				a[base+i] = row[i] ^ ((^row[(i+1)%5]) & row[(i+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
