package qvortex

import "encoding/binary"

// arxRounds is the number of ARX rounds per block.
const arxRounds = 2

// Quarter-mix rotation constants.
const (
	r1 = 32
	r2 = 24
	r3 = 16
	r4 = 63
)

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// quarterMix is the 8-line ARX mixing primitive applied to four of the
// eight working-state words.
func quarterMix(s *[8]uint64, a, b, c, d int) {
	s[a] += s[b]
	s[d] = rotl64(s[d]^s[a], r1)
	s[c] += s[d]
	s[b] = rotl64(s[b]^s[c], r2)
	s[a] += s[b]
	s[d] = rotl64(s[d]^s[a], r3)
	s[c] += s[d]
	s[b] = rotl64(s[b]^s[c], r4)
}

// compress processes one 64-byte block into ctx.state: substitute
// through the S-box, load the substituted block as eight little-endian
// words, mix those words into a working copy of the state with an
// input-driven rotation, run arxRounds ARX rounds, and feed the working
// state forward into ctx.state with XOR.
func compress(ctx *Context, block []byte) {
	var substituted [BlockSize]byte
	for i, b := range block[:BlockSize] {
		substituted[i] = ctx.sbox[b]
	}

	var m [8]uint64
	for k := range m {
		m[k] = binary.LittleEndian.Uint64(substituted[k*8:])
	}

	s := ctx.state

	for k := range m {
		// The reference extracts the rotation amount as (m >> 56) & 63,
		// which actually selects bits [56..61] of m rather than the
		// [58..63] a literal reading of "high 6 bits" would suggest. This
		// is reproduced exactly so digests match the reference.
		rot := uint((m[k] >> 56) & 63)
		s[k] ^= rotl64(m[k], rot)
	}

	for round := 0; round < arxRounds; round++ {
		quarterMix(&s, 0, 1, 2, 3)
		quarterMix(&s, 4, 5, 6, 7)
		quarterMix(&s, 0, 5, 2, 7)
		quarterMix(&s, 4, 1, 6, 3)
		s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7] =
			s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[0]
	}

	for i := range ctx.state {
		ctx.state[i] ^= s[i]
	}
}
