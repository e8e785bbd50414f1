package qvortex

import "github.com/Pre-quel/qvortex/internal/sponge"

// defaultSeedByte fills the 32-byte seed input when no key is supplied.
const defaultSeedByte = 0xCC

// deriveSBox derives Qvortex's 256-byte substitution table from key via
// two chained SHAKE-128 passes:
//
//	seed = SHAKE128(key, 32)       if len(key) > 0
//	seed = SHAKE128(0xCC x 32, 32) otherwise
//	sbox = SHAKE128(seed, 256)
//
// The result is a pseudorandom byte table, not a permutation of 0..255;
// callers must not "fix up" repeated values.
func deriveSBox(key []byte) (sbox [256]byte) {
	seedInput := key
	if len(seedInput) == 0 {
		var def [32]byte
		for i := range def {
			def[i] = defaultSeedByte
		}
		seedInput = def[:]
	}

	var seed [32]byte
	sponge.Sum128(seed[:], seedInput)
	sponge.Sum128(sbox[:], seed[:])
	return sbox
}
