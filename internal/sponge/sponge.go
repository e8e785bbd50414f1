// Package sponge implements the absorb/squeeze sponge construction over
// the Keccak-f[1600] permutation, fixed to the SHAKE-128 rate and domain
// separator. It is used only to derive Qvortex's S-box; it is not a
// general-purpose SHAKE implementation.
package sponge

import (
	"encoding/binary"

	"github.com/Pre-quel/qvortex/internal/keccak"
)

// Rate is the SHAKE-128 rate in bytes: 168 bytes absorbed or squeezed per
// permutation call, leaving a 32-byte capacity untouched by input or output.
const Rate = 168

const (
	dsByte  = 0x1F // SHAKE domain-separation bits
	padByte = 0x80 // multi-rate padding's final bit
)

const lanesUsed = Rate / 8 // 21 of the 25 lanes fall within the rate

// Sponge is a one-shot absorb-then-squeeze SHAKE-128 instance. The zero
// value is ready to use.
type Sponge struct {
	a         [25]uint64
	inBuf     [Rate]byte
	outBuf    [Rate]byte
	pos       int
	squeezing bool
}

// New returns a freshly initialized SHAKE-128 sponge.
func New() *Sponge {
	return &Sponge{}
}

// xorBytesFrom xors buf, read as little-endian 64-bit words, into the low
// lanesUsed lanes of a.
func xorBytesFrom(a *[25]uint64, buf []byte) {
	for i := 0; i < lanesUsed; i++ {
		a[i] ^= binary.LittleEndian.Uint64(buf[i*8:])
	}
}

// copyBytesInto writes the low lanesUsed lanes of a into buf as
// little-endian bytes.
func copyBytesInto(buf []byte, a *[25]uint64) {
	for i := 0; i < lanesUsed; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], a[i])
	}
}

func (s *Sponge) absorbBlock() {
	xorBytesFrom(&s.a, s.inBuf[:])
	keccak.Permute(&s.a)
	s.pos = 0
	for i := range s.inBuf {
		s.inBuf[i] = 0
	}
}

// Absorb xors p into the sponge state, rate bytes at a time, permuting
// whenever the input buffer fills. It must not be called after Pad.
func (s *Sponge) Absorb(p []byte) {
	for len(p) > 0 {
		n := copy(s.inBuf[s.pos:Rate], p)
		s.pos += n
		p = p[n:]
		if s.pos == Rate {
			s.absorbBlock()
		}
	}
}

// Pad appends the SHAKE domain-separator byte and the multi-rate padding
// bit, applies the permutation, and switches the sponge to squeezing.
// Calling Pad a second time is a no-op.
func (s *Sponge) Pad() {
	if s.squeezing {
		return
	}
	s.inBuf[s.pos] ^= dsByte
	s.inBuf[Rate-1] ^= padByte
	xorBytesFrom(&s.a, s.inBuf[:])
	keccak.Permute(&s.a)
	copyBytesInto(s.outBuf[:], &s.a)
	s.pos = 0
	s.squeezing = true
}

// Squeeze fills out with output bytes, permuting as needed. The first call
// implicitly pads if Pad hasn't already been called.
func (s *Sponge) Squeeze(out []byte) {
	if !s.squeezing {
		s.Pad()
	}
	for len(out) > 0 {
		avail := Rate - s.pos
		n := len(out)
		if n > avail {
			n = avail
		}
		copy(out[:n], s.outBuf[s.pos:s.pos+n])
		out = out[n:]
		s.pos += n
		if s.pos == Rate {
			keccak.Permute(&s.a)
			copyBytesInto(s.outBuf[:], &s.a)
			s.pos = 0
		}
	}
}

// Sum128 absorbs data in a fresh sponge and squeezes len(out) bytes into
// out, the shape Qvortex's S-box derivation needs twice over.
func Sum128(out, data []byte) {
	s := New()
	s.Absorb(data)
	s.Squeeze(out)
}
