package qvortex

import "hash"

// version is returned by Version. It matches ^\d+\.\d+\.\d+$.
const version = "1.0.0"

// Version returns the Qvortex implementation version string.
func Version() string { return version }

// Sum computes the one-shot Qvortex digest of data under key. A nil
// or empty key derives the S-box from the default seed; a nil data
// is a valid zero-length input.
func Sum(data, key []byte) [Size]byte {
	var ctx Context
	Init(&ctx, key)
	Update(&ctx, data)
	var out [Size]byte
	Final(&ctx, &out)
	return out
}

// VortexHash is a legacy alias for Sum, retained for binary-compatible
// callers that still spell the function the old way.
func VortexHash(data, key []byte) [Size]byte {
	return Sum(data, key)
}

// digest adapts the Init/Update/Final streaming API to the standard
// library's hash.Hash interface.
type digest struct {
	ctx Context
	key []byte
}

// New returns a streaming Qvortex hash.Hash keyed by key. The returned
// value also satisfies io.Writer; Write never returns an error.
func New(key []byte) hash.Hash {
	d := &digest{key: append([]byte(nil), key...)}
	Init(&d.ctx, d.key)
	return d
}

func (d *digest) Write(p []byte) (int, error) {
	Update(&d.ctx, p)
	return len(p), nil
}

// Sum appends the digest of everything written so far to in, without
// disturbing d's state, so the caller may keep writing afterward. This
// requires operating on a copy of ctx, since Final zeroizes its argument.
func (d *digest) Sum(in []byte) []byte {
	clone := d.ctx
	var out [Size]byte
	Final(&clone, &out)
	return append(in, out[:]...)
}

func (d *digest) Reset() {
	Init(&d.ctx, d.key)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }
