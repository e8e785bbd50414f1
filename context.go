package qvortex

// BlockSize is the number of input bytes compressed per block.
const BlockSize = 64

// Size is the fixed digest length in bytes.
const Size = 32

// iv is the fixed initial chaining value the state is seeded with at
// Init. These are the same eight 64-bit fractional-sqrt constants used by
// SHA-512/BLAKE2b; Qvortex reuses them verbatim as its IV.
var iv = [8]uint64{
	0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
	0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
	0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
	0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
}

// Context is an incremental Qvortex hashing state. The zero value is
// not ready to use; construct one with Init.
//
// A Context is owned by a single goroutine: concurrent Update/Final calls
// on the same Context are undefined. Separate Contexts share no state and
// may run on separate goroutines freely.
type Context struct {
	state     [8]uint64
	sbox      [256]byte
	buffer    [BlockSize]byte
	bufferLen int
	totalLen  uint64
}

// Init resets ctx to the fixed IV and derives its S-box from key.
// A nil or empty key derives the S-box from a fixed default seed.
// It returns ErrNilContext if ctx is nil.
func Init(ctx *Context, key []byte) error {
	if ctx == nil {
		return ErrNilContext
	}
	ctx.state = iv
	ctx.sbox = deriveSBox(key)
	ctx.bufferLen = 0
	ctx.totalLen = 0
	return nil
}

// zero clears every field of ctx so key-derived material does not persist
// past Final.
func (ctx *Context) zero() {
	for i := range ctx.state {
		ctx.state[i] = 0
	}
	for i := range ctx.sbox {
		ctx.sbox[i] = 0
	}
	for i := range ctx.buffer {
		ctx.buffer[i] = 0
	}
	ctx.bufferLen = 0
	ctx.totalLen = 0
}
