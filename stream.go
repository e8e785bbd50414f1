package qvortex

import "encoding/binary"

// Update absorbs data into ctx, compressing whole 64-byte blocks as they
// accumulate and buffering any remainder. It returns ErrNilContext
// if ctx is nil; a nil data with zero length is a valid no-op.
func Update(ctx *Context, data []byte) error {
	if ctx == nil {
		return ErrNilContext
	}
	ctx.totalLen += uint64(len(data))

	if ctx.bufferLen > 0 {
		n := copy(ctx.buffer[ctx.bufferLen:], data)
		ctx.bufferLen += n
		data = data[n:]
		if ctx.bufferLen == BlockSize {
			compress(ctx, ctx.buffer[:])
			ctx.bufferLen = 0
		}
	}

	for len(data) >= BlockSize {
		compress(ctx, data[:BlockSize])
		data = data[BlockSize:]
	}

	if len(data) > 0 {
		ctx.bufferLen = copy(ctx.buffer[:], data)
	}
	return nil
}

// Final pads the buffered tail with a Merkle-Damgard-style length
// encoding, compresses the resulting final block(s), writes the 32-byte
// digest to out, and zeroizes ctx. It returns ErrNilContext or
// ErrNilOutput if ctx or out is nil.
func Final(ctx *Context, out *[Size]byte) error {
	if ctx == nil {
		return ErrNilContext
	}
	if out == nil {
		return ErrNilOutput
	}

	pos := ctx.bufferLen
	ctx.buffer[pos] = 0x80
	pos++

	if pos > BlockSize-8 {
		for i := pos; i < BlockSize; i++ {
			ctx.buffer[i] = 0
		}
		compress(ctx, ctx.buffer[:])
		for i := range ctx.buffer {
			ctx.buffer[i] = 0
		}
		pos = 0
	} else {
		for i := pos; i < BlockSize-8; i++ {
			ctx.buffer[i] = 0
		}
	}

	binary.LittleEndian.PutUint64(ctx.buffer[BlockSize-8:], ctx.totalLen*8)
	compress(ctx, ctx.buffer[:])

	for i := 0; i < Size; i++ {
		out[i] = byte(ctx.state[i/8] >> (8 * uint(i%8)))
	}

	ctx.zero()
	return nil
}
