package shamir

import (
	"github.com/gitgold-project/gitgold-core/internal/field"
	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// blockSize is the number of secret-payload bytes packed into each field
// element. A 32-byte big-endian buffer whose leading byte is always zero
// represents a value strictly less than 2^248, which is always < P, so every
// block is guaranteed to be a valid field element with no rejection.
const blockSize = 31

// lengthHeaderSize is the width, in bytes, of the little-endian length
// prefix written ahead of the secret payload so Reconstruct can discard the
// zero padding added to round the payload out to a whole number of blocks.
const lengthHeaderSize = 8

// packIntoBlocks frames the secret behind an 8-byte little-endian length
// prefix, zero-pads the result to a multiple of blockSize, and splits it
// into 32-byte field elements (one leading zero byte + 31 payload bytes).
func packIntoBlocks(secret []byte) []field.Element {
	framed := make([]byte, lengthHeaderSize+len(secret))
	copy(framed[:lengthHeaderSize], util.Uint64LE(uint64(len(secret))))
	copy(framed[lengthHeaderSize:], secret)

	if rem := len(framed) % blockSize; rem != 0 {
		framed = append(framed, make([]byte, blockSize-rem)...)
	}
	if len(framed) == 0 {
		framed = make([]byte, blockSize)
	}

	blocks := make([]field.Element, 0, len(framed)/blockSize)
	for off := 0; off < len(framed); off += blockSize {
		var buf [32]byte
		copy(buf[1:], framed[off:off+blockSize])
		blocks = append(blocks, field.FromBytesBE(buf))
	}
	return blocks
}

// unpackFromBlocks reverses packIntoBlocks: it concatenates the 31-byte
// payload of each reconstructed block, reads the length header, and
// truncates away the padding. It fails with ErrCorrupt if any block's
// canonical byte form has a non-zero leading byte (meaning it cannot have
// come from packIntoBlocks) or if the length header does not fit the
// recovered payload.
func unpackFromBlocks(blocks []field.Element) ([]byte, error) {
	framed := make([]byte, 0, len(blocks)*blockSize)
	for _, b := range blocks {
		buf := b.ToBytesBE()
		if buf[0] != 0 {
			return nil, ErrCorrupt
		}
		framed = append(framed, buf[1:]...)
	}
	if len(framed) < lengthHeaderSize {
		return nil, ErrCorrupt
	}
	length := leUint64(framed[:lengthHeaderSize])
	payload := framed[lengthHeaderSize:]
	if length > uint64(len(payload)) {
		return nil, ErrCorrupt
	}
	return payload[:length], nil
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
