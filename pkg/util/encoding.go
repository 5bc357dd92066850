package util

import (
	"encoding/binary"
	"encoding/hex"
)

// HexToBytes decodes a hex string to bytes, returning an error if invalid.
func HexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// BytesToHex encodes bytes to a hex string.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Uint32LE encodes a uint32 as 4 little-endian bytes.
func Uint32LE(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// Uint64LE encodes a uint64 as 8 little-endian bytes.
func Uint64LE(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// Int64LE encodes an int64 as 8 little-endian bytes (two's complement).
func Int64LE(v int64) []byte {
	return Uint64LE(uint64(v))
}
