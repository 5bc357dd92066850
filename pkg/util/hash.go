// Package util holds small, dependency-free helpers shared across the
// GitGold packages: hashing, hex transport encoding, and little-endian
// integer packing for canonical preimages.
package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 computes the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA256Concat hashes the concatenation of its arguments without an
// intermediate allocation per argument.
func SHA256Concat(parts ...[]byte) [32]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToHex returns the lowercase hex encoding of a 32-byte hash.
func HashToHex(hash [32]byte) string {
	return hex.EncodeToString(hash[:])
}

// HexToHash decodes a hex string into a 32-byte hash.
func HexToHash(s string) ([32]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return [32]byte{}, err
	}
	if len(b) != 32 {
		return [32]byte{}, hex.ErrLength
	}
	var h [32]byte
	copy(h[:], b)
	return h, nil
}
