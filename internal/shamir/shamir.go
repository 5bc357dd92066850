// Package shamir implements (k, n) threshold secret sharing over the
// GF(P) field defined in internal/field. Secrets of arbitrary length are
// framed, zero-padded, and split into 31-byte blocks so that every block
// maps to a single field element; each block is shared independently with
// an identical participant index, and the blocks of a reconstructed secret
// are concatenated back together.
package shamir

import (
	"github.com/gitgold-project/gitgold-core/internal/field"
)

// Share is one participant's piece of a secret: a fixed index X (1-255,
// never zero, since x=0 is reserved for the secret itself) together with
// one y-value per block of the framed secret, in block order.
type Share struct {
	X      byte
	Blocks [][32]byte
}

// Split divides secret into n shares such that any k of them suffice to
// reconstruct it, while any k-1 reveal nothing. n must be in [k, 255] and k
// must be at least 1.
func Split(secret []byte, k, n int) ([]Share, error) {
	if k < 1 || n < k || n > 255 {
		return nil, ErrInvalidThreshold
	}

	blocks := packIntoBlocks(secret)
	polys := make([]polynomial, len(blocks))
	for i, block := range blocks {
		p, err := randomPolynomial(block, k-1)
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}

	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		x := byte(i + 1)
		xElem := field.FromU64(uint64(x))
		share := Share{X: x, Blocks: make([][32]byte, len(polys))}
		for bi, p := range polys {
			share.Blocks[bi] = p.evaluate(xElem).ToBytesBE()
		}
		shares[i] = share
	}
	return shares, nil
}

// Reconstruct recovers the original secret from at least k shares. Only the
// first k shares supplied are used; callers should pass exactly the shares
// they trust. Reconstruct fails with ErrInsufficientShares, ErrDuplicateX,
// or ErrCorrupt as documented on those errors.
func Reconstruct(shares []Share, k int) ([]byte, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}
	if len(shares) < k {
		return nil, ErrInsufficientShares
	}
	used := shares[:k]

	seen := make(map[byte]struct{}, k)
	for _, s := range used {
		if _, dup := seen[s.X]; dup {
			return nil, ErrDuplicateX
		}
		seen[s.X] = struct{}{}
	}

	blockCount := len(used[0].Blocks)
	for _, s := range used {
		if len(s.Blocks) != blockCount {
			return nil, ErrCorrupt
		}
	}

	blocks := make([]field.Element, blockCount)
	for bi := 0; bi < blockCount; bi++ {
		points := make([]point, k)
		for si, s := range used {
			points[si] = point{
				X: field.FromU64(uint64(s.X)),
				Y: field.FromBytesBE(s.Blocks[bi]),
			}
		}
		block, err := interpolateAtZero(points)
		if err != nil {
			return nil, err
		}
		blocks[bi] = block
	}

	return unpackFromBlocks(blocks)
}
