// Package merkle implements binary Merkle hash trees used throughout
// GitGold: to commit to fragment contents for proof-of-storage challenges
// and to attest to the transaction history of the ledger. Leaves are hashed
// once on input; internal nodes are SHA256(left || right); a tree with an
// odd number of nodes at a level duplicates the last node to pair it with
// itself.
package merkle

import (
	"errors"

	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// ErrEmptyTree is returned by operations that require at least one leaf.
var ErrEmptyTree = errors.New("merkle: tree has no leaves")

// ErrIndexOutOfRange is returned by Proof when the requested leaf index does
// not exist in the tree.
var ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")

// Tree is an immutable binary Merkle hash tree built from an ordered list of
// leaves. The zero value is not usable; construct one with Build.
type Tree struct {
	levels    [][][32]byte // levels[0] = leaf hashes, levels[len-1] = {root}
	leafCount int
}

// Build hashes each leaf and constructs the tree bottom-up. An empty input
// produces a tree whose Root is the all-zero hash, per the all-zero-root
// convention for empty trees.
func Build(leaves [][]byte) *Tree {
	hashed := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		hashed[i] = util.SHA256(leaf)
	}
	return buildFromLeafHashes(hashed)
}

// BuildFromHashes constructs a tree directly from pre-hashed leaves, useful
// when the caller already has SHA-256 digests (e.g. transaction hashes).
func BuildFromHashes(leafHashes [][32]byte) *Tree {
	hashed := make([][32]byte, len(leafHashes))
	copy(hashed, leafHashes)
	return buildFromLeafHashes(hashed)
}

func buildFromLeafHashes(hashed [][32]byte) *Tree {
	if len(hashed) == 0 {
		return &Tree{levels: [][][32]byte{{{}}}, leafCount: 0}
	}

	levels := [][][32]byte{hashed}
	current := hashed
	for len(current) > 1 {
		next := make([][32]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			left := current[i]
			right := left
			if i+1 < len(current) {
				right = current[i+1]
			}
			next = append(next, util.SHA256Concat(left[:], right[:]))
		}
		levels = append(levels, next)
		current = next
	}
	return &Tree{levels: levels, leafCount: len(hashed)}
}

// Root returns the tree's top hash. The root of an empty tree is the
// all-zero hash.
func (t *Tree) Root() [32]byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// LeafCount returns the number of leaves the tree was built from.
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// ProofStep is one step of an inclusion proof: the sibling hash encountered
// while walking from a leaf to the root, and whether that sibling sits to
// the right of the node being hashed.
type ProofStep struct {
	Sibling [32]byte
	IsRight bool
}

// Proof returns the bottom-up inclusion proof for the leaf at index.
func (t *Tree) Proof(index int) ([]ProofStep, error) {
	if t.LeafCount() == 0 {
		return nil, ErrEmptyTree
	}
	if index < 0 || index >= len(t.levels[0]) {
		return nil, ErrIndexOutOfRange
	}

	var steps []ProofStep
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]
		isRightNode := idx%2 == 1
		var siblingIdx int
		if isRightNode {
			siblingIdx = idx - 1
		} else {
			siblingIdx = idx + 1
			if siblingIdx >= len(nodes) {
				siblingIdx = idx // duplicated last node
			}
		}
		steps = append(steps, ProofStep{
			Sibling: nodes[siblingIdx],
			IsRight: !isRightNode,
		})
		idx /= 2
	}
	return steps, nil
}

// VerifyProof recomputes the root from a leaf value and its inclusion proof
// and reports whether it matches root.
func VerifyProof(leaf []byte, steps []ProofStep, root [32]byte) bool {
	return VerifyProofHash(util.SHA256(leaf), steps, root)
}

// VerifyProofHash is VerifyProof for a caller that already has the leaf's
// hash rather than its raw bytes.
func VerifyProofHash(leafHash [32]byte, steps []ProofStep, root [32]byte) bool {
	current := leafHash
	for _, step := range steps {
		if step.IsRight {
			current = util.SHA256Concat(current[:], step.Sibling[:])
		} else {
			current = util.SHA256Concat(step.Sibling[:], current[:])
		}
	}
	return current == root
}
