// Package proof implements both sides of a proof-of-storage round: building
// a ChallengeProof over a held fragment, and validating one either against
// the verifier's own copy of the expected bytes or against a previously
// stored commitment for storage-less verifiers.
package proof

import (
	"golang.org/x/crypto/ed25519"

	"github.com/gitgold-project/gitgold-core/internal/challenge"
	"github.com/gitgold-project/gitgold-core/internal/gitcrypto"
	"github.com/gitgold-project/gitgold-core/internal/merkle"
	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// ChallengeProof is a custodian's answer to a Challenge: the Merkle root
// over the sampled windows, the windows themselves, and a signature binding
// the root and response time to the challenge.
type ChallengeProof struct {
	ChallengeID    string
	MerkleRoot     [32]byte
	Windows        [][]byte
	Signature      []byte
	Pubkey         ed25519.PublicKey
	ResponseTimeMs int64
}

// SignFunc signs a preimage and returns the raw signature bytes.
type SignFunc func(preimage []byte) []byte

// Create builds a ChallengeProof over fragment for the given challenge. The
// fragment must be the exact bytes the challenge's offsets were computed
// against; windows wrap around the fragment boundary.
func Create(c *challenge.Challenge, fragment []byte, responseTimeMs int64, pubkey ed25519.PublicKey, sign SignFunc, windowBytes int) *ChallengeProof {
	windows := extractWindows(fragment, c.SampleOffsets, windowBytes)
	root := merkle.Build(windows).Root()
	preimage := signablePreimage(c.ChallengeID, root, responseTimeMs)

	return &ChallengeProof{
		ChallengeID:    c.ChallengeID,
		MerkleRoot:     root,
		Windows:        windows,
		Signature:      sign(preimage),
		Pubkey:         pubkey,
		ResponseTimeMs: responseTimeMs,
	}
}

// signablePreimage is the canonical byte sequence signed and verified for a
// proof: challenge_id || merkle_root || response_time_ms_le.
func signablePreimage(challengeID string, root [32]byte, responseTimeMs int64) []byte {
	preimage := make([]byte, 0, len(challengeID)+32+8)
	preimage = append(preimage, []byte(challengeID)...)
	preimage = append(preimage, root[:]...)
	preimage = append(preimage, util.Int64LE(responseTimeMs)...)
	return preimage
}

func verifySignature(p *ChallengeProof) bool {
	preimage := signablePreimage(p.ChallengeID, p.MerkleRoot, p.ResponseTimeMs)
	return gitcrypto.Verify(p.Pubkey, preimage, p.Signature)
}
