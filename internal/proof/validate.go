package proof

import (
	"bytes"

	"github.com/gitgold-project/gitgold-core/internal/challenge"
	"github.com/gitgold-project/gitgold-core/internal/merkle"
)

// Validate checks a ChallengeProof against the verifier's own copy of the
// expected fragment bytes. Checks run in a fixed order; the first failure's
// error is returned. The signature is checked under p.Pubkey, the key the
// proof itself carries; Validate does not compare that key with any
// expected responder key.
func Validate(c *challenge.Challenge, p *ChallengeProof, expectedBytes []byte, cfg challenge.Config) error {
	if c.ChallengeID != p.ChallengeID {
		return ErrMismatch
	}

	expectedWindows := extractWindows(expectedBytes, c.SampleOffsets, cfg.WindowBytes)
	if len(expectedWindows) != len(p.Windows) {
		return ErrDataMismatch
	}
	for i := range expectedWindows {
		if !bytes.Equal(expectedWindows[i], p.Windows[i]) {
			return ErrDataMismatch
		}
	}

	if merkle.Build(p.Windows).Root() != p.MerkleRoot {
		return ErrRootMismatch
	}

	if p.ResponseTimeMs > cfg.TimeoutMs {
		return ErrTimeout
	}

	if !verifySignature(p) {
		return ErrBadSignature
	}

	return nil
}

// CommitmentLookup resolves the Merkle root previously committed for a
// challenge, keyed by challenge ID, letting a storage-less verifier validate
// proofs without holding fragment bytes. It returns false if no commitment
// is on file.
type CommitmentLookup func(challengeID string) (root [32]byte, ok bool)

// ValidateWithCommitment is Validate's production counterpart: instead of
// re-deriving windows from bytes the verifier would otherwise have to keep
// around, it checks the root recomputed over the proof's windows against
// both the proof's declared root and the root committed for this challenge
// ID. The commitment must therefore be the root over this challenge's
// sampled windows, recorded in advance by a party that held the fragment; a
// single fragment-wide commitment cannot be checked this way. As in
// Validate, the signature is checked under the key the proof carries.
func ValidateWithCommitment(c *challenge.Challenge, p *ChallengeProof, lookup CommitmentLookup, cfg challenge.Config) error {
	if c.ChallengeID != p.ChallengeID {
		return ErrMismatch
	}

	committedRoot, ok := lookup(c.ChallengeID)
	if !ok {
		return ErrRootMismatch
	}

	recomputed := merkle.Build(p.Windows).Root()
	if recomputed != p.MerkleRoot || recomputed != committedRoot {
		return ErrRootMismatch
	}

	if p.ResponseTimeMs > cfg.TimeoutMs {
		return ErrTimeout
	}

	if !verifySignature(p) {
		return ErrBadSignature
	}

	return nil
}
