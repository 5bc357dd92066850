// Package challenge implements GitGold's proof-of-storage challenge side:
// deterministic generation of a verifiable sampling pattern over a stored
// fragment, and a per-fragment issuance limiter so a single verifier cannot
// be driven to flood a custodian with challenges.
package challenge

import (
	"time"

	"github.com/google/uuid"

	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// Challenge is a verifier's request that a custodian prove possession of a
// specific, deterministically-sampled set of byte offsets within one
// repository fragment.
type Challenge struct {
	ChallengeID    string
	RepoHash       string
	FragmentIndex  uint32
	TotalFragments uint32
	Size           uint64
	Seed           [32]byte
	SampleOffsets  []uint64
	Timestamp      int64
}

// Generate builds a new Challenge for the given fragment. The offsets are a
// pure function of (challengeID, repoHash, fragmentIndex, timestamp, size,
// cfg.SampleCount): regenerating with the same challengeID and timestamp
// reproduces identical offsets.
func Generate(repoHash string, fragmentIndex, totalFragments uint32, size uint64, cfg Config) (*Challenge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if size < uint64(cfg.SampleCount) {
		return nil, ErrFragmentTooSmall
	}

	challengeID := uuid.New()
	timestamp := time.Now().Unix()

	return generateWithIDAndTime(repoHash, fragmentIndex, totalFragments, size, cfg, challengeID.String(), timestamp)
}

// generateWithIDAndTime is Generate with the challenge_id and timestamp
// supplied explicitly, letting tests and replays reproduce a prior
// Challenge's offsets exactly.
func generateWithIDAndTime(repoHash string, fragmentIndex, totalFragments uint32, size uint64, cfg Config, challengeID string, timestamp int64) (*Challenge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if size < uint64(cfg.SampleCount) {
		return nil, ErrFragmentTooSmall
	}

	seed := util.SHA256Concat(
		[]byte(challengeID),
		[]byte(repoHash),
		util.Uint32LE(fragmentIndex),
		util.Int64LE(timestamp),
	)

	offsets := deriveOffsets(seed, size, cfg.SampleCount)

	return &Challenge{
		ChallengeID:    challengeID,
		RepoHash:       repoHash,
		FragmentIndex:  fragmentIndex,
		TotalFragments: totalFragments,
		Size:           size,
		Seed:           seed,
		SampleOffsets:  offsets,
		Timestamp:      timestamp,
	}, nil
}

// Regenerate reproduces the offsets of a previously issued Challenge,
// useful when a verifier has persisted only the challenge's scalar fields
// and needs to recompute sample_offsets.
func Regenerate(repoHash string, fragmentIndex, totalFragments uint32, size uint64, cfg Config, challengeID string, timestamp int64) (*Challenge, error) {
	return generateWithIDAndTime(repoHash, fragmentIndex, totalFragments, size, cfg, challengeID, timestamp)
}
