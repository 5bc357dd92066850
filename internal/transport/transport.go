// Package transport defines CBOR wire envelopes for the payloads GitGold
// nodes exchange during a challenge round or while gossiping ledger
// transactions: the envelope shapes only, independent of whatever peer
// transport or discovery layer a deployment wires in.
package transport

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/ed25519"

	"github.com/gitgold-project/gitgold-core/internal/challenge"
	"github.com/gitgold-project/gitgold-core/internal/ledger"
	"github.com/gitgold-project/gitgold-core/internal/proof"
)

// maxWindows and maxWindowBytes bound what DecodeProof accepts from an
// untrusted peer, mirroring the size guards a wire-decoding message layer
// always needs.
const (
	maxWindows     = 4096
	maxWindowBytes = 4096
)

// MessageType identifies the payload carried by an envelope.
type MessageType uint8

const (
	MsgTypeChallenge   MessageType = 1
	MsgTypeProof       MessageType = 2
	MsgTypeTransaction MessageType = 3
)

// ChallengeEnvelope is the wire shape of a challenge.Challenge.
type ChallengeEnvelope struct {
	Type           MessageType `cbor:"1,keyasint"`
	ChallengeID    string      `cbor:"2,keyasint"`
	RepoHash       string      `cbor:"3,keyasint"`
	FragmentIndex  uint32      `cbor:"4,keyasint"`
	TotalFragments uint32      `cbor:"5,keyasint"`
	Size           uint64      `cbor:"6,keyasint"`
	Seed           [32]byte    `cbor:"7,keyasint"`
	SampleOffsets  []uint64    `cbor:"8,keyasint"`
	Timestamp      int64       `cbor:"9,keyasint"`
}

// EncodeChallenge serializes c to CBOR.
func EncodeChallenge(c *challenge.Challenge) ([]byte, error) {
	env := ChallengeEnvelope{
		Type:           MsgTypeChallenge,
		ChallengeID:    c.ChallengeID,
		RepoHash:       c.RepoHash,
		FragmentIndex:  c.FragmentIndex,
		TotalFragments: c.TotalFragments,
		Size:           c.Size,
		Seed:           c.Seed,
		SampleOffsets:  c.SampleOffsets,
		Timestamp:      c.Timestamp,
	}
	return cbor.Marshal(env)
}

// DecodeChallenge deserializes a CBOR-encoded Challenge.
func DecodeChallenge(data []byte) (*challenge.Challenge, error) {
	var env ChallengeEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("transport: decode challenge: %w", err)
	}
	return &challenge.Challenge{
		ChallengeID:    env.ChallengeID,
		RepoHash:       env.RepoHash,
		FragmentIndex:  env.FragmentIndex,
		TotalFragments: env.TotalFragments,
		Size:           env.Size,
		Seed:           env.Seed,
		SampleOffsets:  env.SampleOffsets,
		Timestamp:      env.Timestamp,
	}, nil
}

// ProofEnvelope is the wire shape of a proof.ChallengeProof.
type ProofEnvelope struct {
	Type           MessageType `cbor:"1,keyasint"`
	ChallengeID    string      `cbor:"2,keyasint"`
	MerkleRoot     [32]byte    `cbor:"3,keyasint"`
	Windows        [][]byte    `cbor:"4,keyasint"`
	Signature      []byte      `cbor:"5,keyasint"`
	Pubkey         []byte      `cbor:"6,keyasint"`
	ResponseTimeMs int64       `cbor:"7,keyasint"`
}

// EncodeProof serializes p to CBOR.
func EncodeProof(p *proof.ChallengeProof) ([]byte, error) {
	env := ProofEnvelope{
		Type:           MsgTypeProof,
		ChallengeID:    p.ChallengeID,
		MerkleRoot:     p.MerkleRoot,
		Windows:        p.Windows,
		Signature:      p.Signature,
		Pubkey:         p.Pubkey,
		ResponseTimeMs: p.ResponseTimeMs,
	}
	return cbor.Marshal(env)
}

// DecodeProof deserializes a CBOR-encoded ChallengeProof, rejecting
// payloads whose window count or window size exceed sane bounds.
func DecodeProof(data []byte) (*proof.ChallengeProof, error) {
	var env ProofEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("transport: decode proof: %w", err)
	}
	if len(env.Windows) > maxWindows {
		return nil, fmt.Errorf("transport: proof carries %d windows, exceeds limit %d", len(env.Windows), maxWindows)
	}
	for _, w := range env.Windows {
		if len(w) > maxWindowBytes {
			return nil, fmt.Errorf("transport: proof window of %d bytes exceeds limit %d", len(w), maxWindowBytes)
		}
	}
	return &proof.ChallengeProof{
		ChallengeID:    env.ChallengeID,
		MerkleRoot:     env.MerkleRoot,
		Windows:        env.Windows,
		Signature:      env.Signature,
		Pubkey:         ed25519.PublicKey(env.Pubkey),
		ResponseTimeMs: env.ResponseTimeMs,
	}, nil
}

// TransactionEnvelope is the wire shape of a ledger.Transaction.
type TransactionEnvelope struct {
	Type MessageType        `cbor:"1,keyasint"`
	Tx   ledger.Transaction `cbor:"2,keyasint"`
}

// EncodeTransaction serializes tx to CBOR.
func EncodeTransaction(tx *ledger.Transaction) ([]byte, error) {
	env := TransactionEnvelope{Type: MsgTypeTransaction, Tx: *tx}
	return cbor.Marshal(env)
}

// DecodeTransaction deserializes a CBOR-encoded Transaction.
func DecodeTransaction(data []byte) (*ledger.Transaction, error) {
	var env TransactionEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("transport: decode transaction: %w", err)
	}
	tx := env.Tx
	return &tx, nil
}
