package transport

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/gitgold-project/gitgold-core/internal/challenge"
	"github.com/gitgold-project/gitgold-core/internal/gitcrypto"
	"github.com/gitgold-project/gitgold-core/internal/ledger"
	"github.com/gitgold-project/gitgold-core/internal/proof"
)

func TestChallengeEncodeDecodeRoundTrip(t *testing.T) {
	cfg := challenge.NewDefaultConfig()
	c, err := challenge.Generate("repo-hash", 2, 10, 1_000_000, cfg)
	if err != nil {
		t.Fatalf("challenge.Generate: %v", err)
	}

	data, err := EncodeChallenge(c)
	if err != nil {
		t.Fatalf("EncodeChallenge: %v", err)
	}
	decoded, err := DecodeChallenge(data)
	if err != nil {
		t.Fatalf("DecodeChallenge: %v", err)
	}

	if decoded.ChallengeID != c.ChallengeID || decoded.RepoHash != c.RepoHash || decoded.Size != c.Size {
		t.Error("scalar fields did not round trip")
	}
	if len(decoded.SampleOffsets) != len(c.SampleOffsets) {
		t.Fatalf("offset count = %d, want %d", len(decoded.SampleOffsets), len(c.SampleOffsets))
	}
	for i := range c.SampleOffsets {
		if decoded.SampleOffsets[i] != c.SampleOffsets[i] {
			t.Errorf("offset %d = %d, want %d", i, decoded.SampleOffsets[i], c.SampleOffsets[i])
		}
	}
}

func TestProofEncodeDecodeRoundTrip(t *testing.T) {
	cfg := challenge.Config{SampleCount: 8, WindowBytes: 16, TimeoutMs: 1000}
	fragment := bytes.Repeat([]byte{0xab}, 2000)
	c, err := challenge.Generate("repo-hash", 0, 1, uint64(len(fragment)), cfg)
	if err != nil {
		t.Fatalf("challenge.Generate: %v", err)
	}
	kp, err := gitcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	p := proof.Create(c, fragment, 25, kp.Public, kp.Sign, cfg.WindowBytes)

	data, err := EncodeProof(p)
	if err != nil {
		t.Fatalf("EncodeProof: %v", err)
	}
	decoded, err := DecodeProof(data)
	if err != nil {
		t.Fatalf("DecodeProof: %v", err)
	}

	if decoded.ChallengeID != p.ChallengeID || decoded.MerkleRoot != p.MerkleRoot {
		t.Error("scalar fields did not round trip")
	}
	if len(decoded.Windows) != len(p.Windows) {
		t.Fatalf("window count = %d, want %d", len(decoded.Windows), len(p.Windows))
	}
	for i := range p.Windows {
		if !bytes.Equal(decoded.Windows[i], p.Windows[i]) {
			t.Errorf("window %d did not round trip", i)
		}
	}
	if err := proof.Validate(c, decoded, fragment, cfg); err != nil {
		t.Errorf("decoded proof failed to validate: %v", err)
	}
}

func TestTransactionEncodeDecodeRoundTrip(t *testing.T) {
	tx := &ledger.Transaction{
		TxID:      "tx-1",
		TxType:    ledger.TxMint,
		From:      "system",
		To:        "alice-address",
		Amount:    1000,
		Metadata:  `{"note":"test"}`,
		Timestamp: 1700000000,
	}

	data, err := EncodeTransaction(tx)
	if err != nil {
		t.Fatalf("EncodeTransaction: %v", err)
	}
	decoded, err := DecodeTransaction(data)
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	if decoded.Hash() != tx.Hash() {
		t.Error("decoded transaction hash does not match original")
	}
}

func TestDecodeProofRejectsOversizedWindowCount(t *testing.T) {
	env := ProofEnvelope{
		Type:        MsgTypeProof,
		ChallengeID: "id",
		Windows:     make([][]byte, maxWindows+1),
	}
	for i := range env.Windows {
		env.Windows[i] = []byte{0}
	}
	data, err := cbor.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := DecodeProof(data); err == nil {
		t.Error("expected DecodeProof to reject an oversized window count")
	}
}
