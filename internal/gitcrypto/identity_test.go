package gitcrypto

import (
	"path/filepath"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("a message worth signing")
	sig := kp.Sign(msg)
	if !Verify(kp.Public, msg, sig) {
		t.Error("valid signature failed to verify")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sig := kp.Sign([]byte("original"))
	if Verify(kp.Public, []byte("tampered"), sig) {
		t.Error("signature verified against a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	a, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("signed by a")
	sig := a.Sign(msg)
	if Verify(b.Public, msg, sig) {
		t.Error("signature verified under the wrong public key")
	}
}

func TestAddressIsDeterministicAndDistinct(t *testing.T) {
	a, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if a.Address() != AddressFromPublicKey(a.Public) {
		t.Error("Address is not deterministic from the public key")
	}
	if a.Address() == b.Address() {
		t.Error("two different key pairs produced the same address")
	}
	if a.Address() == SystemAddress {
		t.Error("a generated address collided with the reserved system address")
	}
}

func TestLoadOrCreateKeyPairPersistsAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	first, err := LoadOrCreateKeyPair(dir)
	if err != nil {
		t.Fatalf("LoadOrCreateKeyPair (create): %v", err)
	}

	second, err := LoadOrCreateKeyPair(filepath.Clean(dir))
	if err != nil {
		t.Fatalf("LoadOrCreateKeyPair (load): %v", err)
	}

	if first.Address() != second.Address() {
		t.Error("identity was not stable across LoadOrCreateKeyPair calls")
	}
}
