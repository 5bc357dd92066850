// Package gitcrypto provides the Ed25519 signing identities, signature
// verification, and address derivation shared by GitGold's challenge/proof
// protocol and ledger. A non-system Transaction is verified against the
// address derived from its signer's public key; a ChallengeProof's
// signature is verified under the public key the proof carries, with no
// address check.
package gitcrypto

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ed25519"
)

const identityKeyFile = "identity.key"

// KeyPair is an Ed25519 signing identity.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// GenerateKeyPair creates a fresh random Ed25519 identity.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("gitcrypto: generate key pair: %w", err)
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// LoadOrCreateKeyPair loads a persistent identity from dataDir, or generates
// and saves a new one if none exists yet. This keeps an address stable
// across restarts.
func LoadOrCreateKeyPair(dataDir string) (*KeyPair, error) {
	keyPath := filepath.Join(dataDir, identityKeyFile)

	data, err := os.ReadFile(keyPath)
	if err == nil {
		if len(data) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("gitcrypto: identity key at %s has wrong size", keyPath)
		}
		priv := ed25519.PrivateKey(data)
		pub := priv.Public().(ed25519.PublicKey)
		return &KeyPair{Public: pub, Private: priv}, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("gitcrypto: read identity key: %w", err)
	}

	kp, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("gitcrypto: create data dir: %w", err)
	}
	if err := os.WriteFile(keyPath, kp.Private, 0600); err != nil {
		return nil, fmt.Errorf("gitcrypto: write identity key: %w", err)
	}
	return kp, nil
}

// Sign signs msg with the identity's private key.
func (kp *KeyPair) Sign(msg []byte) []byte {
	return ed25519.Sign(kp.Private, msg)
}

// Address returns the identity's GitGold address, derived from its public key.
func (kp *KeyPair) Address() string {
	return AddressFromPublicKey(kp.Public)
}
