package gitcrypto

import (
	"golang.org/x/crypto/ed25519"

	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// SystemAddress is the reserved address used as the "from" party for mint
// transactions and as the "to" party for burn transactions: it has no
// corresponding key pair and can never appear as a signer.
const SystemAddress = "system"

// AddressFromPublicKey derives a GitGold address from a public key: the
// lowercase hex encoding of SHA256(pubkey).
func AddressFromPublicKey(pub ed25519.PublicKey) string {
	return util.HashToHex(util.SHA256(pub))
}

// Verify reports whether sig is a valid Ed25519 signature over msg under pub.
func Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}
