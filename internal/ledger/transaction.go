package ledger

import (
	"strconv"

	"golang.org/x/crypto/ed25519"

	"github.com/gitgold-project/gitgold-core/internal/gitcrypto"
	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// TxType identifies the economic effect a Transaction has on the ledger.
type TxType string

// Recognized transaction types. Values are the lowercase names used for
// both wire encoding and the signable preimage.
const (
	TxMint            TxType = "mint"
	TxBurn            TxType = "burn"
	TxTransfer        TxType = "transfer"
	TxPushFee         TxType = "push_fee"
	TxPullFee         TxType = "pull_fee"
	TxStorageReward   TxType = "storage_reward"
	TxChallengeReward TxType = "challenge_reward"
	TxBandwidthReward TxType = "bandwidth_reward"
)

// Transaction is a single entry in the ledger. Metadata is kept as an
// opaque, already-serialized JSON string: the ledger never interprets its
// structure, only hashes and signs it.
type Transaction struct {
	TxID      string `cbor:"1,keyasint"`
	TxType    TxType `cbor:"2,keyasint"`
	From      string `cbor:"3,keyasint"`
	To        string `cbor:"4,keyasint"`
	Amount    int64  `cbor:"5,keyasint"`
	Metadata  string `cbor:"6,keyasint"`
	Timestamp int64  `cbor:"7,keyasint"`
	Signature string `cbor:"8,keyasint"`
	Pubkey    string `cbor:"9,keyasint"`
}

// SignableBytes returns the canonical preimage signed and verified for this
// transaction: tx_id, from, to, amount, timestamp, metadata, pubkey,
// concatenated as UTF-8 with amount and timestamp in plain decimal form.
// This formatting is pinned as the one canonical preimage; it is never
// changed without a corresponding migration of already-signed transactions.
func (tx *Transaction) SignableBytes() []byte {
	buf := make([]byte, 0, len(tx.TxID)+len(tx.From)+len(tx.To)+len(tx.Metadata)+len(tx.Pubkey)+32)
	buf = append(buf, tx.TxID...)
	buf = append(buf, tx.From...)
	buf = append(buf, tx.To...)
	buf = strconv.AppendInt(buf, tx.Amount, 10)
	buf = strconv.AppendInt(buf, tx.Timestamp, 10)
	buf = append(buf, tx.Metadata...)
	buf = append(buf, tx.Pubkey...)
	return buf
}

// Hash returns SHA-256 of the transaction's signable preimage.
func (tx *Transaction) Hash() [32]byte {
	return util.SHA256(tx.SignableBytes())
}

// verify checks the transaction's from-address/pubkey binding and
// signature. System-originated transactions (from == SystemAddress) need
// neither and always pass. A negative amount is rejected regardless of
// origin: int64 has no type-level guarantee against it the way the
// original's unsigned micro-unit type does.
func (tx *Transaction) verify() error {
	if tx.Amount < 0 {
		return &InvalidTransactionError{Reason: "negative amount"}
	}
	if tx.From == gitcrypto.SystemAddress {
		return nil
	}

	pubkeyBytes, err := util.HexToBytes(tx.Pubkey)
	if err != nil || len(pubkeyBytes) != ed25519.PublicKeySize {
		return ErrInvalidSignature
	}
	if gitcrypto.AddressFromPublicKey(pubkeyBytes) != tx.From {
		return ErrInvalidSignature
	}

	sig, err := util.HexToBytes(tx.Signature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !gitcrypto.Verify(pubkeyBytes, tx.SignableBytes(), sig) {
		return ErrInvalidSignature
	}
	return nil
}
