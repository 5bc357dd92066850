package ledger

import "github.com/gitgold-project/gitgold-core/internal/gitcrypto"

// applyEffect mutates bal and sup according to tx's effect table entry. It
// is used both to replay persisted history on open and, against working
// copies, to validate a new transaction before it is committed.
func applyEffect(bal *balanceTracker, sup *supplyTracker, tx *Transaction) error {
	switch tx.TxType {
	case TxMint:
		if err := sup.mint(tx.Amount); err != nil {
			return err
		}
		bal.credit(tx.To, tx.Amount)
		return nil

	case TxBurn:
		if err := bal.debit(tx.From, tx.Amount); err != nil {
			return err
		}
		sup.burn(tx.Amount)
		return nil

	case TxTransfer, TxPushFee, TxPullFee, TxStorageReward, TxChallengeReward, TxBandwidthReward:
		if tx.From == gitcrypto.SystemAddress {
			if err := sup.mint(tx.Amount); err != nil {
				return err
			}
			bal.credit(tx.To, tx.Amount)
			return nil
		}
		if err := bal.debit(tx.From, tx.Amount); err != nil {
			return err
		}
		bal.credit(tx.To, tx.Amount)
		return nil

	default:
		return &InvalidTransactionError{Reason: "unrecognized tx_type: " + string(tx.TxType)}
	}
}
