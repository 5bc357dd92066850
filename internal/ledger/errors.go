package ledger

import (
	"errors"
	"fmt"
)

// ErrDatabase wraps a failure of the underlying persistence layer.
var ErrDatabase = errors.New("ledger: database error")

// ErrInvalidSignature is returned when a transaction's address does not
// match its claimed public key, or its signature does not verify.
var ErrInvalidSignature = errors.New("ledger: invalid signature")

// ErrDuplicateTransaction is returned when a transaction's tx_id has
// already been recorded.
var ErrDuplicateTransaction = errors.New("ledger: duplicate transaction id")

// ErrInsufficientBalance is returned when a debit would leave a balance
// negative.
var ErrInsufficientBalance = errors.New("ledger: insufficient balance")

// ErrSupplyCapExceeded is returned when a mint would push total minted
// supply past the configured cap.
var ErrSupplyCapExceeded = errors.New("ledger: supply cap exceeded")

// ErrCorrupt is returned when persisted ledger state cannot be replayed.
var ErrCorrupt = errors.New("ledger: corrupt persisted state")

// InvalidTransactionError reports a structurally invalid transaction (bad
// tx_type, negative amount, and so on) together with the offending reason.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("ledger: invalid transaction: %s", e.Reason)
}
