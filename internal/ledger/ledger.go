// Package ledger implements GitGold's append-only, single-writer token
// ledger: Mint/Burn/Transfer and the storage/challenge/bandwidth reward
// variants, replayed from durable storage on open, with balance and supply
// accounting kept consistent by construction.
package ledger

import (
	"fmt"
	"os"
	"sync"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/gitgold-project/gitgold-core/internal/merkle"
)

// Config governs economic parameters of a Ledger instance.
type Config struct {
	// SupplyCap is the maximum total minted micro-units over the ledger's
	// lifetime. Zero means uncapped.
	SupplyCap int64
}

// NewDefaultConfig returns an uncapped configuration.
func NewDefaultConfig() Config {
	return Config{SupplyCap: 0}
}

// Ledger is a durable, append-only transaction log with derived balance and
// supply state. It is single-writer, multi-reader: Append calls serialize
// on an exclusive lock, while Balance, Supply, and MerkleTree may run
// concurrently with each other and observe only committed state.
type Ledger struct {
	db      *bolt.DB
	logger  *zap.Logger
	tempDir string

	mu       sync.RWMutex
	balances *balanceTracker
	supply   *supplyTracker
	seen     map[string]struct{}
	txHashes [][32]byte
}

// Open creates or attaches to a durable ledger at path, replaying any
// persisted transactions to rebuild balances, supply, and the seen-id set.
// A nil logger is replaced with a no-op logger.
func Open(path string, cfg Config, logger *zap.Logger) (*Ledger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		db:       db,
		logger:   logger,
		balances: newBalanceTracker(),
		supply:   newSupplyTracker(cfg.SupplyCap),
		seen:     make(map[string]struct{}),
	}

	if err := l.replay(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("ledger opened", zap.String("path", path), zap.Int("tx_count", len(l.txHashes)))
	return l, nil
}

// InMemory creates a ledger backed by a private temporary file that is
// removed when the Ledger is closed. It behaves identically to a durable
// ledger while open; the temporary path is not exposed, so its contents
// cannot be reopened.
func InMemory(cfg Config, logger *zap.Logger) (*Ledger, error) {
	dir, err := os.MkdirTemp("", "gitgold-ledger-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %v", ErrDatabase, err)
	}
	l, err := Open(dir+"/ledger.db", cfg, logger)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	l.tempDir = dir
	return l, nil
}

func (l *Ledger) replay() error {
	return replayAll(l.db, func(tx *Transaction) error {
		if err := applyEffect(l.balances, l.supply, tx); err != nil {
			return fmt.Errorf("%w: replaying tx %s: %v", ErrCorrupt, tx.TxID, err)
		}
		l.seen[tx.TxID] = struct{}{}
		l.txHashes = append(l.txHashes, tx.Hash())
		return nil
	})
}

// Append validates tx and, if valid, commits it durably and updates
// in-memory state. Validation and persistence happen against working
// copies of the balance and supply trackers; in-memory state is mutated
// only after the write has been durably committed, so a persistence
// failure leaves the ledger's observable state unchanged.
func (l *Ledger) Append(tx *Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := tx.verify(); err != nil {
		return err
	}
	if _, dup := l.seen[tx.TxID]; dup {
		return ErrDuplicateTransaction
	}

	workingBalances := l.balances.clone()
	workingSupply := l.supply.clone()
	if err := applyEffect(workingBalances, workingSupply, tx); err != nil {
		return err
	}

	if err := persist(l.db, tx); err != nil {
		return err
	}

	l.balances = workingBalances
	l.supply = workingSupply
	l.seen[tx.TxID] = struct{}{}
	l.txHashes = append(l.txHashes, tx.Hash())
	return nil
}

// Balance returns addr's current micro-unit balance.
func (l *Ledger) Balance(addr string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances.balance(addr)
}

// Supply reports total minted and burned micro-units.
func (l *Ledger) Supply() (minted, burned int64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supply.minted, l.supply.burned
}

// TxCount returns the number of transactions recorded so far.
func (l *Ledger) TxCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txHashes)
}

// MerkleTree returns a Merkle tree over every transaction's hash, in
// insertion order, suitable for external attestation of ledger history.
func (l *Ledger) MerkleTree() *merkle.Tree {
	l.mu.RLock()
	defer l.mu.RUnlock()
	hashes := make([][32]byte, len(l.txHashes))
	copy(hashes, l.txHashes)
	return merkle.BuildFromHashes(hashes)
}

// Close releases the ledger's database handle, removing the backing file
// if this instance was created with InMemory.
func (l *Ledger) Close() error {
	err := l.db.Close()
	if l.tempDir != "" {
		os.RemoveAll(l.tempDir)
	}
	return err
}
