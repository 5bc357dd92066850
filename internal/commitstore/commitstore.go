// Package commitstore persists Merkle root commitments for storage-less
// verifiers: a verifier that never keeps a copy of a fragment can still
// validate proofs against a root recorded earlier by whichever party did
// hold the bytes. Roots are stored under an opaque caller-chosen key;
// proof.ValidateWithCommitment looks them up by challenge ID, so each root
// it checks against is the root over one challenge's sampled windows, not
// a single fragment-wide root.
package commitstore

import (
	"context"
	"errors"
	"fmt"

	ds "github.com/ipfs/go-datastore"
	leveldb "github.com/ipfs/go-ds-leveldb"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when no commitment is on file for a key.
var ErrNotFound = errors.New("commitstore: no commitment for key")

// Store maps a challenge or fragment key to its committed 32-byte Merkle
// root, backed by an embedded LevelDB instance.
type Store struct {
	db     *leveldb.Datastore
	logger *zap.Logger
}

// Open creates or attaches to a LevelDB-backed commitment store at path. A
// nil logger is replaced with a no-op logger.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := leveldb.NewDatastore(path, nil)
	if err != nil {
		return nil, fmt.Errorf("commitstore: open %s: %w", path, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Put records the commitment for key, overwriting any previous value.
func (s *Store) Put(ctx context.Context, key string, root [32]byte) error {
	if err := s.db.Put(ctx, ds.NewKey(key), root[:]); err != nil {
		return fmt.Errorf("commitstore: put %s: %w", key, err)
	}
	return nil
}

// Get retrieves the commitment for key, returning ErrNotFound if absent.
func (s *Store) Get(ctx context.Context, key string) ([32]byte, error) {
	var root [32]byte
	val, err := s.db.Get(ctx, ds.NewKey(key))
	if err != nil {
		if errors.Is(err, ds.ErrNotFound) {
			return root, ErrNotFound
		}
		return root, fmt.Errorf("commitstore: get %s: %w", key, err)
	}
	if len(val) != 32 {
		return root, fmt.Errorf("commitstore: corrupt commitment for %s: length %d", key, len(val))
	}
	copy(root[:], val)
	return root, nil
}

// Lookup adapts Get into the proof package's CommitmentLookup shape, logging
// and swallowing errors as "not found" since that function signature has no
// error channel.
func (s *Store) Lookup(ctx context.Context) func(key string) ([32]byte, bool) {
	return func(key string) ([32]byte, bool) {
		root, err := s.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				s.logger.Warn("commitstore lookup failed", zap.String("key", key), zap.Error(err))
			}
			return [32]byte{}, false
		}
		return root, true
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
