package ledger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	bolt "go.etcd.io/bbolt"
)

var (
	bySeqBucket   = []byte("by_seq")
	txIndexBucket = []byte("tx_index")
)

func openDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDatabase, path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bySeqBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(txIndexBucket); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", ErrDatabase, err)
	}
	return db, nil
}

// persist appends tx under the next sequence number, atomically recording
// both the ordered row and the tx_id index used for duplicate detection.
func persist(db *bolt.DB, tx *Transaction) error {
	encoded, err := cbor.Marshal(tx)
	if err != nil {
		return fmt.Errorf("%w: encode transaction: %v", ErrDatabase, err)
	}

	return db.Update(func(btx *bolt.Tx) error {
		seqBucket := btx.Bucket(bySeqBucket)
		indexBucket := btx.Bucket(txIndexBucket)

		if v := indexBucket.Get([]byte(tx.TxID)); v != nil {
			return ErrDuplicateTransaction
		}

		seq, err := seqBucket.NextSequence()
		if err != nil {
			return fmt.Errorf("%w: next sequence: %v", ErrDatabase, err)
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := seqBucket.Put(key, encoded); err != nil {
			return fmt.Errorf("%w: put row: %v", ErrDatabase, err)
		}
		if err := indexBucket.Put([]byte(tx.TxID), key); err != nil {
			return fmt.Errorf("%w: put index: %v", ErrDatabase, err)
		}
		return nil
	})
}

// replayAll walks every persisted transaction in insertion order, invoking
// fn for each. A decode failure is reported as ErrCorrupt.
func replayAll(db *bolt.DB, fn func(*Transaction) error) error {
	return db.View(func(btx *bolt.Tx) error {
		seqBucket := btx.Bucket(bySeqBucket)
		return seqBucket.ForEach(func(k, v []byte) error {
			var tx Transaction
			if err := cbor.Unmarshal(v, &tx); err != nil {
				return fmt.Errorf("%w: decode row: %v", ErrCorrupt, err)
			}
			return fn(&tx)
		})
	})
}
