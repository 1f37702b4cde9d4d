package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const (
	boltBucket = "vendora"
	boltKey    = "datastore"
)

// BoltBackend stores the document under a fixed key in a bbolt bucket. The
// whole-document contract is unchanged; bbolt contributes atomic writes and
// an OS-level file lock, so a second process fails to open instead of
// silently clobbering.
type BoltBackend struct {
	db *bolt.DB
}

// NewBoltBackend opens (or creates) the database file at path.
func NewBoltBackend(path string) (*BoltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt database")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init bolt bucket")
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Load() ([]byte, error) {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(boltKey))
		if v != nil {
			// The slice is only valid inside the transaction.
			raw = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read bolt database")
	}
	return raw, nil
}

func (b *BoltBackend) Save(data []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(boltKey), data)
	})
	return errors.Wrap(err, "write bolt database")
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
