// Package boltdb implements the local draft store on BoltDB.
package boltdb

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	bucketDrafts  = []byte("drafts")
	bucketSession = []byte("session")
)

// Storage represents the BoltDB-backed client storage
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the database file at dbPath.
func New(dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketDrafts, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", bucket, err)
			}
		}
		return nil
	})
}
