package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mddlabs/mddctl/internal/client/storage"
)

var sessionKey = []byte("cookies")

// SaveSession stores the session cookies, replacing any previous set
func (s *Storage) SaveSession(ctx context.Context, cookies []storage.Cookie) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(cookies)
		if err != nil {
			return fmt.Errorf("failed to marshal session cookies: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session cookies: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session cookies
func (s *Storage) GetSession(ctx context.Context) ([]storage.Cookie, error) {
	var cookies []storage.Cookie

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		if err := json.Unmarshal(data, &cookies); err != nil {
			return fmt.Errorf("failed to unmarshal session cookies: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return cookies, nil
}

// DeleteSession removes the stored session cookies
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(sessionKey) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session cookies: %w", err)
		}

		return nil
	})
}
