package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/mddlabs/mddctl/internal/client/storage"
)

// SaveDraft inserts or overwrites a draft by ID
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.Draft) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		data, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("failed to marshal draft: %w", err)
		}

		if err := bucket.Put([]byte(draft.ID), data); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		return nil
	})
}

// GetDraft returns a draft by ID
func (s *Storage) GetDraft(ctx context.Context, id string) (*storage.Draft, error) {
	var draft *storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDraftNotFound
		}

		draft = &storage.Draft{}
		if err := json.Unmarshal(data, draft); err != nil {
			return fmt.Errorf("failed to unmarshal draft: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return draft, nil
}

// ListDrafts returns all drafts, most recently updated first
func (s *Storage) ListDrafts(ctx context.Context) ([]storage.Draft, error) {
	var drafts []storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var draft storage.Draft
			if err := json.Unmarshal(v, &draft); err != nil {
				return fmt.Errorf("failed to unmarshal draft %s: %w", k, err)
			}
			drafts = append(drafts, draft)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})

	return drafts, nil
}

// DeleteDraft removes a draft by ID
func (s *Storage) DeleteDraft(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrDraftNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}

		return nil
	})
}
