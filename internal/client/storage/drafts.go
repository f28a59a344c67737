package storage

import (
	"context"
	"time"
)

// Draft is an article kept locally until the author publishes it. Drafts
// never leave the machine; publishing goes through the regular article
// gateway and deletes the draft on success.
type Draft struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TopicID   string    `json:"topic_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DraftStorage defines the local draft store.
type DraftStorage interface {
	// SaveDraft inserts or overwrites a draft by ID
	SaveDraft(ctx context.Context, draft *Draft) error

	// GetDraft returns a draft by ID.
	// Returns ErrDraftNotFound if it does not exist
	GetDraft(ctx context.Context, id string) (*Draft, error)

	// ListDrafts returns all drafts, most recently updated first
	ListDrafts(ctx context.Context) ([]Draft, error)

	// DeleteDraft removes a draft by ID.
	// Returns ErrDraftNotFound if it does not exist
	DeleteDraft(ctx context.Context, id string) error
}
