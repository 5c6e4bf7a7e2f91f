package repositories

import (
	"context"
	"io"
	"time"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
)

// StoredObject describes one object in the audio bucket
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// AudioStorage is the object store holding recorded answers
type AudioStorage interface {
	// Upload stores an object under key
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Open streams an object; the caller closes it
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// List returns the objects under prefix
	List(ctx context.Context, prefix string) ([]StoredObject, error)

	// Remove deletes an object
	Remove(ctx context.Context, key string) error

	// PresignedURL returns a time-limited playback URL
	PresignedURL(ctx context.Context, key string) (string, error)
}

// DraftRepository persists intake form drafts
type DraftRepository interface {
	// Get returns the draft, nil when absent or expired
	Get(ctx context.Context, id string) (*entities.FormDraft, error)

	// Save stores the draft for ttl
	Save(ctx context.Context, draft *entities.FormDraft, ttl time.Duration) error

	// Delete removes the draft; deleting a missing draft is not an error
	Delete(ctx context.Context, id string) error
}
