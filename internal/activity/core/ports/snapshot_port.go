package ports

import (
	"context"
	"errors"

	"chat-activity-service/internal/activity/core/domain"
)

var (
	// ErrSnapshotNotFound means no snapshot exists for the key yet.
	// Recoverable: the caller starts with an empty store.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotCorrupt means a snapshot exists but cannot be decoded.
	// Fatal at startup.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
)

// SnapshotRepositoryPort persists the encoded store document, one
// document per store key, last write wins.
type SnapshotRepositoryPort interface {
	Save(ctx context.Context, key string, doc []byte) error
	// Load:
	//   doc, nil                  -> snapshot exists
	//   nil, ErrSnapshotNotFound  -> no snapshot for key
	//   nil, other err            -> storage error
	Load(ctx context.Context, key string) ([]byte, error)
}

// SnapshotCodecPort round-trips a store through an opaque document.
// Decode must preserve every nested map and timestamp, and must return
// ErrSnapshotCorrupt (wrapped) on malformed input.
type SnapshotCodecPort interface {
	Encode(store *domain.AggregationStore) ([]byte, error)
	Decode(doc []byte) (*domain.AggregationStore, error)
}
