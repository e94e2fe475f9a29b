package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"chat-activity-service/internal/activity/core/domain"
	"chat-activity-service/internal/activity/core/ports"
)

// SnapshotUseCase persists and restores the store. Persist shares the
// ingest mutex: encoding runs under a read lock, so registration is
// paused for the duration and the document is a consistent point-in-time
// copy.
type SnapshotUseCase struct {
	mu    *sync.RWMutex
	repo  ports.SnapshotRepositoryPort
	codec ports.SnapshotCodecPort
	key   string
	store *domain.AggregationStore
}

func NewSnapshotUseCase(mu *sync.RWMutex, repo ports.SnapshotRepositoryPort, codec ports.SnapshotCodecPort, key string) *SnapshotUseCase {
	return &SnapshotUseCase{mu: mu, repo: repo, codec: codec, key: key}
}

// Restore loads the snapshot for the configured key. A missing snapshot
// is recoverable and yields a fresh empty store; a corrupt one is
// returned as an error for the caller to treat as fatal.
func (uc *SnapshotUseCase) Restore(ctx context.Context) (*domain.AggregationStore, error) {
	doc, err := uc.repo.Load(ctx, uc.key)
	if errors.Is(err, ports.ErrSnapshotNotFound) {
		uc.store = domain.NewAggregationStore(uc.key)
		return uc.store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", uc.key, err)
	}

	store, err := uc.codec.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", uc.key, err)
	}

	uc.store = store
	return store, nil
}

// Persist writes the current store state. Restore must have run first.
func (uc *SnapshotUseCase) Persist(ctx context.Context) error {
	if uc.store == nil {
		return errors.New("snapshot: no store bound, call Restore first")
	}

	uc.mu.RLock()
	doc, err := uc.codec.Encode(uc.store)
	uc.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", uc.key, err)
	}

	if err := uc.repo.Save(ctx, uc.key, doc); err != nil {
		return fmt.Errorf("save snapshot %q: %w", uc.key, err)
	}

	return nil
}
