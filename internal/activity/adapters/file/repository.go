// Package file is the snapshot store for deployments without Postgres:
// one JSON document per store key under a data directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"chat-activity-service/internal/activity/core/ports"
)

type SnapshotRepository struct {
	dir string
}

func NewSnapshotRepository(dir string) *SnapshotRepository {
	return &SnapshotRepository{dir: dir}
}

var _ ports.SnapshotRepositoryPort = (*SnapshotRepository)(nil)

func (r *SnapshotRepository) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, doc []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a truncated
	// document behind.
	tmp := r.path(key) + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, r.path(key))
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	doc, err := os.ReadFile(r.path(key))
	if os.IsNotExist(err) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}
