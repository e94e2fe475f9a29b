package postgres

import (
	"context"
	"database/sql"
	"errors"

	"chat-activity-service/internal/activity/core/ports"
)

// SnapshotRepository keeps one snapshot document per store key in
// Postgres, overwritten on every save.
type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.SnapshotRepositoryPort = (*SnapshotRepository)(nil)

// SQL templates
const upsertSnapshotSQL = `
INSERT INTO snapshots (store_key, doc, taken_at)
VALUES ($1, $2, now())
ON CONFLICT (store_key) DO UPDATE
SET doc = EXCLUDED.doc, taken_at = now();
`

const selectSnapshotSQL = `
SELECT doc FROM snapshots WHERE store_key = $1;
`

func (r *SnapshotRepository) Save(ctx context.Context, key string, doc []byte) error {
	_, err := r.db.ExecContext(ctx, upsertSnapshotSQL, key, doc)
	return err
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var doc []byte

	err := r.db.QueryRowContext(ctx, selectSnapshotSQL, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}
