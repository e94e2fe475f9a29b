package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"chat-activity-service/internal/activity/core/ports"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct{}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return 1, nil
}

// fakeRow implements Row for tests.
type fakeRow struct {
	ScanFn func(dest ...any) error
}

func (f *fakeRow) Scan(dest ...any) error {
	return f.ScanFn(dest...)
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowFn func(ctx context.Context, query string, args ...any) Row
	lastQuery  string
	lastArgs   []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{}, nil
}

func (f *fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) Row {
	f.lastQuery = query
	f.lastArgs = args
	return f.QueryRowFn(ctx, query, args...)
}

// ------------------------------------------------------------
// SAVE UPSERTS UNDER THE STORE KEY
// ------------------------------------------------------------

func TestSnapshotRepository_Save(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO snapshots") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "ON CONFLICT (store_key) DO UPDATE") {
				t.Fatalf("save must be an upsert: %s", query)
			}
			return &fakeResult{}, nil
		},
	}

	repo := NewSnapshotRepository(db)

	if err := repo.Save(context.Background(), "ws", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.lastArgs) != 2 {
		t.Fatalf("expected 2 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != "ws" {
		t.Fatalf("expected key arg 'ws', got %v", db.lastArgs[0])
	}
}

// ------------------------------------------------------------
// LOAD: FOUND
// ------------------------------------------------------------

func TestSnapshotRepository_Load(t *testing.T) {
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) Row {
			return &fakeRow{
				ScanFn: func(dest ...any) error {
					*(dest[0].(*[]byte)) = []byte(`{"version":1}`)
					return nil
				},
			}
		},
	}

	repo := NewSnapshotRepository(db)

	doc, err := repo.Load(context.Background(), "ws")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(doc) != `{"version":1}` {
		t.Fatalf("unexpected doc: %s", doc)
	}
}

// ------------------------------------------------------------
// LOAD: NOT FOUND
// ------------------------------------------------------------

func TestSnapshotRepository_LoadNotFound(t *testing.T) {
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) Row {
			return &fakeRow{
				ScanFn: func(dest ...any) error {
					return sql.ErrNoRows
				},
			}
		},
	}

	repo := NewSnapshotRepository(db)

	_, err := repo.Load(context.Background(), "ws")
	if !errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

// ------------------------------------------------------------
// LOAD: DB ERROR
// ------------------------------------------------------------

func TestSnapshotRepository_LoadError(t *testing.T) {
	dbErr := errors.New("db error")
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) Row {
			return &fakeRow{
				ScanFn: func(dest ...any) error {
					return dbErr
				},
			}
		},
	}

	repo := NewSnapshotRepository(db)

	_, err := repo.Load(context.Background(), "ws")
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("a db error must not look like not-found")
	}
}
