package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.BlobStorage = (*SQLiteStorage)(nil)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);
`

// A SQLiteStorage keeps blobs in a single-table embedded database.
type SQLiteStorage struct {
	db *sqlx.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (SQLiteStorage, error) {
	const op = "SQLiteStorage"
	log := slog.With("op", op)

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return SQLiteStorage{}, fmt.Errorf("%s: %w", op, err)
	}

	s := SQLiteStorage{db}
	if err := db.PingContext(ctx); err != nil {
		return SQLiteStorage{}, fmt.Errorf(
			"%s: database is unavailable: %w", op, err,
		)
	}

	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		return SQLiteStorage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("database is available", "path", path)
	return s, nil
}

func (s SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "SQLiteStorage.Get"

	var value []byte
	query := `SELECT value FROM kv WHERE key = ?;`
	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %q: %w", op, key, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

func (s SQLiteStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "SQLiteStorage.Set"

	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s SQLiteStorage) Close() {
	const op = "SQLiteStorage.Close"
	log := slog.With("op", op)

	log.Info("closing sqlite database...")

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("sqlite database is closed")
}
