package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Backend is the key-value text storage the record stores persist to.
type Backend interface {
	// Get returns the stored text for key, or false when no value exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// SQLBackend persists each key as a row in the records table.
type SQLBackend struct {
	db *sql.DB
}

func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(ctx context.Context, key string) (string, bool, error) {
	row := b.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		err := fmt.Errorf("could not read record %q: %w", key, err)
		log.Error(err)
		return "", false, err
	}
	return value, true, nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO records (key, value, updated_at)
			  VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := b.db.ExecContext(ctx, query, key, value); err != nil {
		err := fmt.Errorf("could not write record %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (b *SQLBackend) Remove(ctx context.Context, key string) error {
	if _, err := b.db.ExecContext(ctx, "DELETE FROM records WHERE key = ?", key); err != nil {
		err := fmt.Errorf("could not delete record %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
