package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fletes/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, slot string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM auth_tokens WHERE slot = ?`, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token slot %q: %w", slot, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, slot, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (slot, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, slot, value)
	if err != nil {
		return fmt.Errorf("failed to set token slot %q: %w", slot, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, slot string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("failed to delete token slot %q: %w", slot, err)
	}
	return nil
}
