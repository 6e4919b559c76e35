package tokens

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fletes/internal/dbx"
)

// Store is the slot storage handed to the session. Multi-slot changes run in
// one transaction.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, slot string) (string, error) {
	return NewSQLiteRepository(s.db).Get(ctx, slot)
}

func (s *Store) Set(ctx context.Context, slot, value string) error {
	return NewSQLiteRepository(s.db).Set(ctx, slot, value)
}

// Clear empties every named slot, all or nothing.
func (s *Store) Clear(ctx context.Context, slots ...string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for _, slot := range slots {
			if err := repo.Delete(ctx, slot); err != nil {
				return err
			}
		}
		return nil
	})
}
