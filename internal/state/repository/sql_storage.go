package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/allisson/passvault/internal/database"
)

// sqlDialect holds the statements that differ between SQL engines.
type sqlDialect struct {
	name   string
	get    string
	upsert string
	remove string
}

// sqlStorage stores values in the state_entries table.
//
// Remove runs inside a transaction so purging an account deletes all of its
// keys or none of them.
type sqlStorage struct {
	db        *sql.DB
	txManager database.TxManager
	dialect   sqlDialect
}

func (s *sqlStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	querier := database.GetTx(ctx, s.db)

	var value []byte
	err := querier.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: failed to get state entry: %w", s.dialect.name, err)
	}
	return value, true, nil
}

func (s *sqlStorage) Save(ctx context.Context, key string, value []byte) error {
	querier := database.GetTx(ctx, s.db)

	if _, err := querier.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("%s: failed to save state entry: %w", s.dialect.name, err)
	}
	return nil
}

func (s *sqlStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, s.db)
		for _, key := range keys {
			if _, err := querier.ExecContext(ctx, s.dialect.remove, key); err != nil {
				return fmt.Errorf("%s: failed to remove state entry: %w", s.dialect.name, err)
			}
		}
		return nil
	})
}
