package storage

import (
	"context"
	"errors"

	"rental-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

const (
	selectItemSQL = `SELECT value FROM client_storage WHERE scope = $1 AND key = $2`
	upsertItemSQL = `INSERT INTO client_storage (scope, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(ctx, selectItemSQL, scope, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to read client storage item", err)
	}
	return v, true, nil
}

func (s *PostgresStore) SetItem(ctx context.Context, scope, key, value string) error {
	if _, err := s.db.Exec(ctx, upsertItemSQL, scope, key, value); err != nil {
		return infra.WrapRepoErr("failed to write client storage item", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
