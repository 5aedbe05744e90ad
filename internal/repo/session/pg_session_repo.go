package session_repo

import (
	"context"
	"errors"
	"fmt"

	"CardCheckout/internal/domain/checkout"
	"CardCheckout/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgSessionRepo keeps per-session checkout values, keyed by session id.
type PgSessionRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgSessionRepo(pg *postgres.Postgres) checkout.SessionStore {
	return &PgSessionRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgSessionRepo) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	query, args, err := r.builder.Select("value").
		From("sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select query: %w", err)
	}

	var value string
	err = r.db.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query session value %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PgSessionRepo) Set(ctx context.Context, sessionID, key, value string) error {
	query, args, err := r.builder.Insert("sessions").
		Columns("session_id", "key", "value").
		Values(sessionID, key, value).
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert session value %s: %w", key, err)
	}
	return nil
}

func (r *PgSessionRepo) Delete(ctx context.Context, sessionID, key string) error {
	query, args, err := r.builder.Delete("sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session value %s: %w", key, err)
	}
	return nil
}
