package cart_repo

import (
	"context"
	"fmt"
	"log/slog"

	"CardCheckout/internal/domain/checkout"
	"CardCheckout/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

type PgCartRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgCartRepo(pg *postgres.Postgres) checkout.Cart {
	return &PgCartRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgCartRepo) Empty(ctx context.Context, sessionID string) error {
	query, args, err := r.builder.Delete("cart_items").
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("empty cart: %w", err)
	}

	slog.DebugContext(ctx, "Cart emptied", "session_id", sessionID, "items", tag.RowsAffected())
	return nil
}
