package order_repo

import (
	"context"
	"errors"
	"fmt"

	"CardCheckout/internal/domain/order"
	"CardCheckout/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.OrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var orderColumns = []string{
	"id", "number", "order_key", "user_id",
	"billing_first_name", "billing_last_name", "billing_email",
	"total::text", "currency", "status", "payment_method", "transaction_ref",
	"paid_at", "created_at", "updated_at",
}

func (r *repo) GetOrder(ctx context.Context, id string) (order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build select query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

func (r *repo) SetPaymentMethod(ctx context.Context, orderID, method string) error {
	query, args, err := r.builder.Update("orders").
		Set("payment_method", method).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *repo) MarkPaid(ctx context.Context, orderID, transactionRef string) error {
	query, args, err := r.builder.Update("orders").
		Set("status", string(order.StatusPaid)).
		Set("transaction_ref", transactionRef).
		Set("paid_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": orderID, "status": string(order.StatusPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Nothing was pending: tell a missing order apart from a second payment.
	if _, err := r.GetOrder(ctx, orderID); err != nil {
		return err
	}
	return order.ErrAlreadyPaid
}

func (r *repo) AddNote(ctx context.Context, orderID, body string) error {
	query, args, err := r.builder.Insert("order_notes").
		Columns("id", "order_id", "body").
		Values(uuid.NewString(), orderID, body).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert order note: %w", err)
	}
	return nil
}

func (r *repo) GetNotes(ctx context.Context, orderID string) ([]order.Note, error) {
	query, args, err := r.builder.Select("id", "order_id", "body", "created_at").
		From("order_notes").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order notes: %w", err)
	}
	defer rows.Close()

	return parseNoteRows(rows)
}

func (r *repo) SetMeta(ctx context.Context, orderID, key, value string) error {
	query, args, err := r.builder.Insert("order_meta").
		Columns("order_id", "key", "value").
		Values(orderID, key, value).
		Suffix("ON CONFLICT (order_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert order meta %s: %w", key, err)
	}
	return nil
}

func (r *repo) GetMeta(ctx context.Context, orderID string, keys ...string) (map[string]string, error) {
	q := r.builder.Select("key", "value").
		From("order_meta").
		Where(squirrel.Eq{"order_id": orderID})
	if len(keys) > 0 {
		q = q.Where(squirrel.Eq{"key": keys})
	}

	query, args, err := q.OrderBy("key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order meta: %w", err)
	}
	defer rows.Close()

	meta := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan order meta row: %w", err)
		}
		meta[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order meta rows: %w", err)
	}

	return meta, nil
}

// Helper functions
func parseOrderRow(row pgx.Row) (order.Order, error) {
	var (
		o         order.Order
		rawTotal  string
		rawStatus string
	)

	err := row.Scan(&o.ID, &o.Number, &o.Key, &o.UserID,
		&o.BillingFirstName, &o.BillingLastName, &o.BillingEmail,
		&rawTotal, &o.Currency, &rawStatus, &o.PaymentMethod, &o.TransactionRef,
		&o.PaidAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return order.Order{}, err
	}

	o.Total, err = decimal.NewFromString(rawTotal)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid total in database: %w", err)
	}

	o.Status, err = order.NewStatus(rawStatus)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid status in database: %w", err)
	}

	return o, nil
}

func parseNoteRows(rows pgx.Rows) ([]order.Note, error) {
	var notes []order.Note
	for rows.Next() {
		var n order.Note
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}

	return notes, nil
}
