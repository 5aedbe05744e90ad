package order_repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"CardCheckout/internal/domain/order"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id", "number", "order_key", "user_id",
	"billing_first_name", "billing_last_name", "billing_email",
	"total", "currency", "status", "payment_method", "transaction_ref",
	"paid_at", "created_at", "updated_at",
}

const selectOrderSQL = `SELECT id, number, order_key, user_id, billing_first_name, billing_last_name, billing_email, total::text, currency, status, payment_method, transaction_ref, paid_at, created_at, updated_at FROM orders WHERE id = $1`

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)

	t.Run("should return order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := mock.NewRows(orderRowColumns).
			AddRow("1001", "1001", "wc_order_abc", "42", "Ada", "Lovelace", "ada@example.com",
				"49.99", "USD", "pending", "", "", (*time.Time)(nil), createdAt, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(selectOrderSQL)).
			WithArgs("1001").
			WillReturnRows(rows)

		o, err := repo.GetOrder(ctx, "1001")

		require.NoError(t, err)
		assert.Equal(t, "wc_order_abc", o.Key)
		assert.True(t, decimal.RequireFromString("49.99").Equal(o.Total))
		assert.Equal(t, order.StatusPending, o.Status)
		assert.Nil(t, o.PaidAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map missing row to ErrNotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectOrderSQL)).
			WithArgs("404").
			WillReturnRows(mock.NewRows(orderRowColumns))

		_, err := repo.GetOrder(ctx, "404")

		assert.ErrorIs(t, err, order.ErrNotFound)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := mock.NewRows(orderRowColumns).
			AddRow("1001", "1001", "k", "42", "", "", "", "1.00", "USD", "refunded", "", "",
				(*time.Time)(nil), createdAt, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(selectOrderSQL)).WithArgs("1001").WillReturnRows(rows)

		_, err := repo.GetOrder(ctx, "1001")

		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	updateSQL := `UPDATE orders SET status = \$1, transaction_ref = \$2, paid_at = now\(\), updated_at = now\(\) WHERE .*id = \$3 AND status = \$4`
	createdAt := time.Now()

	t.Run("should mark pending order paid", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(updateSQL).
			WithArgs("paid", "T-1", "1001", "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkPaid(ctx, "1001", "T-1")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should refuse a second transition", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		paidAt := time.Now()

		mock.ExpectExec(updateSQL).
			WithArgs("paid", "T-2", "1001", "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(selectOrderSQL)).
			WithArgs("1001").
			WillReturnRows(mock.NewRows(orderRowColumns).
				AddRow("1001", "1001", "k", "42", "", "", "", "49.99", "USD", "paid", "globalpayments", "T-1",
					&paidAt, createdAt, createdAt))

		err := repo.MarkPaid(ctx, "1001", "T-2")

		assert.ErrorIs(t, err, order.ErrAlreadyPaid)
	})

	t.Run("should report missing order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(updateSQL).
			WithArgs("paid", "T-1", "404", "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(selectOrderSQL)).
			WithArgs("404").
			WillReturnRows(mock.NewRows(orderRowColumns))

		err := repo.MarkPaid(ctx, "404", "T-1")

		assert.ErrorIs(t, err, order.ErrNotFound)
	})

	t.Run("should wrap database error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(updateSQL).WillReturnError(assert.AnError)

		err := repo.MarkPaid(ctx, "1001", "T-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mark order paid")
	})
}

func TestSetPaymentMethod(t *testing.T) {
	ctx := context.Background()
	updateSQL := regexp.QuoteMeta(`UPDATE orders SET payment_method = $1, updated_at = now() WHERE id = $2`)

	t.Run("should update method", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(updateSQL).
			WithArgs("globalpayments", "1001").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.SetPaymentMethod(ctx, "1001", "globalpayments"))
	})

	t.Run("should report missing order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(updateSQL).
			WithArgs("globalpayments", "404").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.SetPaymentMethod(ctx, "404", "globalpayments"), order.ErrNotFound)
	})
}

func TestNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("should insert note with generated id", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_notes (id,order_id,body) VALUES ($1,$2,$3)`)).
			WithArgs(pgxmock.AnyArg(), "1001", "Payment Failure: Card declined").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.AddNote(ctx, "1001", "Payment Failure: Card declined")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should list notes oldest first", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		at := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, order_id, body, created_at FROM order_notes WHERE order_id = $1 ORDER BY created_at ASC`)).
			WithArgs("1001").
			WillReturnRows(mock.NewRows([]string{"id", "order_id", "body", "created_at"}).
				AddRow("n-1", "1001", "Payment Failure: Card declined", at).
				AddRow("n-2", "1001", "Card payment completed", at.Add(time.Minute)))

		notes, err := repo.GetNotes(ctx, "1001")

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "n-1", notes[0].ID)
		assert.Equal(t, "Card payment completed", notes[1].Body)
	})
}

func TestMeta(t *testing.T) {
	ctx := context.Background()

	t.Run("should upsert a key", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_meta (order_id,key,value) VALUES ($1,$2,$3) ON CONFLICT (order_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`)).
			WithArgs("1001", "_charge_id", "T-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.SetMeta(ctx, "1001", "_charge_id", "T-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should read requested keys", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM order_meta WHERE order_id = $1 AND key IN ($2,$3) ORDER BY key`)).
			WithArgs("1001", "_charge_id", "_auth_code").
			WillReturnRows(mock.NewRows([]string{"key", "value"}).
				AddRow("_auth_code", "A-9").
				AddRow("_charge_id", "T-1"))

		meta, err := repo.GetMeta(ctx, "1001", "_charge_id", "_auth_code")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"_charge_id": "T-1", "_auth_code": "A-9"}, meta)
	})

	t.Run("should read all keys", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM order_meta WHERE order_id = $1 ORDER BY key`)).
			WithArgs("1001").
			WillReturnRows(mock.NewRows([]string{"key", "value"}))

		meta, err := repo.GetMeta(ctx, "1001")

		require.NoError(t, err)
		assert.Empty(t, meta)
	})
}
