package order

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package order

type OrderRepo interface {
	TxOrderRepo
	InTransaction(ctx context.Context, fn func(repo TxOrderRepo) error) error
}

type TxOrderRepo interface {
	// GetOrder returns ErrNotFound when no order has the given id.
	GetOrder(ctx context.Context, id string) (Order, error)
	SetPaymentMethod(ctx context.Context, orderID, method string) error
	// MarkPaid moves a pending order to paid. Returns ErrAlreadyPaid when the
	// order is not pending, so the transition happens at most once.
	MarkPaid(ctx context.Context, orderID, transactionRef string) error

	AddNote(ctx context.Context, orderID, body string) error
	GetNotes(ctx context.Context, orderID string) ([]Note, error)

	// SetMeta upserts one metadata entry; the last write wins.
	SetMeta(ctx context.Context, orderID, key, value string) error
	// GetMeta returns the requested keys that exist. With no keys it returns all of them.
	GetMeta(ctx context.Context, orderID string, keys ...string) (map[string]string, error)
}
