package checkout

import "context"

//go:generate mockgen -source ports.go -destination mock_ports.go -package checkout

type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID, key string) error
}

type Cart interface {
	// Empty removes every item from the session's cart.
	Empty(ctx context.Context, sessionID string) error
}
