package health

import "context"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connectivity.
type PostgresChecker struct {
	pool Pinger
}

func NewPostgresChecker(pool Pinger) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string {
	return "postgres"
}

// Check pings the PostgreSQL database.
func (c *PostgresChecker) Check(ctx context.Context) Result {
	if err := c.pool.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
