package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds one readiness round across all checkers.
const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker reports the state of one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// CheckFunc adapts a plain function to Checker.
type CheckFunc struct {
	name string
	fn   func(ctx context.Context) Result
}

func NewCheckFunc(name string, fn func(ctx context.Context) Result) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

func (c CheckFunc) Name() string {
	return c.name
}

func (c CheckFunc) Check(ctx context.Context) Result {
	return c.fn(ctx)
}
