package order

import "errors"

var (
	// ErrNotFound is returned when order is not found
	ErrNotFound = errors.New("order not found")

	// ErrAlreadyPaid is returned when a paid order is marked paid again
	ErrAlreadyPaid = errors.New("order is already paid")

	// ErrInvalidStatus is returned when a stored status is unknown
	ErrInvalidStatus = errors.New("invalid order status")
)
