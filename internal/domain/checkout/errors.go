package checkout

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidAppointmentDate is returned when a date value cannot be parsed
	ErrInvalidAppointmentDate = errors.New("invalid appointment date")

	// ErrMethodNotRegistered is returned when an order refers to an unknown payment method
	ErrMethodNotRegistered = errors.New("payment method not registered")
)

// Kind classifies every failure a payment method can report to the pipeline.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidationFailed
	KindGatewayRejected
	KindConfigurationMissing
	// KindChargeNotFound marks a refund against an order that has no recorded charge.
	KindChargeNotFound
	// KindStoreFailure marks an order store write that failed after the gateway accepted the charge.
	KindStoreFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation_failed"
	case KindGatewayRejected:
		return "gateway_rejected"
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindChargeNotFound:
		return "charge_not_found"
	case KindStoreFailure:
		return "store_failure"
	default:
		return "unknown"
	}
}

// FieldError is a user-visible message bound to one checkout field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case len(e.Fields) > 0:
		msgs := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			msgs = append(msgs, f.Message)
		}
		return strings.Join(msgs, " ")
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
