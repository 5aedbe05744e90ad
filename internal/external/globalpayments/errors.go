package globalpayments

import "errors"

var (
	// ErrDeclined is returned when the processor answers with a non-approval code
	ErrDeclined = errors.New("transaction declined")

	// ErrUnauthorized is returned when the processor rejects the API keys
	ErrUnauthorized = errors.New("gateway rejected credentials")

	// ErrInvalidRequest is returned for any other 4xx answer
	ErrInvalidRequest = errors.New("gateway rejected request")

	// ErrUnavailable is returned when the processor cannot be reached or answers with 5xx
	ErrUnavailable = errors.New("gateway unavailable")
)

// GatewayError carries the processor's own message, which is shown to shoppers as is.
type GatewayError struct {
	Code    string
	Message string

	kind  error
	cause error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() []error {
	errs := []error{e.kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}
