package payment

import "fmt"

// Payment error codes.
const (
	CodeForbidden  = "forbidden"
	CodeBadAmount  = "badAmount"
	CodeNoCheckout = "noCheckout"
	CodeEmptyBatch = "emptyBatch"
)

// PaymentError is a client-side payment failure.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newPaymentError(code, msg string) error {
	return &PaymentError{Code: code, Message: msg}
}

// AsPaymentError unwraps err into a PaymentError if it is one.
func AsPaymentError(err error) (*PaymentError, bool) {
	pe, ok := err.(*PaymentError)
	return pe, ok
}
