package gateway

import "fmt"

// Error kinds. Each failure mode carries a distinct, user-facing message and
// a distinct recovery story: precondition and validation failures need
// corrected input, transport failures are user-retryable, authorization
// failures are not retryable at all.
type ErrorKind string

const (
	KindPrecondition  ErrorKind = "precondition"
	KindTransport     ErrorKind = "transport"
	KindAuthorization ErrorKind = "authorization"
	KindValidation    ErrorKind = "validation"
)

// GatewayError is a classified failure from a remote submission.
type GatewayError struct {
	Kind    ErrorKind
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newGatewayError(kind ErrorKind, msg string) error {
	return &GatewayError{Kind: kind, Message: msg}
}

// AsGatewayError unwraps err into a GatewayError if it is one.
func AsGatewayError(err error) (*GatewayError, bool) {
	ge, ok := err.(*GatewayError)
	return ge, ok
}

// ErrNoAuthToken is the fail-fast precondition failure raised before any
// network call when the session carries no bearer token.
var ErrNoAuthToken = &GatewayError{
	Kind:    KindPrecondition,
	Message: "You are not signed in. Please sign in and try again.",
}
