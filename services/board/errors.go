package board

import "fmt"

// Board error codes.
const (
	CodeInFlight        = "inFlight"
	CodeSessionNotFound = "sessionNotFound"
	CodeBadDialog       = "badDialog"
)

// BoardError is a surface-level failure: duplicate submission, stale session,
// illegal dialog move.
type BoardError struct {
	Code    string
	Message string
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBoardError(code, msg string) error {
	return &BoardError{Code: code, Message: msg}
}

// AsBoardError unwraps err into a BoardError if it is one.
func AsBoardError(err error) (*BoardError, bool) {
	be, ok := err.(*BoardError)
	return be, ok
}
