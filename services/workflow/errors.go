package workflow

import "fmt"

// Transition error codes.
const (
	CodeInvalidState  = "invalidState"
	CodeForbiddenRole = "forbiddenRole"
	CodeNotOwner      = "notOwner"
	CodeMissingNotes  = "missingNotes"
)

// TransitionError is a rejected transition. Rejections are always surfaced,
// never silently dropped.
type TransitionError struct {
	Code    string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newTransitionError(code, msg string) error {
	return &TransitionError{Code: code, Message: msg}
}

// AsTransitionError unwraps err into a TransitionError if it is one.
func AsTransitionError(err error) (*TransitionError, bool) {
	te, ok := err.(*TransitionError)
	return te, ok
}
