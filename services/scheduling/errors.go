package scheduling

import "fmt"

// Scheduling error codes.
const (
	CodePastDate    = "pastDate"
	CodeBadDate     = "badDate"
	CodeInvalidSlot = "invalidSlot"
	CodeForbidden   = "forbidden"
	CodeNotPending  = "notPending"
)

// ScheduleError is a client-side rescheduling failure, raised before any
// network call.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newScheduleError(code, msg string) error {
	return &ScheduleError{Code: code, Message: msg}
}

// AsScheduleError unwraps err into a ScheduleError if it is one.
func AsScheduleError(err error) (*ScheduleError, bool) {
	se, ok := err.(*ScheduleError)
	return se, ok
}
