package workflow

import (
	"fmt"
	"time"

	"shootflow/models"
)

// BookingAction is one of the coarse booking-dialog actions. These act on the
// booking-level status field only and are orthogonal to the production
// pipeline; reschedule is handled by the scheduling subsystem.
type BookingAction string

const (
	BookingCancel  BookingAction = "cancel"
	BookingConfirm BookingAction = "confirm"
)

// bookingTargets maps each action to the coarse status it commits.
var bookingTargets = map[BookingAction]models.BookingStatus{
	BookingCancel:  models.BookingHold,
	BookingConfirm: models.BookingScheduled,
}

// CanPerformBookingAction gates the booking dialog: scheduling decisions are
// an admin surface.
func CanPerformBookingAction(role models.Role, action BookingAction) bool {
	if _, ok := bookingTargets[action]; !ok {
		return false
	}
	return role.IsAdmin()
}

// ApplyBookingAction returns the record with the coarse status committed.
// The workflow status and side fields are untouched.
func ApplyBookingAction(rec models.ShootRecord, auth models.AuthContext, action BookingAction) (models.ShootRecord, error) {
	target, ok := bookingTargets[action]
	if !ok {
		return rec, newTransitionError(CodeInvalidState, fmt.Sprintf("unknown booking action %q", action))
	}
	if !CanPerformBookingAction(auth.Role, action) {
		return rec, newTransitionError(CodeForbiddenRole,
			fmt.Sprintf("role %q may not %s a booking", auth.Role, action))
	}
	rec.Status = target
	rec.UpdatedAt = time.Now()
	return rec, nil
}
