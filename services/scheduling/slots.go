package scheduling

import "time"

// dateLayout is the committed shoot date format.
const dateLayout = "2006-01-02"

// timeSlots is the fixed set of bookable start times. Slot collisions against
// existing bookings are the authority's call, not computed here.
var timeSlots = []string{
	"08:00 AM",
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

// AvailableSlots returns the bookable start times.
func AvailableSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidSlot reports whether the given time is one of the bookable slots.
func ValidSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// validateDate parses a candidate date and rejects anything strictly before
// local midnight today. Today itself is valid.
func validateDate(date string, now time.Time) error {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return newScheduleError(CodeBadDate, "date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return newScheduleError(CodePastDate, "cannot reschedule to a past date")
	}
	return nil
}
