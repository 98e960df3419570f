package models

import "time"

// RescheduleStatus is the resolution state of a reschedule request.
type RescheduleStatus string

const (
	ReschedulePending  RescheduleStatus = "pending"
	RescheduleApproved RescheduleStatus = "approved"
	RescheduleRejected RescheduleStatus = "rejected"
)

// RescheduleRequest is a date/time change request against a shoot. It holds a
// back-reference to the shoot, never ownership, and is resolved exactly once.
// The shoot's committed date changes only through the explicit approval path.
type RescheduleRequest struct {
	ID            string           `bson:"id" json:"id"`
	ShootID       string           `bson:"shoot_id" json:"shootId"`
	OriginalDate  string           `bson:"original_date" json:"originalDate"`
	RequestedDate string           `bson:"requested_date" json:"requestedDate"`
	RequestedTime string           `bson:"requested_time" json:"requestedTime"`
	Reason        string           `bson:"reason,omitempty" json:"reason,omitempty"`
	Status        RescheduleStatus `bson:"status" json:"status"`
	RequestedBy   string           `bson:"requested_by" json:"requestedBy"`
	RequesterRole Role             `bson:"requester_role" json:"requesterRole"`
	CreatedAt     time.Time        `bson:"created_at" json:"createdAt"`
	ResolvedAt    *time.Time       `bson:"resolved_at,omitempty" json:"resolvedAt,omitempty"`
}

// Resolved reports whether the request has reached a terminal status.
func (r *RescheduleRequest) Resolved() bool {
	return r.Status != ReschedulePending
}
