package models

import "time"

// BookingStatus is the coarse booking-level lifecycle tag of a shoot. It is
// mutated by the booking action dialog (cancel/confirm) independently of the
// production pipeline.
type BookingStatus string

const (
	BookingHold      BookingStatus = "hold"
	BookingScheduled BookingStatus = "scheduled"
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
)

// WorkflowStatus is the fine-grained production-pipeline state of a shoot.
type WorkflowStatus string

const (
	WorkflowBooked          WorkflowStatus = "booked"
	WorkflowRawUploaded     WorkflowStatus = "raw_uploaded"
	WorkflowEditingComplete WorkflowStatus = "editing_complete"
	WorkflowPendingReview   WorkflowStatus = "pending_review"
	WorkflowOnHold          WorkflowStatus = "on_hold"
	WorkflowAdminVerified   WorkflowStatus = "admin_verified"
	WorkflowCompleted       WorkflowStatus = "completed"
)

// PaymentInfo carries the financial fields of a shoot. TotalPaid never
// decreases once payment begins.
type PaymentInfo struct {
	BaseQuote       float64    `bson:"base_quote" json:"baseQuote"`
	TaxAmount       float64    `bson:"tax_amount" json:"taxAmount"`
	TotalQuote      float64    `bson:"total_quote" json:"totalQuote"`
	TotalPaid       float64    `bson:"total_paid" json:"totalPaid"`
	LastPaymentDate *time.Time `bson:"last_payment_date,omitempty" json:"lastPaymentDate,omitempty"`
	LastPaymentType string     `bson:"last_payment_type,omitempty" json:"lastPaymentType,omitempty"`
}

// Party is a referenced client or photographer. Ownership is by reference;
// the shoot never embeds mutable party state.
type Party struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// ShootRecord represents one booked shoot and its mutable workflow fields.
// Records are created at booking time and only ever advanced or rolled back
// through named transition operations, never by direct field assignment.
type ShootRecord struct {
	ID              string         `bson:"id" json:"id"`
	Status          BookingStatus  `bson:"status" json:"status"`
	WorkflowStatus  WorkflowStatus `bson:"workflow_status" json:"workflowStatus"`
	IsFlagged       bool           `bson:"is_flagged" json:"isFlagged"`
	AdminIssueNotes string         `bson:"admin_issue_notes,omitempty" json:"adminIssueNotes,omitempty"`

	ScheduledDate string `bson:"scheduled_date" json:"scheduledDate"` // "2006-01-02"
	Time          string `bson:"time" json:"time"`

	// Media counts maintained by the upload pipeline. Surfaced as a board hint
	// for reviewers; not a transition guard.
	MissingRaw   bool `bson:"missing_raw,omitempty" json:"missingRaw,omitempty"`
	MissingFinal bool `bson:"missing_final,omitempty" json:"missingFinal,omitempty"`

	Payment      PaymentInfo `bson:"payment" json:"payment"`
	Client       Party       `bson:"client" json:"client"`
	Photographer Party       `bson:"photographer" json:"photographer"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// EffectiveWorkflowStatus returns the workflow status, defaulting to booked
// when the remote record carries none.
func (s *ShootRecord) EffectiveWorkflowStatus() WorkflowStatus {
	if s.WorkflowStatus == "" {
		return WorkflowBooked
	}
	return s.WorkflowStatus
}

// OwnedBy reports whether the given user is the assigned photographer.
func (s *ShootRecord) OwnedBy(userID string) bool {
	return s.Photographer.ID == userID
}
