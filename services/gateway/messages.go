package gateway

import "shootflow/services/workflow"

// Confirmation messages, one per transition performed. Shown verbatim to the
// user after the remote authority confirms.
var confirmations = map[workflow.Transition]string{
	workflow.SubmitForReview:    "Shoot submitted for review.",
	workflow.Approve:            "Shoot approved and verified.",
	workflow.Reject:             "Shoot placed on hold with issue notes.",
	workflow.MarkIssuesResolved: "Issues marked as resolved and resubmitted for review.",
}

// RescheduleConfirmation is the fifth confirmation, used when an admin
// reschedule is applied in the same operation.
const RescheduleConfirmation = "Rescheduled successfully."

// ReschedulePendingConfirmation is shown when a non-admin request is recorded
// but awaits review.
const ReschedulePendingConfirmation = "Reschedule request submitted and awaiting review."

var bookingConfirmations = map[workflow.BookingAction]string{
	workflow.BookingCancel:  "Booking cancelled and placed on hold.",
	workflow.BookingConfirm: "Booking confirmed.",
}

// MarkPaidConfirmation confirms a manual settlement.
const MarkPaidConfirmation = "Payment recorded."

// fallbacks are the per-operation default error messages, substituted when the
// remote response carries no usable message field.
var fallbacks = map[workflow.Transition]string{
	workflow.SubmitForReview:    "Could not submit the shoot for review.",
	workflow.Approve:            "Could not approve the shoot.",
	workflow.Reject:             "Could not place the shoot on hold.",
	workflow.MarkIssuesResolved: "Could not resubmit the shoot.",
}

const (
	rescheduleFallback   = "Could not reschedule the shoot."
	bookingFallback      = "Could not update the booking."
	markPaidFallback     = "Could not record the payment."
	batchPaymentFallback = "Could not start the batch payment."
	fetchFallback        = "Could not load shoot data."
	transportMessage     = "Connection problem. Please check your network and try again."
)
