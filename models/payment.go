package models

import "time"

// PaymentSummary is the full reconciliation view of one shoot. Exposed to
// admin roles only.
type PaymentSummary struct {
	ShootID          string  `json:"shootId"`
	BaseQuote        float64 `json:"baseQuote"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalQuote       float64 `json:"totalQuote"`
	TotalPaid        float64 `json:"totalPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
	IsPaid           bool    `json:"isPaid"`
}

// PaymentStatus is the trimmed view for non-admin roles: the completion
// boolean alone, never the underlying amounts.
type PaymentStatus struct {
	ShootID string `json:"shootId"`
	IsPaid  bool   `json:"isPaid"`
}

// BatchQuote is the eligible subset and amount due for a batch payment
// selection.
type BatchQuote struct {
	EligibleShootIDs []string `json:"eligibleShootIds"`
	TotalDue         float64  `json:"totalDue"`
}

// BatchCheckout points the caller at an externally-hosted checkout for a
// registered batch. Completion is observed later by re-fetch, not here.
type BatchCheckout struct {
	BatchID     string    `json:"batchId"`
	ShootIDs    []string  `json:"shootIds"`
	TotalDue    float64   `json:"totalDue"`
	CheckoutURL string    `json:"checkoutUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MarkPaidRequest is the manual settlement input for one shoot.
type MarkPaidRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"` // "cash", "card", "transfer"
}
