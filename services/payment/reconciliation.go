// Package payment derives payment-completion state from a shoot's financial
// fields and gates what each role may see of them.
package payment

import (
	"math"

	"shootflow/models"
)

// Epsilon absorbs floating rounding when deciding whether a balance is
// settled: one cent.
const Epsilon = 0.01

// roundCents normalizes a currency amount to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RemainingBalance is the outstanding amount on a shoot, floored at zero.
func RemainingBalance(p models.PaymentInfo) float64 {
	rem := roundCents(p.TotalQuote - p.TotalPaid)
	if rem < 0 {
		return 0
	}
	return rem
}

// IsPaid reports whether the balance is settled within Epsilon.
func IsPaid(p models.PaymentInfo) bool {
	return p.TotalQuote-p.TotalPaid <= Epsilon
}

// SummaryFor builds the full reconciliation view of one shoot.
func SummaryFor(rec models.ShootRecord) models.PaymentSummary {
	return models.PaymentSummary{
		ShootID:          rec.ID,
		BaseQuote:        rec.Payment.BaseQuote,
		TaxAmount:        rec.Payment.TaxAmount,
		TotalQuote:       rec.Payment.TotalQuote,
		TotalPaid:        rec.Payment.TotalPaid,
		RemainingBalance: RemainingBalance(rec.Payment),
		IsPaid:           IsPaid(rec.Payment),
	}
}

// StatusFor builds the trimmed view: the completion boolean, no amounts.
func StatusFor(rec models.ShootRecord) models.PaymentStatus {
	return models.PaymentStatus{
		ShootID: rec.ID,
		IsPaid:  IsPaid(rec.Payment),
	}
}

// ViewFor returns the payment view the given role is allowed to see. Full
// figures are for admin roles only; everyone else gets the boolean, which is
// enough to decide whether to offer a "Pay now" affordance.
func ViewFor(role models.Role, rec models.ShootRecord) any {
	if role.IsAdmin() {
		return SummaryFor(rec)
	}
	return StatusFor(rec)
}

// QuoteBatch filters a selection down to the shoots with an outstanding
// balance and totals the amount due over them.
func QuoteBatch(recs []models.ShootRecord) models.BatchQuote {
	quote := models.BatchQuote{EligibleShootIDs: []string{}}
	for _, rec := range recs {
		rem := RemainingBalance(rec.Payment)
		if rem > 0 {
			quote.EligibleShootIDs = append(quote.EligibleShootIDs, rec.ID)
			quote.TotalDue = roundCents(quote.TotalDue + rem)
		}
	}
	return quote
}
