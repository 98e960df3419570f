package payment

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
)

func shootWithBalance(id string, quote, paid float64) models.ShootRecord {
	return models.ShootRecord{
		ID: id,
		Payment: models.PaymentInfo{
			TotalQuote: quote,
			TotalPaid:  paid,
		},
	}
}

func TestRemainingBalanceAndIsPaid(t *testing.T) {
	cases := []struct {
		name      string
		quote     float64
		paid      float64
		remaining float64
		paidUp    bool
	}{
		{"fully settled", 291.50, 291.50, 0.00, true},
		{"unpaid", 450.00, 0, 450.00, false},
		{"partial", 100.00, 60.00, 40.00, false},
		{"within epsilon", 100.00, 99.995, 0.01, true},
		{"one cent short of epsilon", 100.00, 99.98, 0.02, false},
		{"overpaid floors at zero", 100.00, 120.00, 0.00, true},
		{"zero quote", 0, 0, 0.00, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := models.PaymentInfo{TotalQuote: tc.quote, TotalPaid: tc.paid}
			assert.InDelta(t, tc.remaining, RemainingBalance(p), 0.001)
			assert.Equal(t, tc.paidUp, IsPaid(p))
		})
	}
}

func TestQuoteBatchExcludesSettledShoots(t *testing.T) {
	recs := []models.ShootRecord{
		shootWithBalance("s1", 110.00, 100.00), // 10.00 due
		shootWithBalance("s2", 200.00, 200.00), // settled
		shootWithBalance("s3", 300.50, 275.00), // 25.50 due
	}

	quote := QuoteBatch(recs)
	assert.Equal(t, []string{"s1", "s3"}, quote.EligibleShootIDs)
	assert.InDelta(t, 35.50, quote.TotalDue, 0.001)
}

func TestQuoteBatchEmptySelection(t *testing.T) {
	quote := QuoteBatch(nil)
	assert.Empty(t, quote.EligibleShootIDs)
	assert.Zero(t, quote.TotalDue)
}

func TestViewForGatesAmountsByRole(t *testing.T) {
	rec := shootWithBalance("s1", 291.50, 100.00)
	rec.Payment.BaseQuote = 250.00
	rec.Payment.TaxAmount = 41.50

	adminView := ViewFor(models.RoleAdmin, rec)
	summary, ok := adminView.(models.PaymentSummary)
	assert.True(t, ok)
	assert.InDelta(t, 191.50, summary.RemainingBalance, 0.001)
	assert.InDelta(t, 250.00, summary.BaseQuote, 0.001)

	// Clients and photographers get the boolean only, never amounts.
	for _, role := range []models.Role{models.RoleClient, models.RolePhotographer, models.RoleEditor} {
		view := ViewFor(role, rec)
		status, ok := view.(models.PaymentStatus)
		assert.True(t, ok, "role %s should get the trimmed view", role)
		assert.False(t, status.IsPaid)
	}
}
