package board

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogMovesAreGated(t *testing.T) {
	cases := []struct {
		from, to DialogState
		ok       bool
	}{
		{DialogNone, DialogActions, true},
		{DialogActions, DialogReschedule, true},
		{DialogActions, DialogNone, true},
		{DialogReschedule, DialogActions, true},
		{DialogReschedule, DialogNone, true},

		// The reschedule dialog is never reachable directly.
		{DialogNone, DialogReschedule, false},
		{DialogNone, DialogNone, false},
		{DialogActions, DialogActions, false},
		{DialogReschedule, DialogReschedule, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, canMoveDialog(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func boardShoot() models.ShootRecord {
	return models.ShootRecord{
		ID:              "s1",
		Status:          models.BookingScheduled,
		WorkflowStatus:  models.WorkflowOnHold,
		IsFlagged:       true,
		AdminIssueNotes: "missing bedroom photos",
		ScheduledDate:   "2025-06-20",
		Time:            "10:00 AM",
		Client:          models.Party{ID: "client-1", Name: "Dana"},
		Photographer:    models.Party{ID: "photog-1", Name: "Sam"},
		Payment: models.PaymentInfo{
			TotalQuote: 450.00,
			TotalPaid:  150.00,
		},
	}
}

func TestBuildItemHidesNotesAndAmountsFromClients(t *testing.T) {
	svc := &DefaultBoardService{}
	auth := models.AuthContext{UserID: "client-1", Role: models.RoleClient}

	item := svc.buildItem(auth, boardShoot(), false)

	assert.Empty(t, item.AdminIssueNotes)
	status, ok := item.Payment.(models.PaymentStatus)
	require.True(t, ok, "clients get the completion boolean, not amounts")
	assert.False(t, status.IsPaid)
}

func TestBuildItemShowsFullContextToAdmins(t *testing.T) {
	svc := &DefaultBoardService{}
	auth := models.AuthContext{UserID: "admin-1", Role: models.RoleAdmin}

	item := svc.buildItem(auth, boardShoot(), false)

	assert.Equal(t, "missing bedroom photos", item.AdminIssueNotes)
	summary, ok := item.Payment.(models.PaymentSummary)
	require.True(t, ok)
	assert.InDelta(t, 300.00, summary.RemainingBalance, 0.001)
	assert.True(t, item.IsFlagged)
}

func TestBuildItemOffersActionsByRole(t *testing.T) {
	svc := &DefaultBoardService{}

	// The assigned photographer on a held shoot may resolve the issues.
	owner := models.AuthContext{UserID: "photog-1", Role: models.RolePhotographer}
	item := svc.buildItem(owner, boardShoot(), false)
	assert.Contains(t, item.Actions, "mark-issues-resolved")

	// Another photographer gets no controls on it.
	other := models.AuthContext{UserID: "photog-2", Role: models.RolePhotographer}
	item = svc.buildItem(other, boardShoot(), false)
	assert.Empty(t, item.Actions)
}

func TestBuildItemWithholdsActionsWhileInFlight(t *testing.T) {
	svc := &DefaultBoardService{}
	auth := models.AuthContext{UserID: "photog-1", Role: models.RolePhotographer}

	item := svc.buildItem(auth, boardShoot(), true)
	assert.True(t, item.InFlight)
	assert.Empty(t, item.Actions)
}

func TestBuildItemDefaultsWorkflowStatus(t *testing.T) {
	svc := &DefaultBoardService{}
	rec := boardShoot()
	rec.WorkflowStatus = ""

	item := svc.buildItem(models.AuthContext{Role: models.RoleAdmin}, rec, false)
	assert.Equal(t, models.WorkflowBooked, item.WorkflowStatus)
}
