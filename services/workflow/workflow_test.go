package workflow

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShoot(status models.WorkflowStatus) models.ShootRecord {
	return models.ShootRecord{
		ID:             "shoot-1",
		Status:         models.BookingScheduled,
		WorkflowStatus: status,
		Photographer:   models.Party{ID: "photo-1", Name: "Ava"},
		Client:         models.Party{ID: "client-1", Name: "Oak Realty"},
	}
}

func photographerAuth() models.AuthContext {
	return models.AuthContext{UserID: "photo-1", Role: models.RolePhotographer, Token: "t"}
}

func adminAuth() models.AuthContext {
	return models.AuthContext{UserID: "admin-1", Role: models.RoleAdmin, Token: "t"}
}

func TestCanPerformGuardTable(t *testing.T) {
	cases := []struct {
		name       string
		role       models.Role
		transition Transition
		status     models.WorkflowStatus
		want       bool
	}{
		{"photographer submits raw upload", models.RolePhotographer, SubmitForReview, models.WorkflowRawUploaded, true},
		{"photographer submits edited shoot", models.RolePhotographer, SubmitForReview, models.WorkflowEditingComplete, true},
		{"photographer resubmits from hold", models.RolePhotographer, SubmitForReview, models.WorkflowOnHold, true},
		{"photographer cannot submit booked shoot", models.RolePhotographer, SubmitForReview, models.WorkflowBooked, false},
		{"admin cannot submit for review", models.RoleAdmin, SubmitForReview, models.WorkflowEditingComplete, false},
		{"admin approves pending review", models.RoleAdmin, Approve, models.WorkflowPendingReview, true},
		{"superadmin approves pending review", models.RoleSuperAdmin, Approve, models.WorkflowPendingReview, true},
		{"photographer cannot approve", models.RolePhotographer, Approve, models.WorkflowPendingReview, false},
		{"client cannot approve", models.RoleClient, Approve, models.WorkflowPendingReview, false},
		{"admin rejects pending review", models.RoleAdmin, Reject, models.WorkflowPendingReview, true},
		{"admin cannot reject a verified shoot", models.RoleAdmin, Reject, models.WorkflowAdminVerified, false},
		{"photographer resolves issues on hold", models.RolePhotographer, MarkIssuesResolved, models.WorkflowOnHold, true},
		{"admin cannot mark issues resolved", models.RoleAdmin, MarkIssuesResolved, models.WorkflowOnHold, false},
		{"editor has no transitions", models.RoleEditor, SubmitForReview, models.WorkflowEditingComplete, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanPerform(tc.role, tc.transition, tc.status))
		})
	}
}

func TestRejectRequiresNotes(t *testing.T) {
	rec := testShoot(models.WorkflowPendingReview)

	_, err := Apply(rec, adminAuth(), Reject, "")
	require.Error(t, err)
	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingNotes, te.Code)

	// Whitespace is not notes.
	_, err = Apply(rec, adminAuth(), Reject, "   ")
	require.Error(t, err)

	// The record is untouched on rejection.
	assert.Equal(t, models.WorkflowPendingReview, rec.WorkflowStatus)
	assert.False(t, rec.IsFlagged)
}

func TestRejectSetsFlagAndNotes(t *testing.T) {
	rec := testShoot(models.WorkflowPendingReview)

	got, err := Apply(rec, adminAuth(), Reject, "missing bedroom photos")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowOnHold, got.WorkflowStatus)
	assert.True(t, got.IsFlagged)
	assert.Equal(t, "missing bedroom photos", got.AdminIssueNotes)
}

func TestMarkIssuesResolvedPreservesContext(t *testing.T) {
	rec := testShoot(models.WorkflowOnHold)
	rec.IsFlagged = true
	rec.AdminIssueNotes = "missing bedroom photos"

	got, err := Apply(rec, photographerAuth(), MarkIssuesResolved, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowPendingReview, got.WorkflowStatus)
	// Flag and notes survive resubmission; only approve clears them.
	assert.True(t, got.IsFlagged)
	assert.Equal(t, "missing bedroom photos", got.AdminIssueNotes)
}

func TestMarkIssuesResolvedRequiresFlag(t *testing.T) {
	rec := testShoot(models.WorkflowOnHold)
	rec.IsFlagged = false

	_, err := Apply(rec, photographerAuth(), MarkIssuesResolved, "")
	require.Error(t, err)
	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidState, te.Code)
}

func TestApproveClearsFlagAndNotes(t *testing.T) {
	rec := testShoot(models.WorkflowPendingReview)
	rec.IsFlagged = true
	rec.AdminIssueNotes = "missing bedroom photos"

	got, err := Apply(rec, adminAuth(), Approve, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowAdminVerified, got.WorkflowStatus)
	assert.False(t, got.IsFlagged)
	assert.Empty(t, got.AdminIssueNotes)
}

func TestSubmitOwnershipGuard(t *testing.T) {
	rec := testShoot(models.WorkflowEditingComplete)

	other := models.AuthContext{UserID: "photo-2", Role: models.RolePhotographer, Token: "t"}
	_, err := Apply(rec, other, SubmitForReview, "")
	require.Error(t, err)
	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotOwner, te.Code)
}

func TestForbiddenRoleIsRejectedNotNoOp(t *testing.T) {
	rec := testShoot(models.WorkflowPendingReview)

	_, err := Apply(rec, models.AuthContext{UserID: "client-1", Role: models.RoleClient, Token: "t"}, Approve, "")
	require.Error(t, err)
	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, CodeForbiddenRole, te.Code)
}

func TestDefaultWorkflowStatusIsBooked(t *testing.T) {
	rec := testShoot("")
	assert.Equal(t, models.WorkflowBooked, rec.EffectiveWorkflowStatus())

	_, err := Apply(rec, photographerAuth(), SubmitForReview, "")
	require.Error(t, err)
}

// Full review cycle: submit, reject with notes, resolve, approve.
func TestReviewCycleScenario(t *testing.T) {
	rec := testShoot(models.WorkflowEditingComplete)

	rec, err := Apply(rec, photographerAuth(), SubmitForReview, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowPendingReview, rec.WorkflowStatus)

	rec, err = Apply(rec, adminAuth(), Reject, "missing bedroom photos")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowOnHold, rec.WorkflowStatus)
	assert.True(t, rec.IsFlagged)
	assert.Equal(t, "missing bedroom photos", rec.AdminIssueNotes)

	rec, err = Apply(rec, photographerAuth(), MarkIssuesResolved, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowPendingReview, rec.WorkflowStatus)
	assert.True(t, rec.IsFlagged)
	assert.Equal(t, "missing bedroom photos", rec.AdminIssueNotes)

	rec, err = Apply(rec, adminAuth(), Approve, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowAdminVerified, rec.WorkflowStatus)
	assert.False(t, rec.IsFlagged)
	assert.Empty(t, rec.AdminIssueNotes)
}

func TestAllowedTransitions(t *testing.T) {
	rec := testShoot(models.WorkflowOnHold)
	rec.IsFlagged = true
	rec.AdminIssueNotes = "fix exposure"

	got := AllowedTransitions(photographerAuth(), rec)
	assert.Equal(t, []Transition{SubmitForReview, MarkIssuesResolved}, got)

	// A photographer who does not own the shoot gets nothing.
	other := models.AuthContext{UserID: "photo-2", Role: models.RolePhotographer}
	assert.Empty(t, AllowedTransitions(other, rec))

	rec.WorkflowStatus = models.WorkflowPendingReview
	assert.Equal(t, []Transition{Approve, Reject}, AllowedTransitions(adminAuth(), rec))
}

func TestBookingActions(t *testing.T) {
	rec := testShoot(models.WorkflowEditingComplete)

	got, err := ApplyBookingAction(rec, adminAuth(), BookingCancel)
	require.NoError(t, err)
	assert.Equal(t, models.BookingHold, got.Status)
	// The production pipeline is untouched by booking actions.
	assert.Equal(t, models.WorkflowEditingComplete, got.WorkflowStatus)

	got, err = ApplyBookingAction(rec, adminAuth(), BookingConfirm)
	require.NoError(t, err)
	assert.Equal(t, models.BookingScheduled, got.Status)

	_, err = ApplyBookingAction(rec, photographerAuth(), BookingCancel)
	require.Error(t, err)
	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, CodeForbiddenRole, te.Code)
}
