// Package workflow is the production pipeline state machine for shoots:
// valid states, legal transitions and the role guards attached to each.
// It is pure logic with no I/O; the gateway and the board both consult it.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"shootflow/models"
)

// Transition names the four production-pipeline events. The wire names match
// the remote authority's endpoints.
type Transition string

const (
	SubmitForReview    Transition = "submit-for-review"
	Approve            Transition = "approve"
	Reject             Transition = "reject"
	MarkIssuesResolved Transition = "mark-issues-resolved"
)

// rule is one row of the transition table.
type rule struct {
	from  []models.WorkflowStatus
	to    models.WorkflowStatus
	roles []models.Role
	// ownerOnly restricts the transition to the shoot's assigned photographer.
	ownerOnly bool
}

var transitionTable = map[Transition]rule{
	SubmitForReview: {
		from:      []models.WorkflowStatus{models.WorkflowRawUploaded, models.WorkflowEditingComplete, models.WorkflowOnHold},
		to:        models.WorkflowPendingReview,
		roles:     []models.Role{models.RolePhotographer},
		ownerOnly: true,
	},
	Approve: {
		from:  []models.WorkflowStatus{models.WorkflowPendingReview},
		to:    models.WorkflowAdminVerified,
		roles: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
	},
	Reject: {
		from:  []models.WorkflowStatus{models.WorkflowPendingReview},
		to:    models.WorkflowOnHold,
		roles: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
	},
	MarkIssuesResolved: {
		from:      []models.WorkflowStatus{models.WorkflowOnHold},
		to:        models.WorkflowPendingReview,
		roles:     []models.Role{models.RolePhotographer},
		ownerOnly: true,
	},
}

// ParseTransition maps a wire name onto a known Transition.
func ParseTransition(raw string) (Transition, error) {
	switch Transition(raw) {
	case SubmitForReview, Approve, Reject, MarkIssuesResolved:
		return Transition(raw), nil
	default:
		return "", fmt.Errorf("unknown transition %q", raw)
	}
}

// TargetStatus returns the state a transition lands in.
func TargetStatus(t Transition) (models.WorkflowStatus, bool) {
	r, ok := transitionTable[t]
	if !ok {
		return "", false
	}
	return r.to, true
}

// CanPerform is the single implementation of the (state, role) guard table.
// Both the board's control gating and the gateway's pre-flight check call it.
func CanPerform(role models.Role, t Transition, status models.WorkflowStatus) bool {
	r, ok := transitionTable[t]
	if !ok {
		return false
	}
	if !statusIn(status, r.from) {
		return false
	}
	for _, allowed := range r.roles {
		if role == allowed {
			return true
		}
	}
	return false
}

// AllowedTransitions lists the transitions the caller may trigger on the
// record right now. The board uses it to decide which controls to render.
func AllowedTransitions(auth models.AuthContext, rec models.ShootRecord) []Transition {
	ordered := []Transition{SubmitForReview, Approve, Reject, MarkIssuesResolved}
	status := rec.EffectiveWorkflowStatus()
	var out []Transition
	for _, t := range ordered {
		if !CanPerform(auth.Role, t, status) {
			continue
		}
		if transitionTable[t].ownerOnly && !rec.OwnedBy(auth.UserID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Apply validates a transition against the guard table and returns the
// advanced record, side fields included. The input record is not mutated:
// callers persist the returned copy only after the remote authority confirms.
func Apply(rec models.ShootRecord, auth models.AuthContext, t Transition, notes string) (models.ShootRecord, error) {
	r, ok := transitionTable[t]
	if !ok {
		return rec, newTransitionError(CodeInvalidState, fmt.Sprintf("unknown transition %q", t))
	}

	status := rec.EffectiveWorkflowStatus()
	if !statusIn(status, r.from) {
		return rec, newTransitionError(CodeInvalidState,
			fmt.Sprintf("cannot %s a shoot in state %q", t, status))
	}
	if !CanPerform(auth.Role, t, status) {
		return rec, newTransitionError(CodeForbiddenRole,
			fmt.Sprintf("role %q may not %s", auth.Role, t))
	}
	if r.ownerOnly && !rec.OwnedBy(auth.UserID) {
		return rec, newTransitionError(CodeNotOwner, "only the assigned photographer may do this")
	}

	switch t {
	case Reject:
		if strings.TrimSpace(notes) == "" {
			return rec, newTransitionError(CodeMissingNotes, "issue notes are required to reject")
		}
		rec.IsFlagged = true
		rec.AdminIssueNotes = notes
	case MarkIssuesResolved:
		if !rec.IsFlagged || strings.TrimSpace(rec.AdminIssueNotes) == "" {
			return rec, newTransitionError(CodeInvalidState, "shoot is not flagged with issues")
		}
		// Flag and notes survive resubmission so the photographer keeps the
		// reviewer's context if rejected again. Approve clears both.
	case Approve:
		rec.IsFlagged = false
		rec.AdminIssueNotes = ""
	}

	rec.WorkflowStatus = r.to
	rec.UpdatedAt = time.Now()
	return rec, nil
}

func statusIn(status models.WorkflowStatus, set []models.WorkflowStatus) bool {
	for _, s := range set {
		if status == s {
			return true
		}
	}
	return false
}
