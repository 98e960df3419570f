package board

import "time"

// DialogState tracks which dialog a board session has open. Modelled as an
// explicit state machine rather than independent booleans so two dialogs can
// never be open at once.
type DialogState string

const (
	DialogNone       DialogState = "none"
	DialogActions    DialogState = "actions"
	DialogReschedule DialogState = "reschedule"
)

// dialogMoves lists the legal dialog changes. The reschedule dialog is only
// reachable through the actions dialog and may go back to it.
var dialogMoves = map[DialogState][]DialogState{
	DialogNone:       {DialogActions},
	DialogActions:    {DialogReschedule, DialogNone},
	DialogReschedule: {DialogActions, DialogNone},
}

// canMoveDialog reports whether the dialog may change from one state to
// another.
func canMoveDialog(from, to DialogState) bool {
	for _, next := range dialogMoves[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Session is one user's open board surface for one shoot, cached in Redis for
// the lifetime of the interaction.
type Session struct {
	ID        string      `json:"id"`
	ShootID   string      `json:"shootId"`
	UserID    string      `json:"userId"`
	Dialog    DialogState `json:"dialog"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
