package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/services/board"
	"shootflow/services/workflow"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

// ShootHandler serves the workflow board and its action surfaces.
type ShootHandler struct {
	Board board.BoardService
}

// NewShootHandler constructs a ShootHandler.
func NewShootHandler(b board.BoardService) *ShootHandler {
	return &ShootHandler{Board: b}
}

// ListShootsHandler returns the board list scoped to the caller's role.
func (h *ShootHandler) ListShootsHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	items, err := h.Board.ListShoots(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoots": items})
}

// GetShootHandler returns one board item.
func (h *ShootHandler) GetShootHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	item, err := h.Board.GetShoot(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// TransitionHandler submits one workflow transition named in the route.
func (h *ShootHandler) TransitionHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	t, err := workflow.ParseTransition(c.Param("transition"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Unknown transition", err.Error())
		return
	}

	var input struct {
		AdminIssueNotes string `json:"adminIssueNotes"`
	}
	if t == workflow.Reject {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	rec, msg, err := h.Board.PerformTransition(c.Request.Context(), auth, c.Param("id"), t, input.AdminIssueNotes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "shoot": rec})
}

// BookingActionHandler submits a coarse booking action (cancel/confirm).
func (h *ShootHandler) BookingActionHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	action := workflow.BookingAction(c.Param("action"))

	rec, msg, err := h.Board.PerformBookingAction(c.Request.Context(), auth, c.Param("id"), action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "shoot": rec})
}

// OpenSessionHandler starts a board session for a shoot.
func (h *ShootHandler) OpenSessionHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	var input struct {
		ShootID string `json:"shootId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Board.OpenSession(c.Request.Context(), auth, input.ShootID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetDialogHandler moves the session's dialog state machine.
func (h *ShootHandler) SetDialogHandler(c *gin.Context) {
	var input struct {
		Dialog string `json:"dialog" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Board.SetDialog(c.Request.Context(), c.Param("sessionID"), board.DialogState(input.Dialog))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CloseSessionHandler discards a board session.
func (h *ShootHandler) CloseSessionHandler(c *gin.Context) {
	if err := h.Board.CloseSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}
