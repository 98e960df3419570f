package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/services/scheduling"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

// RescheduleHandler serves the rescheduling subsystem.
type RescheduleHandler struct {
	Scheduling scheduling.ReschedulingService
}

// NewRescheduleHandler constructs a RescheduleHandler.
func NewRescheduleHandler(s scheduling.ReschedulingService) *RescheduleHandler {
	return &RescheduleHandler{Scheduling: s}
}

// GetSlotsHandler returns the fixed set of bookable time slots.
func (h *RescheduleHandler) GetSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": scheduling.AvailableSlots()})
}

// RequestRescheduleHandler records a date/time change request for a shoot.
func (h *RescheduleHandler) RequestRescheduleHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	var input struct {
		RequestedDate string `json:"requestedDate" binding:"required"`
		RequestedTime string `json:"requestedTime" binding:"required"`
		Reason        string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, msg, err := h.Scheduling.RequestReschedule(c.Request.Context(), auth, c.Param("id"),
		input.RequestedDate, input.RequestedTime, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "request": req})
}

// ListShootRequestsHandler returns the request history for a shoot.
func (h *RescheduleHandler) ListShootRequestsHandler(c *gin.Context) {
	reqs, err := h.Scheduling.ListByShoot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// ListPendingRequestsHandler returns all unresolved requests (admin review queue).
func (h *RescheduleHandler) ListPendingRequestsHandler(c *gin.Context) {
	reqs, err := h.Scheduling.ListPending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// ApproveRequestHandler resolves a pending request in the requester's favor.
func (h *RescheduleHandler) ApproveRequestHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	rec, msg, err := h.Scheduling.ApproveRequest(c.Request.Context(), auth, c.Param("requestID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "shoot": rec})
}

// RejectRequestHandler resolves a pending request against the requester.
func (h *RescheduleHandler) RejectRequestHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	if err := h.Scheduling.RejectRequest(c.Request.Context(), auth, c.Param("requestID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reschedule request rejected."})
}
