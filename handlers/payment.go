package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/models"
	"shootflow/services/payment"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the reconciliation views and settlement paths.
type PaymentHandler struct {
	Payments payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(p payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: p}
}

// ShootPaymentHandler returns the payment view of one shoot, trimmed to the
// caller's role.
func (h *PaymentHandler) ShootPaymentHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	view, err := h.Payments.ShootPaymentView(auth, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ReconciliationHandler returns the full figures for every shoot (admin only).
func (h *PaymentHandler) ReconciliationHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	summaries, err := h.Payments.Reconciliation(auth)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoots": summaries})
}

// QuoteBatchHandler computes eligibility and total due for a selection.
func (h *PaymentHandler) QuoteBatchHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	var input struct {
		ShootIDs []string `json:"shootIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	quote, err := h.Payments.QuoteSelection(auth, input.ShootIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// BatchCheckoutHandler registers a batch payment and returns the checkout
// location.
func (h *PaymentHandler) BatchCheckoutHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	var input struct {
		ShootIDs []string `json:"shootIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	checkout, err := h.Payments.StartBatchCheckout(c.Request.Context(), auth, input.ShootIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// MarkPaidHandler records a manual settlement for one shoot.
func (h *PaymentHandler) MarkPaidHandler(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	var input models.MarkPaidRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rec, msg, err := h.Payments.MarkPaid(c.Request.Context(), auth, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "shoot": rec})
}
