package handlers

import (
	"errors"
	"net/http"

	"shootflow/services/board"
	"shootflow/services/gateway"
	"shootflow/services/payment"
	"shootflow/services/scheduling"
	"shootflow/services/workflow"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps service errors onto HTTP statuses with the user-facing
// message intact.
func respondError(c *gin.Context, err error) {
	if te, ok := workflow.AsTransitionError(err); ok {
		switch te.Code {
		case workflow.CodeMissingNotes:
			utils.JSONError(c, http.StatusBadRequest, te.Message, te.Code)
		case workflow.CodeForbiddenRole, workflow.CodeNotOwner:
			utils.JSONError(c, http.StatusForbidden, te.Message, te.Code)
		default:
			utils.JSONError(c, http.StatusConflict, te.Message, te.Code)
		}
		return
	}

	if ge, ok := gateway.AsGatewayError(err); ok {
		switch {
		case errors.Is(err, gateway.ErrNoAuthToken):
			utils.JSONError(c, http.StatusUnauthorized, ge.Message, string(ge.Kind))
		case ge.Kind == gateway.KindAuthorization:
			utils.JSONError(c, http.StatusForbidden, ge.Message, string(ge.Kind))
		case ge.Kind == gateway.KindTransport:
			utils.JSONError(c, http.StatusBadGateway, ge.Message, string(ge.Kind))
		default:
			utils.JSONError(c, http.StatusBadRequest, ge.Message, string(ge.Kind))
		}
		return
	}

	if se, ok := scheduling.AsScheduleError(err); ok {
		switch se.Code {
		case scheduling.CodeForbidden:
			utils.JSONError(c, http.StatusForbidden, se.Message, se.Code)
		case scheduling.CodeNotPending:
			utils.JSONError(c, http.StatusConflict, se.Message, se.Code)
		default:
			utils.JSONError(c, http.StatusBadRequest, se.Message, se.Code)
		}
		return
	}

	if pe, ok := payment.AsPaymentError(err); ok {
		if pe.Code == payment.CodeForbidden {
			utils.JSONError(c, http.StatusForbidden, pe.Message, pe.Code)
		} else {
			utils.JSONError(c, http.StatusBadRequest, pe.Message, pe.Code)
		}
		return
	}

	if be, ok := board.AsBoardError(err); ok {
		switch be.Code {
		case board.CodeSessionNotFound:
			utils.JSONError(c, http.StatusNotFound, be.Message, be.Code)
		default:
			utils.JSONError(c, http.StatusConflict, be.Message, be.Code)
		}
		return
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "Shoot not found", err.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", err.Error())
}
