// Package gateway is the boundary between local workflow logic and the remote
// shoot authority. It translates transition requests into HTTP calls, attaches
// the session's bearer token, and classifies every outcome into the error
// taxonomy. Only a confirmed success response carries new state back.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shootflow/config"
	"shootflow/models"
	"shootflow/services/workflow"

	"go.uber.org/zap"
)

// Gateway submits workflow operations to the remote authority.
type Gateway interface {
	SubmitTransition(ctx context.Context, auth models.AuthContext, shootID string, t workflow.Transition, notes string) (*models.ShootRecord, string, error)
	SubmitBookingAction(ctx context.Context, auth models.AuthContext, shootID string, action workflow.BookingAction) (*models.ShootRecord, string, error)
	Reschedule(ctx context.Context, auth models.AuthContext, shootID, date, timeSlot, reason string) (*models.ShootRecord, string, error)
	MarkPaid(ctx context.Context, auth models.AuthContext, shootID string, req models.MarkPaidRequest) (*models.ShootRecord, string, error)
	RegisterBatchPayment(ctx context.Context, auth models.AuthContext, shootIDs []string) (string, error)
	FetchShoot(ctx context.Context, auth models.AuthContext, shootID string) (*models.ShootRecord, error)
	FetchShoots(ctx context.Context, auth models.AuthContext) ([]models.ShootRecord, error)
}

// apiResponse is the envelope every authority endpoint answers with. The
// message field is optional and may be malformed; callers fall back to a
// per-operation default.
type apiResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Shoot       *models.ShootRecord  `json:"shoot,omitempty"`
	Shoots      []models.ShootRecord `json:"shoots,omitempty"`
	CheckoutURL string               `json:"checkoutUrl,omitempty"`
}

// HTTPGateway implements Gateway over the remote REST API.
type HTTPGateway struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewHTTPGateway constructs a gateway from app config.
func NewHTTPGateway(logger *zap.Logger) *HTTPGateway {
	timeout := time.Duration(config.AppConfig.ShootAPITimeoutSecs) * time.Second
	return &HTTPGateway{
		BaseURL: config.AppConfig.ShootAPIBaseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// SubmitTransition runs the guard table locally as a pre-flight, posts the
// transition, and returns the server-confirmed record with a confirmation
// message. A guard rejection never reaches the network.
func (g *HTTPGateway) SubmitTransition(ctx context.Context, auth models.AuthContext, shootID string, t workflow.Transition, notes string) (*models.ShootRecord, string, error) {
	fallback, ok := fallbacks[t]
	if !ok {
		return nil, "", newGatewayError(KindPrecondition, fmt.Sprintf("unknown transition %q", t))
	}
	var body any
	if t == workflow.Reject {
		body = map[string]string{"adminIssueNotes": notes}
	}
	resp, err := g.post(ctx, auth, fmt.Sprintf("/shoots/%s/%s", shootID, t), body, fallback)
	if err != nil {
		return nil, "", err
	}
	if resp.Shoot == nil {
		return nil, "", newGatewayError(KindValidation, fallback)
	}
	return resp.Shoot, confirmations[t], nil
}

// SubmitBookingAction posts a coarse booking action (cancel/confirm).
func (g *HTTPGateway) SubmitBookingAction(ctx context.Context, auth models.AuthContext, shootID string, action workflow.BookingAction) (*models.ShootRecord, string, error) {
	msg, ok := bookingConfirmations[action]
	if !ok {
		return nil, "", newGatewayError(KindPrecondition, fmt.Sprintf("unknown booking action %q", action))
	}
	resp, err := g.post(ctx, auth, fmt.Sprintf("/shoots/%s/%s", shootID, action), nil, bookingFallback)
	if err != nil {
		return nil, "", err
	}
	if resp.Shoot == nil {
		return nil, "", newGatewayError(KindValidation, bookingFallback)
	}
	return resp.Shoot, msg, nil
}

// Reschedule posts a committed date/time change. Slot collisions against other
// bookings are the server's call and come back as validation failures.
func (g *HTTPGateway) Reschedule(ctx context.Context, auth models.AuthContext, shootID, date, timeSlot, reason string) (*models.ShootRecord, string, error) {
	body := map[string]string{
		"requestedDate": date,
		"requestedTime": timeSlot,
	}
	if reason != "" {
		body["reason"] = reason
	}
	resp, err := g.post(ctx, auth, fmt.Sprintf("/shoots/%s/reschedule", shootID), body, rescheduleFallback)
	if err != nil {
		return nil, "", err
	}
	if resp.Shoot == nil {
		return nil, "", newGatewayError(KindValidation, rescheduleFallback)
	}
	return resp.Shoot, RescheduleConfirmation, nil
}

// MarkPaid posts a manual settlement for one shoot.
func (g *HTTPGateway) MarkPaid(ctx context.Context, auth models.AuthContext, shootID string, req models.MarkPaidRequest) (*models.ShootRecord, string, error) {
	body := map[string]any{
		"amount": req.Amount,
		"method": req.Method,
	}
	resp, err := g.post(ctx, auth, fmt.Sprintf("/shoots/%s/mark-paid", shootID), body, markPaidFallback)
	if err != nil {
		return nil, "", err
	}
	if resp.Shoot == nil {
		return nil, "", newGatewayError(KindValidation, markPaidFallback)
	}
	return resp.Shoot, MarkPaidConfirmation, nil
}

// RegisterBatchPayment registers a batch of shoots for payment and returns the
// externally-hosted checkout location, when the authority supplies one.
func (g *HTTPGateway) RegisterBatchPayment(ctx context.Context, auth models.AuthContext, shootIDs []string) (string, error) {
	body := map[string]any{"shootIds": shootIDs}
	resp, err := g.post(ctx, auth, "/payments/multiple-shoots", body, batchPaymentFallback)
	if err != nil {
		return "", err
	}
	return resp.CheckoutURL, nil
}

// FetchShoot re-fetches one shoot from the authority.
func (g *HTTPGateway) FetchShoot(ctx context.Context, auth models.AuthContext, shootID string) (*models.ShootRecord, error) {
	resp, err := g.get(ctx, auth, fmt.Sprintf("/shoots/%s", shootID))
	if err != nil {
		return nil, err
	}
	if resp.Shoot == nil {
		return nil, newGatewayError(KindValidation, fetchFallback)
	}
	return resp.Shoot, nil
}

// FetchShoots fetches the full shoot list, used by the poll sync worker and
// the board list view.
func (g *HTTPGateway) FetchShoots(ctx context.Context, auth models.AuthContext) ([]models.ShootRecord, error) {
	resp, err := g.get(ctx, auth, "/shoots")
	if err != nil {
		return nil, err
	}
	return resp.Shoots, nil
}

func (g *HTTPGateway) post(ctx context.Context, auth models.AuthContext, path string, body any, fallback string) (*apiResponse, error) {
	return g.do(ctx, auth, http.MethodPost, path, body, fallback)
}

func (g *HTTPGateway) get(ctx context.Context, auth models.AuthContext, path string) (*apiResponse, error) {
	return g.do(ctx, auth, http.MethodGet, path, nil, fetchFallback)
}

// do performs one attempt against the authority. No automatic retries; the
// user decides whether to retry a transport failure.
func (g *HTTPGateway) do(ctx context.Context, auth models.AuthContext, method, path string, body any, fallback string) (*apiResponse, error) {
	if !auth.HasToken() {
		return nil, ErrNoAuthToken
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, newGatewayError(KindPrecondition, fallback)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, reqBody)
	if err != nil {
		return nil, newGatewayError(KindPrecondition, fallback)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	httpResp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Warn("shoot authority unreachable", zap.String("path", path), zap.Error(err))
		return nil, newGatewayError(KindTransport, transportMessage)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	decodeErr := json.NewDecoder(httpResp.Body).Decode(&resp)

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden:
		msg := resp.Message
		if decodeErr != nil || msg == "" {
			msg = "You are not allowed to perform this action."
		}
		return nil, newGatewayError(KindAuthorization, msg)
	case httpResp.StatusCode >= 400 || (decodeErr == nil && !resp.Success):
		msg := resp.Message
		if decodeErr != nil || msg == "" {
			msg = fallback
		}
		return nil, newGatewayError(KindValidation, msg)
	case decodeErr != nil:
		g.Logger.Warn("malformed response from shoot authority", zap.String("path", path), zap.Error(decodeErr))
		return nil, newGatewayError(KindValidation, fallback)
	}

	return &resp, nil
}
