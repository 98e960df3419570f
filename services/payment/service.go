package payment

import (
	"context"
	"time"

	shootRepo "shootflow/database/repository/shoot"
	"shootflow/models"
	"shootflow/services/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService is the reconciliation surface: role-gated views, manual
// settlement and batch checkout.
type PaymentService interface {
	ShootPaymentView(auth models.AuthContext, shootID string) (any, error)
	Reconciliation(auth models.AuthContext) ([]models.PaymentSummary, error)
	QuoteSelection(auth models.AuthContext, shootIDs []string) (*models.BatchQuote, error)
	StartBatchCheckout(ctx context.Context, auth models.AuthContext, shootIDs []string) (*models.BatchCheckout, error)
	MarkPaid(ctx context.Context, auth models.AuthContext, shootID string, req models.MarkPaidRequest) (*models.ShootRecord, string, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	ShootRepo shootRepo.ShootRepository
	Gateway   gateway.Gateway
	Checkout  CheckoutProvider
	Logger    *zap.Logger
}

// ShootPaymentView returns the payment view of one shoot trimmed to the
// caller's role.
func (s *DefaultPaymentService) ShootPaymentView(auth models.AuthContext, shootID string) (any, error) {
	rec, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, err
	}
	return ViewFor(auth.Role, *rec), nil
}

// Reconciliation returns the full figures for every shoot. Admin roles only;
// non-admins never see amounts.
func (s *DefaultPaymentService) Reconciliation(auth models.AuthContext) ([]models.PaymentSummary, error) {
	if !auth.Role.IsAdmin() {
		return nil, newPaymentError(CodeForbidden, "payment figures are restricted to admins")
	}
	recs, err := s.ShootRepo.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.PaymentSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, SummaryFor(rec))
	}
	return summaries, nil
}

// QuoteSelection computes the eligible subset and total due for a batch
// payment selection.
func (s *DefaultPaymentService) QuoteSelection(auth models.AuthContext, shootIDs []string) (*models.BatchQuote, error) {
	if !auth.Role.IsAdmin() {
		return nil, newPaymentError(CodeForbidden, "batch payment is restricted to admins")
	}
	recs, err := s.loadSelection(shootIDs)
	if err != nil {
		return nil, err
	}
	quote := QuoteBatch(recs)
	return &quote, nil
}

// StartBatchCheckout registers the eligible subset with the authority and
// returns the externally-hosted checkout location. Completion is asynchronous
// and observed later by re-fetch. When the authority supplies no location,
// the configured checkout provider builds one for the amount due.
func (s *DefaultPaymentService) StartBatchCheckout(ctx context.Context, auth models.AuthContext, shootIDs []string) (*models.BatchCheckout, error) {
	quote, err := s.QuoteSelection(auth, shootIDs)
	if err != nil {
		return nil, err
	}
	if len(quote.EligibleShootIDs) == 0 {
		return nil, newPaymentError(CodeEmptyBatch, "no selected shoot has an outstanding balance")
	}

	url, err := s.Gateway.RegisterBatchPayment(ctx, auth, quote.EligibleShootIDs)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	if url == "" {
		if s.Checkout == nil {
			return nil, newPaymentError(CodeNoCheckout, "no checkout location available for this batch")
		}
		url, err = s.Checkout.CreateCheckout(batchID, quote.TotalDue)
		if err != nil {
			return nil, err
		}
	}

	s.Logger.Info("batch checkout started",
		zap.String("batchID", batchID),
		zap.Int("shoots", len(quote.EligibleShootIDs)),
		zap.Float64("totalDue", quote.TotalDue))

	return &models.BatchCheckout{
		BatchID:     batchID,
		ShootIDs:    quote.EligibleShootIDs,
		TotalDue:    quote.TotalDue,
		CheckoutURL: url,
		CreatedAt:   time.Now(),
	}, nil
}

// MarkPaid records a manual settlement through the authority. Idempotent: an
// already-settled shoot is suppressed before any network call, and the
// applied total is clamped at the quote so duplicate marking never
// double-counts.
func (s *DefaultPaymentService) MarkPaid(ctx context.Context, auth models.AuthContext, shootID string, req models.MarkPaidRequest) (*models.ShootRecord, string, error) {
	if !auth.Role.IsAdmin() {
		return nil, "", newPaymentError(CodeForbidden, "manual settlement is restricted to admins")
	}
	if req.Amount <= 0 {
		return nil, "", newPaymentError(CodeBadAmount, "payment amount must be positive")
	}

	rec, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, "", err
	}
	if IsPaid(rec.Payment) {
		// Duplicate marking of a settled shoot is a no-op success.
		return rec, "Shoot is already fully paid.", nil
	}

	confirmed, msg, err := s.Gateway.MarkPaid(ctx, auth, shootID, req)
	if err != nil {
		return nil, "", err
	}
	if confirmed.Payment.TotalPaid > confirmed.Payment.TotalQuote {
		confirmed.Payment.TotalPaid = confirmed.Payment.TotalQuote
	}
	if err := s.ShootRepo.Upsert(*confirmed); err != nil {
		return nil, "", err
	}
	s.Logger.Info("manual payment recorded",
		zap.String("shootID", shootID), zap.Float64("amount", req.Amount), zap.String("method", req.Method))
	return confirmed, msg, nil
}

func (s *DefaultPaymentService) loadSelection(shootIDs []string) ([]models.ShootRecord, error) {
	recs := make([]models.ShootRecord, 0, len(shootIDs))
	for _, id := range shootIDs {
		rec, err := s.ShootRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}
