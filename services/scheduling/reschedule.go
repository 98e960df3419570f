// Package scheduling governs date/time change requests: a narrow state
// machine that runs beside the production workflow without replacing it. A
// request never touches the committed shoot date except through the explicit
// approval path.
package scheduling

import (
	"context"
	"time"

	rescheduleRepo "shootflow/database/repository/reschedule"
	shootRepo "shootflow/database/repository/shoot"
	"shootflow/models"
	"shootflow/services/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReschedulingService manages reschedule requests and their resolution.
type ReschedulingService interface {
	RequestReschedule(ctx context.Context, auth models.AuthContext, shootID, date, slot, reason string) (*models.RescheduleRequest, string, error)
	ApproveRequest(ctx context.Context, auth models.AuthContext, requestID string) (*models.ShootRecord, string, error)
	RejectRequest(ctx context.Context, auth models.AuthContext, requestID string) error
	ListByShoot(shootID string) ([]models.RescheduleRequest, error)
	ListPending() ([]models.RescheduleRequest, error)
}

// DefaultReschedulingService implements ReschedulingService.
type DefaultReschedulingService struct {
	ShootRepo   shootRepo.ShootRepository
	RequestRepo rescheduleRepo.RescheduleRepository
	Gateway     gateway.Gateway
	Logger      *zap.Logger
	// Now is injectable for the date-boundary guard.
	Now func() time.Time
}

func (s *DefaultReschedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RequestReschedule records a date/time change request. Admin requesters are
// auto-approved: the committed date moves in the same operation. Everyone
// else leaves a pending request and an untouched shoot.
func (s *DefaultReschedulingService) RequestReschedule(ctx context.Context, auth models.AuthContext, shootID, date, slot, reason string) (*models.RescheduleRequest, string, error) {
	if !ValidSlot(slot) {
		return nil, "", newScheduleError(CodeInvalidSlot, "requested time is not a bookable slot")
	}
	if err := validateDate(date, s.now()); err != nil {
		return nil, "", err
	}

	shoot, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, "", err
	}

	req := models.RescheduleRequest{
		ID:            uuid.New().String(),
		ShootID:       shootID,
		OriginalDate:  shoot.ScheduledDate,
		RequestedDate: date,
		RequestedTime: slot,
		Reason:        reason,
		Status:        models.ReschedulePending,
		RequestedBy:   auth.UserID,
		RequesterRole: auth.Role,
		CreatedAt:     s.now(),
	}

	if !auth.Role.IsAdmin() {
		if err := s.RequestRepo.Create(req); err != nil {
			return nil, "", err
		}
		s.Logger.Info("reschedule request recorded",
			zap.String("shootID", shootID), zap.String("requestID", req.ID))
		return &req, gateway.ReschedulePendingConfirmation, nil
	}

	// Admin path: commit through the authority first. Only a confirmed
	// success moves local state or records the approval.
	confirmed, msg, err := s.Gateway.Reschedule(ctx, auth, shootID, date, slot, reason)
	if err != nil {
		return nil, "", err
	}

	resolvedAt := s.now()
	req.Status = models.RescheduleApproved
	req.ResolvedAt = &resolvedAt
	if err := s.RequestRepo.Create(req); err != nil {
		return nil, "", err
	}
	if err := s.ShootRepo.Upsert(*confirmed); err != nil {
		return nil, "", err
	}
	s.Logger.Info("shoot rescheduled",
		zap.String("shootID", shootID), zap.String("date", date), zap.String("slot", slot))
	return &req, msg, nil
}

// ApproveRequest resolves a pending request in the requester's favor. Admin
// only. The committed date moves through the gateway, then the request is
// stamped approved; it is inert afterwards.
func (s *DefaultReschedulingService) ApproveRequest(ctx context.Context, auth models.AuthContext, requestID string) (*models.ShootRecord, string, error) {
	if !auth.Role.IsAdmin() {
		return nil, "", newScheduleError(CodeForbidden, "only an admin may resolve reschedule requests")
	}
	req, err := s.RequestRepo.GetByID(requestID)
	if err != nil {
		return nil, "", err
	}
	if req.Resolved() {
		return nil, "", newScheduleError(CodeNotPending, "reschedule request is already resolved")
	}
	// The requested date may have passed while the request sat pending.
	if err := validateDate(req.RequestedDate, s.now()); err != nil {
		return nil, "", err
	}

	confirmed, msg, err := s.Gateway.Reschedule(ctx, auth, req.ShootID, req.RequestedDate, req.RequestedTime, req.Reason)
	if err != nil {
		return nil, "", err
	}
	if err := s.RequestRepo.Resolve(requestID, models.RescheduleApproved); err != nil {
		return nil, "", err
	}
	if err := s.ShootRepo.Upsert(*confirmed); err != nil {
		return nil, "", err
	}
	return confirmed, msg, nil
}

// RejectRequest resolves a pending request against the requester. Admin only;
// the shoot is untouched.
func (s *DefaultReschedulingService) RejectRequest(ctx context.Context, auth models.AuthContext, requestID string) error {
	if !auth.Role.IsAdmin() {
		return newScheduleError(CodeForbidden, "only an admin may resolve reschedule requests")
	}
	req, err := s.RequestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if req.Resolved() {
		return newScheduleError(CodeNotPending, "reschedule request is already resolved")
	}
	return s.RequestRepo.Resolve(requestID, models.RescheduleRejected)
}

// ListByShoot returns the request history for a shoot.
func (s *DefaultReschedulingService) ListByShoot(shootID string) ([]models.RescheduleRequest, error) {
	return s.RequestRepo.ListByShoot(shootID)
}

// ListPending returns all unresolved requests.
func (s *DefaultReschedulingService) ListPending() ([]models.RescheduleRequest, error) {
	return s.RequestRepo.ListPending()
}
