// Package board is the workflow board and its action surfaces: the layer UI
// clients talk to. It renders role-trimmed shoot items, gates controls with
// the workflow guard table, holds one in-flight mark per shoot so a
// submission cannot be duplicated, and drives the booking/reschedule dialogs.
package board

import (
	"context"
	"encoding/json"
	"time"

	shootRepo "shootflow/database/repository/shoot"
	"shootflow/models"
	"shootflow/services/gateway"
	"shootflow/services/payment"
	"shootflow/services/workflow"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	listCacheKey = "shoots:list"
	listCacheTTL = 60 * time.Second

	sessionKeyPrefix = "board:session:"
	sessionTTL       = 30 * time.Minute
)

// Item is one shoot as the board shows it to a particular caller: payment
// fields trimmed by role, issue notes withheld from clients, and the set of
// transition controls the caller may trigger.
type Item struct {
	ID              string                `json:"id"`
	Status          models.BookingStatus  `json:"status"`
	WorkflowStatus  models.WorkflowStatus `json:"workflowStatus"`
	IsFlagged       bool                  `json:"isFlagged"`
	AdminIssueNotes string                `json:"adminIssueNotes,omitempty"`
	ScheduledDate   string                `json:"scheduledDate"`
	Time            string                `json:"time"`
	MissingRaw      bool                  `json:"missingRaw,omitempty"`
	MissingFinal    bool                  `json:"missingFinal,omitempty"`
	Client          models.Party          `json:"client"`
	Photographer    models.Party          `json:"photographer"`
	Payment         any                   `json:"payment"`
	Actions         []string              `json:"actions"`
	InFlight        bool                  `json:"inFlight"`
}

// BoardService is the contract the handlers consume.
type BoardService interface {
	ListShoots(ctx context.Context, auth models.AuthContext) ([]Item, error)
	GetShoot(ctx context.Context, auth models.AuthContext, shootID string) (*Item, error)
	PerformTransition(ctx context.Context, auth models.AuthContext, shootID string, t workflow.Transition, notes string) (*models.ShootRecord, string, error)
	PerformBookingAction(ctx context.Context, auth models.AuthContext, shootID string, action workflow.BookingAction) (*models.ShootRecord, string, error)
	RefreshFromAuthority(ctx context.Context, auth models.AuthContext) (int, error)
	OpenSession(ctx context.Context, auth models.AuthContext, shootID string) (*Session, error)
	SetDialog(ctx context.Context, sessionID string, to DialogState) (*Session, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// DefaultBoardService implements BoardService.
type DefaultBoardService struct {
	ShootRepo    shootRepo.ShootRepository
	Gateway      gateway.Gateway
	Cache        *redis.Client
	SessionCache *redis.Client
	Logger       *zap.Logger

	guard *inFlightGuard
}

// NewDefaultBoardService wires a board service over the given stores.
func NewDefaultBoardService(repo shootRepo.ShootRepository, gw gateway.Gateway, cache, sessionCache *redis.Client, logger *zap.Logger) *DefaultBoardService {
	return &DefaultBoardService{
		ShootRepo:    repo,
		Gateway:      gw,
		Cache:        cache,
		SessionCache: sessionCache,
		Logger:       logger,
		guard:        &inFlightGuard{cache: cache},
	}
}

// ListShoots returns the board list scoped to the caller: admins and editors
// see everything, photographers their assignments, clients their bookings.
func (s *DefaultBoardService) ListShoots(ctx context.Context, auth models.AuthContext) ([]Item, error) {
	recs, err := s.cachedList(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(recs))
	for _, rec := range recs {
		switch auth.Role {
		case models.RolePhotographer:
			if !rec.OwnedBy(auth.UserID) {
				continue
			}
		case models.RoleClient:
			if rec.Client.ID != auth.UserID {
				continue
			}
		}
		inFlight, _ := s.guard.inFlight(ctx, rec.ID)
		items = append(items, s.buildItem(auth, rec, inFlight))
	}
	return items, nil
}

// GetShoot returns one board item.
func (s *DefaultBoardService) GetShoot(ctx context.Context, auth models.AuthContext, shootID string) (*Item, error) {
	rec, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, err
	}
	inFlight, _ := s.guard.inFlight(ctx, shootID)
	item := s.buildItem(auth, *rec, inFlight)
	return &item, nil
}

// PerformTransition submits one workflow transition. The local guard table
// rejects impossible requests before the network; the in-flight mark blocks a
// duplicate submission while one is outstanding; only the authority-confirmed
// record is persisted.
func (s *DefaultBoardService) PerformTransition(ctx context.Context, auth models.AuthContext, shootID string, t workflow.Transition, notes string) (*models.ShootRecord, string, error) {
	acquired, err := s.guard.acquire(ctx, shootID)
	if err != nil {
		return nil, "", err
	}
	if !acquired {
		return nil, "", newBoardError(CodeInFlight, "a submission for this shoot is already in progress")
	}
	defer s.guard.release(ctx, shootID)

	rec, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, "", err
	}
	if _, err := workflow.Apply(*rec, auth, t, notes); err != nil {
		return nil, "", err
	}

	confirmed, msg, err := s.Gateway.SubmitTransition(ctx, auth, shootID, t, notes)
	if err != nil {
		return nil, "", err
	}
	if err := s.ShootRepo.Upsert(*confirmed); err != nil {
		return nil, "", err
	}
	s.invalidateList(ctx)
	s.Logger.Info("workflow transition applied",
		zap.String("shootID", shootID),
		zap.String("transition", string(t)),
		zap.String("status", string(confirmed.WorkflowStatus)))
	return confirmed, msg, nil
}

// PerformBookingAction submits a coarse booking action (cancel/confirm).
func (s *DefaultBoardService) PerformBookingAction(ctx context.Context, auth models.AuthContext, shootID string, action workflow.BookingAction) (*models.ShootRecord, string, error) {
	acquired, err := s.guard.acquire(ctx, shootID)
	if err != nil {
		return nil, "", err
	}
	if !acquired {
		return nil, "", newBoardError(CodeInFlight, "a submission for this shoot is already in progress")
	}
	defer s.guard.release(ctx, shootID)

	rec, err := s.ShootRepo.GetByID(shootID)
	if err != nil {
		return nil, "", err
	}
	if _, err := workflow.ApplyBookingAction(*rec, auth, action); err != nil {
		return nil, "", err
	}

	confirmed, msg, err := s.Gateway.SubmitBookingAction(ctx, auth, shootID, action)
	if err != nil {
		return nil, "", err
	}
	if err := s.ShootRepo.Upsert(*confirmed); err != nil {
		return nil, "", err
	}
	s.invalidateList(ctx)
	return confirmed, msg, nil
}

// RefreshFromAuthority pulls the full shoot list from the remote authority
// into the local projection. The poll sync worker calls this on a schedule.
func (s *DefaultBoardService) RefreshFromAuthority(ctx context.Context, auth models.AuthContext) (int, error) {
	recs, err := s.Gateway.FetchShoots(ctx, auth)
	if err != nil {
		return 0, err
	}
	if err := s.ShootRepo.UpsertMany(recs); err != nil {
		return 0, err
	}
	s.invalidateList(ctx)
	return len(recs), nil
}

// OpenSession starts a board session for one shoot with no dialog open.
func (s *DefaultBoardService) OpenSession(ctx context.Context, auth models.AuthContext, shootID string) (*Session, error) {
	if _, err := s.ShootRepo.GetByID(shootID); err != nil {
		return nil, err
	}
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		ShootID:   shootID,
		UserID:    auth.UserID,
		Dialog:    DialogNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetDialog moves the session's dialog state machine. Illegal moves (for
// example, opening the reschedule dialog with no actions dialog up) are
// rejected.
func (s *DefaultBoardService) SetDialog(ctx context.Context, sessionID string, to DialogState) (*Session, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canMoveDialog(sess.Dialog, to) {
		return nil, newBoardError(CodeBadDialog,
			"cannot open "+string(to)+" from "+string(sess.Dialog))
	}
	sess.Dialog = to
	sess.UpdatedAt = time.Now()
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CloseSession discards a board session.
func (s *DefaultBoardService) CloseSession(ctx context.Context, sessionID string) error {
	return s.SessionCache.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (s *DefaultBoardService) buildItem(auth models.AuthContext, rec models.ShootRecord, inFlight bool) Item {
	item := Item{
		ID:             rec.ID,
		Status:         rec.Status,
		WorkflowStatus: rec.EffectiveWorkflowStatus(),
		IsFlagged:      rec.IsFlagged,
		ScheduledDate:  rec.ScheduledDate,
		Time:           rec.Time,
		MissingRaw:     rec.MissingRaw,
		MissingFinal:   rec.MissingFinal,
		Client:         rec.Client,
		Photographer:   rec.Photographer,
		Payment:        payment.ViewFor(auth.Role, rec),
		InFlight:       inFlight,
	}
	// Issue notes are reviewer/photographer context, not client-facing.
	if auth.Role != models.RoleClient {
		item.AdminIssueNotes = rec.AdminIssueNotes
	}
	actions := []string{}
	if !inFlight {
		for _, t := range workflow.AllowedTransitions(auth, rec) {
			actions = append(actions, string(t))
		}
	}
	item.Actions = actions
	return item
}

func (s *DefaultBoardService) cachedList(ctx context.Context) ([]models.ShootRecord, error) {
	if data, err := s.Cache.Get(ctx, listCacheKey).Result(); err == nil {
		var recs []models.ShootRecord
		if err := json.Unmarshal([]byte(data), &recs); err == nil {
			return recs, nil
		}
	}
	recs, err := s.ShootRepo.List()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(recs); err == nil {
		s.Cache.Set(ctx, listCacheKey, data, listCacheTTL)
	}
	return recs, nil
}

func (s *DefaultBoardService) invalidateList(ctx context.Context) {
	s.Cache.Del(ctx, listCacheKey)
}

func (s *DefaultBoardService) saveSession(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.SessionCache.Set(ctx, sessionKeyPrefix+sess.ID, data, sessionTTL).Err()
}

func (s *DefaultBoardService) loadSession(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.SessionCache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, newBoardError(CodeSessionNotFound, "board session not found or expired")
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, newBoardError(CodeSessionNotFound, "board session is corrupt")
	}
	return &sess, nil
}
