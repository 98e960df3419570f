package scheduling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shootflow/models"
	"shootflow/services/gateway"
	"shootflow/services/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeShootRepo struct {
	shoots map[string]models.ShootRecord
}

func newFakeShootRepo(recs ...models.ShootRecord) *fakeShootRepo {
	repo := &fakeShootRepo{shoots: make(map[string]models.ShootRecord)}
	for _, rec := range recs {
		repo.shoots[rec.ID] = rec
	}
	return repo
}

func (r *fakeShootRepo) GetByID(id string) (*models.ShootRecord, error) {
	rec, ok := r.shoots[id]
	if !ok {
		return nil, fmt.Errorf("shoot %s not found", id)
	}
	return &rec, nil
}

func (r *fakeShootRepo) List() ([]models.ShootRecord, error) { return nil, nil }
func (r *fakeShootRepo) ListByPhotographer(string) ([]models.ShootRecord, error) {
	return nil, nil
}
func (r *fakeShootRepo) ListByClient(string) ([]models.ShootRecord, error) { return nil, nil }

func (r *fakeShootRepo) Upsert(rec models.ShootRecord) error {
	r.shoots[rec.ID] = rec
	return nil
}

func (r *fakeShootRepo) UpsertMany(recs []models.ShootRecord) error {
	for _, rec := range recs {
		r.shoots[rec.ID] = rec
	}
	return nil
}

type fakeRescheduleRepo struct {
	requests map[string]models.RescheduleRequest
}

func newFakeRescheduleRepo() *fakeRescheduleRepo {
	return &fakeRescheduleRepo{requests: make(map[string]models.RescheduleRequest)}
}

func (r *fakeRescheduleRepo) Create(req models.RescheduleRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRescheduleRepo) GetByID(id string) (*models.RescheduleRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("request %s not found", id)
	}
	return &req, nil
}

func (r *fakeRescheduleRepo) ListByShoot(shootID string) ([]models.RescheduleRequest, error) {
	var out []models.RescheduleRequest
	for _, req := range r.requests {
		if req.ShootID == shootID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRescheduleRepo) ListPending() ([]models.RescheduleRequest, error) {
	var out []models.RescheduleRequest
	for _, req := range r.requests {
		if req.Status == models.ReschedulePending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRescheduleRepo) Resolve(id string, status models.RescheduleStatus) error {
	req, ok := r.requests[id]
	if !ok || req.Resolved() {
		return fmt.Errorf("request %s is not pending", id)
	}
	now := time.Now()
	req.Status = status
	req.ResolvedAt = &now
	r.requests[id] = req
	return nil
}

// fakeGateway records reschedule calls and plays back the confirmed record.
type fakeGateway struct {
	rescheduleCalls int
	err             error
}

func (g *fakeGateway) Reschedule(ctx context.Context, auth models.AuthContext, shootID, date, slot, reason string) (*models.ShootRecord, string, error) {
	g.rescheduleCalls++
	if g.err != nil {
		return nil, "", g.err
	}
	return &models.ShootRecord{
		ID:            shootID,
		ScheduledDate: date,
		Time:          slot,
	}, gateway.RescheduleConfirmation, nil
}

func (g *fakeGateway) SubmitTransition(ctx context.Context, auth models.AuthContext, shootID string, t workflow.Transition, notes string) (*models.ShootRecord, string, error) {
	return nil, "", nil
}

func (g *fakeGateway) SubmitBookingAction(ctx context.Context, auth models.AuthContext, shootID string, action workflow.BookingAction) (*models.ShootRecord, string, error) {
	return nil, "", nil
}

func (g *fakeGateway) MarkPaid(ctx context.Context, auth models.AuthContext, shootID string, req models.MarkPaidRequest) (*models.ShootRecord, string, error) {
	return nil, "", nil
}

func (g *fakeGateway) RegisterBatchPayment(ctx context.Context, auth models.AuthContext, shootIDs []string) (string, error) {
	return "", nil
}

func (g *fakeGateway) FetchShoot(ctx context.Context, auth models.AuthContext, shootID string) (*models.ShootRecord, error) {
	return nil, nil
}

func (g *fakeGateway) FetchShoots(ctx context.Context, auth models.AuthContext) ([]models.ShootRecord, error) {
	return nil, nil
}

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func newService(gw *fakeGateway) (*DefaultReschedulingService, *fakeShootRepo, *fakeRescheduleRepo) {
	shoots := newFakeShootRepo(models.ShootRecord{
		ID:            "s1",
		ScheduledDate: "2025-06-20",
		Time:          "10:00 AM",
	})
	requests := newFakeRescheduleRepo()
	svc := &DefaultReschedulingService{
		ShootRepo:   shoots,
		RequestRepo: requests,
		Gateway:     gw,
		Logger:      zap.NewNop(),
		Now:         func() time.Time { return fixedNow },
	}
	return svc, shoots, requests
}

func clientCtx() models.AuthContext {
	return models.AuthContext{UserID: "client-1", Role: models.RoleClient, Token: "tok"}
}

func adminCtx() models.AuthContext {
	return models.AuthContext{UserID: "admin-1", Role: models.RoleAdmin, Token: "tok"}
}

func TestRequestRescheduleRejectsPastDateWithoutNetwork(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, requests := newService(gw)

	_, _, err := svc.RequestReschedule(context.Background(), adminCtx(), "s1", "2025-06-14", "10:00 AM", "")
	require.Error(t, err)
	se, ok := AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodePastDate, se.Code)
	assert.Zero(t, gw.rescheduleCalls)
	assert.Empty(t, requests.requests)
}

func TestRequestRescheduleAcceptsToday(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _ := newService(gw)

	_, msg, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-15", "02:00 PM", "moved closing")
	require.NoError(t, err)
	assert.Equal(t, gateway.ReschedulePendingConfirmation, msg)
}

func TestRequestRescheduleRejectsUnknownSlot(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _ := newService(gw)

	_, _, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-21", "10:15 AM", "")
	require.Error(t, err)
	se, ok := AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidSlot, se.Code)
	assert.Zero(t, gw.rescheduleCalls)
}

func TestNonAdminRequestLeavesShootUntouched(t *testing.T) {
	gw := &fakeGateway{}
	svc, shoots, requests := newService(gw)

	req, msg, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-25", "02:00 PM", "moved closing")
	require.NoError(t, err)
	assert.Equal(t, models.ReschedulePending, req.Status)
	assert.Equal(t, "2025-06-20", req.OriginalDate)
	assert.Equal(t, gateway.ReschedulePendingConfirmation, msg)
	assert.Zero(t, gw.rescheduleCalls)

	// The committed date is untouched while the request sits pending.
	rec, _ := shoots.GetByID("s1")
	assert.Equal(t, "2025-06-20", rec.ScheduledDate)
	assert.Equal(t, "10:00 AM", rec.Time)

	pending, _ := requests.ListPending()
	assert.Len(t, pending, 1)
}

func TestAdminRequestIsAutoApproved(t *testing.T) {
	gw := &fakeGateway{}
	svc, shoots, _ := newService(gw)

	req, msg, err := svc.RequestReschedule(context.Background(), adminCtx(), "s1", "2025-06-25", "02:00 PM", "")
	require.NoError(t, err)
	assert.Equal(t, models.RescheduleApproved, req.Status)
	assert.NotNil(t, req.ResolvedAt)
	assert.Equal(t, gateway.RescheduleConfirmation, msg)
	assert.Equal(t, 1, gw.rescheduleCalls)

	// The committed date moved in the same operation.
	rec, _ := shoots.GetByID("s1")
	assert.Equal(t, "2025-06-25", rec.ScheduledDate)
	assert.Equal(t, "02:00 PM", rec.Time)
}

func TestApproveRequestCommitsDate(t *testing.T) {
	gw := &fakeGateway{}
	svc, shoots, requests := newService(gw)

	req, _, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-25", "02:00 PM", "")
	require.NoError(t, err)

	_, msg, err := svc.ApproveRequest(context.Background(), adminCtx(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, gateway.RescheduleConfirmation, msg)

	rec, _ := shoots.GetByID("s1")
	assert.Equal(t, "2025-06-25", rec.ScheduledDate)

	stored, _ := requests.GetByID(req.ID)
	assert.Equal(t, models.RescheduleApproved, stored.Status)

	// A resolved request is inert.
	_, _, err = svc.ApproveRequest(context.Background(), adminCtx(), req.ID)
	require.Error(t, err)
	se, ok := AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotPending, se.Code)
}

func TestApproveRequestIsAdminOnly(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _ := newService(gw)

	req, _, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-25", "02:00 PM", "")
	require.NoError(t, err)

	_, _, err = svc.ApproveRequest(context.Background(), clientCtx(), req.ID)
	require.Error(t, err)
	se, ok := AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodeForbidden, se.Code)
}

func TestRejectRequestLeavesShootUntouched(t *testing.T) {
	gw := &fakeGateway{}
	svc, shoots, requests := newService(gw)

	req, _, err := svc.RequestReschedule(context.Background(), clientCtx(), "s1", "2025-06-25", "02:00 PM", "")
	require.NoError(t, err)

	require.NoError(t, svc.RejectRequest(context.Background(), adminCtx(), req.ID))
	assert.Equal(t, 0, gw.rescheduleCalls)

	rec, _ := shoots.GetByID("s1")
	assert.Equal(t, "2025-06-20", rec.ScheduledDate)

	stored, _ := requests.GetByID(req.ID)
	assert.Equal(t, models.RescheduleRejected, stored.Status)
}

func TestValidateDateBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)

	assert.NoError(t, validateDate("2025-06-15", now))
	assert.NoError(t, validateDate("2025-06-16", now))

	err := validateDate("2025-06-14", now)
	require.Error(t, err)
	se, ok := AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodePastDate, se.Code)

	err = validateDate("15-06-2025", now)
	require.Error(t, err)
	se, ok = AsScheduleError(err)
	require.True(t, ok)
	assert.Equal(t, CodeBadDate, se.Code)
}

func TestAvailableSlotsAreFixed(t *testing.T) {
	slots := AvailableSlots()
	assert.NotEmpty(t, slots)
	assert.True(t, ValidSlot(slots[0]))
	assert.False(t, ValidSlot("03:30 AM"))

	// Callers cannot mutate the slot table.
	slots[0] = "tampered"
	assert.False(t, ValidSlot("tampered"))
}
