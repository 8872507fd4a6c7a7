package review

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/review"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type fakeRequestRepo struct {
	requests map[int64]review.Request
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]review.Request), nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, rr review.Request) (review.Request, error) {
	rr.ID = r.nextID
	r.nextID++
	rr.CreatedAt = time.Now()
	r.requests[rr.ID] = rr
	return rr, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id int64) (review.Request, error) {
	rr, ok := r.requests[id]
	if !ok {
		return review.Request{}, review.ErrRequestNotFound
	}
	return rr, nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, employeeID int64) ([]review.Request, error) {
	var out []review.Request
	for _, rr := range r.requests {
		if rr.EmployeeID == employeeID {
			out = append(out, rr)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListOpen(_ context.Context) ([]review.Request, error) {
	var out []review.Request
	for _, rr := range r.requests {
		if rr.Status == review.StatusOpen || rr.Status == review.StatusInReview {
			out = append(out, rr)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id int64, status review.Status) error {
	rr, ok := r.requests[id]
	if !ok {
		return review.ErrRequestNotFound
	}
	rr.Status = status
	r.requests[id] = rr
	return nil
}

func (r *fakeRequestRepo) SetResponse(_ context.Context, id int64, status review.Status, response string, responderID int64) error {
	rr, ok := r.requests[id]
	if !ok {
		return review.ErrRequestNotFound
	}
	now := time.Now()
	rr.Status = status
	rr.Response = response
	rr.ResponderID = &responderID
	rr.RespondedAt = &now
	r.requests[id] = rr
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) AdjustHourBank(_ context.Context, id int64, delta int) (int, error) {
	e := r.employees[id]
	e.HourBankMinutes += delta
	r.employees[id] = e
	return e.HourBankMinutes, nil
}

func (r *fakeEmployeeRepo) SetHourBank(_ context.Context, id int64, minutes int) error {
	e := r.employees[id]
	e.HourBankMinutes = minutes
	r.employees[id] = e
	return nil
}

type recordingNotifier struct {
	recipients []string
}

func (n *recordingNotifier) Notify(_ context.Context, recipient string, _ int64, _ string, _ notification.Category, _ bool) error {
	n.recipients = append(n.recipients, recipient)
	return nil
}

func seededService() *Service {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, RegistrationNumber: "E-001"})
	return NewService(newFakeRequestRepo(), empRepo, &recordingNotifier{}, slog.Default())
}

func createRequest() review.CreateRequestRequest {
	return review.CreateRequestRequest{
		EmployeeID:  1,
		Kind:        "punch_adjustment",
		Description: "forgot to punch lunch return on monday",
	}
}

func TestCreateValidatesDescriptionBounds(t *testing.T) {
	s := seededService()

	req := createRequest()
	req.Description = "too short"
	_, err := s.Create(context.Background(), req)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	req.Description = strings.Repeat("x", 1001)
	_, err = s.Create(context.Background(), req)
	assert.ErrorAs(t, err, &verrs)
}

func TestLifecycleOpenInReviewCompleted(t *testing.T) {
	s := seededService()

	created, err := s.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, review.StatusOpen, created.Status)

	started, err := s.StartReview(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, review.StatusInReview, started.Status)

	// StartReview is only valid from open
	_, err = s.StartReview(context.Background(), created.ID)
	assert.ErrorIs(t, err, review.ErrNotOpen)

	resolved, err := s.Respond(context.Background(), review.RespondRequest{
		ID: created.ID, ResponderID: 99, Response: "punch fixed", Accept: true,
	})
	require.NoError(t, err)
	assert.Equal(t, review.StatusCompleted, resolved.Status)
	assert.Equal(t, "punch fixed", resolved.Response)
}

func TestRespondDecline(t *testing.T) {
	s := seededService()

	created, err := s.Create(context.Background(), createRequest())
	require.NoError(t, err)

	resolved, err := s.Respond(context.Background(), review.RespondRequest{
		ID: created.ID, ResponderID: 99, Response: "no evidence of the punch", Accept: false,
	})
	require.NoError(t, err)
	assert.Equal(t, review.StatusRejected, resolved.Status)
}

func TestRespondFailsOnTerminalStatus(t *testing.T) {
	s := seededService()

	created, err := s.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = s.Respond(context.Background(), review.RespondRequest{
		ID: created.ID, ResponderID: 99, Response: "done", Accept: true,
	})
	require.NoError(t, err)

	_, err = s.Respond(context.Background(), review.RespondRequest{
		ID: created.ID, ResponderID: 99, Response: "again", Accept: false,
	})
	assert.ErrorIs(t, err, review.ErrAlreadyTerminal)
}

func TestCancelOnlyBeforeResolution(t *testing.T) {
	s := seededService()

	created, err := s.Create(context.Background(), createRequest())
	require.NoError(t, err)

	cancelled, err := s.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, review.StatusCancelled, cancelled.Status)

	_, err = s.Cancel(context.Background(), created.ID)
	assert.ErrorIs(t, err, review.ErrNotCancellable)
}
