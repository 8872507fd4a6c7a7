package leave

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/leave"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveRepo struct {
	leaves map[int64]leave.Leave
	nextID int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[int64]leave.Leave), nextID: 1}
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = r.nextID
	r.nextID++
	r.leaves[l.ID] = l
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id int64) (leave.Leave, error) {
	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID int64) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.Status) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListOverlapping(_ context.Context, employeeID int64, start, end time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID != employeeID {
			continue
		}
		if l.Status != leave.StatusPending && l.Status != leave.StatusApproved {
			continue
		}
		if !l.StartDate.After(end) && !l.EndDate.Before(start) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id int64, status leave.Status, note string, approverID *int64) error {
	l, ok := r.leaves[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	l.Status = status
	if note != "" {
		l.Note = note
	}
	if approverID != nil {
		l.ApproverID = approverID
	}
	r.leaves[id] = l
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

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) AdjustHourBank(_ context.Context, id int64, delta int) (int, error) {
	e, ok := r.employees[id]
	if !ok {
		return 0, employee.ErrEmployeeNotFound
	}
	if e.HourBankMinutes+delta < 0 {
		return 0, employee.ErrInsufficientHourBank
	}
	e.HourBankMinutes += delta
	r.employees[id] = e
	return e.HourBankMinutes, nil
}

func (r *fakeEmployeeRepo) SetHourBank(_ context.Context, id int64, minutes int) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.HourBankMinutes = minutes
	r.employees[id] = e
	return nil
}

type recordingNotifier struct {
	recipients []string
	messages   []string
}

func (n *recordingNotifier) Notify(_ context.Context, recipient string, _ int64, message string, _ notification.Category, _ bool) error {
	n.recipients = append(n.recipients, recipient)
	n.messages = append(n.messages, message)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(leaveRepo *fakeLeaveRepo, empRepo *fakeEmployeeRepo, n *recordingNotifier) *Service {
	s := NewService(fakeTxManager{}, leaveRepo, empRepo, n, slog.Default())
	s.now = func() time.Time { return date(2025, time.March, 1) }
	return s
}

func TestRequestRejectsPastStart(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID})
	s := newTestService(newFakeLeaveRepo(), empRepo, &recordingNotifier{})

	_, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-02-20",
		EndDate:    "2025-02-21",
		Kind:       "allowance",
		Reason:     "family matters",
	})
	assert.ErrorIs(t, err, leave.ErrStartInPast)
}

func TestRequestRejectsOverlap(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID})
	leaveRepo := newFakeLeaveRepo()
	s := newTestService(leaveRepo, empRepo, &recordingNotifier{})

	_, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-03",
		Kind:       "allowance",
		Reason:     "family matters",
	})
	require.NoError(t, err)

	_, err = s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-03",
		EndDate:    "2025-04-05",
		Kind:       "allowance",
		Reason:     "more family matters",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApproveHourBankLeaveDebitsBalance(t *testing.T) {
	userID := int64(10)
	// 3 inclusive days at 8h/day = 1440 minutes
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, HourBankMinutes: 1500})
	leaveRepo := newFakeLeaveRepo()
	s := newTestService(leaveRepo, empRepo, &recordingNotifier{})

	created, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-03",
		Kind:       "hour_bank",
		Reason:     "compensating overtime",
	})
	require.NoError(t, err)

	approved, err := s.Approve(context.Background(), leave.DecideLeaveRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	emp, err := empRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 60, emp.HourBankMinutes)
}

func TestApproveHourBankLeaveInsufficientBalance(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, HourBankMinutes: 120})
	leaveRepo := newFakeLeaveRepo()
	s := newTestService(leaveRepo, empRepo, &recordingNotifier{})

	created, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-01",
		Kind:       "hour_bank",
		Reason:     "compensating overtime",
	})
	require.NoError(t, err)

	_, err = s.Approve(context.Background(), leave.DecideLeaveRequest{ID: created.ID, ApproverID: 99})
	assert.ErrorIs(t, err, employee.ErrInsufficientHourBank)

	// Balance and status untouched
	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 120, emp.HourBankMinutes)
	l, _ := leaveRepo.GetByID(context.Background(), created.ID)
	assert.Equal(t, leave.StatusPending, l.Status)
}

func TestCancelApprovedHourBankLeaveCreditsBack(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, HourBankMinutes: 480})
	leaveRepo := newFakeLeaveRepo()
	s := newTestService(leaveRepo, empRepo, &recordingNotifier{})

	created, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-01",
		Kind:       "hour_bank",
		Reason:     "compensating overtime",
	})
	require.NoError(t, err)

	_, err = s.Approve(context.Background(), leave.DecideLeaveRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)
	emp, _ := empRepo.GetByID(context.Background(), 1)
	require.Equal(t, 0, emp.HourBankMinutes)

	_, err = s.Cancel(context.Background(), created.ID)
	require.NoError(t, err)

	emp, _ = empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 480, emp.HourBankMinutes)
}

func TestCancelPendingLeaveLeavesBalanceAlone(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, HourBankMinutes: 480})
	leaveRepo := newFakeLeaveRepo()
	s := newTestService(leaveRepo, empRepo, &recordingNotifier{})

	created, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-01",
		Kind:       "hour_bank",
		Reason:     "compensating overtime",
	})
	require.NoError(t, err)

	cancelled, err := s.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, cancelled.Status)

	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 480, emp.HourBankMinutes)
}

func TestRequestNotifiesAdmin(t *testing.T) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, RegistrationNumber: "E-001"})
	n := &recordingNotifier{}
	s := newTestService(newFakeLeaveRepo(), empRepo, n)

	_, err := s.Request(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 1,
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-02",
		Kind:       "allowance",
		Reason:     "family matters",
	})
	require.NoError(t, err)
	require.Len(t, n.recipients, 1)
	assert.Equal(t, "ADMIN", n.recipients[0])
}
