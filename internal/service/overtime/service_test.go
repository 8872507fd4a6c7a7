package overtime

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/overtime"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOvertimeRepo struct {
	overtimes map[int64]overtime.Overtime
	nextID    int64
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{overtimes: make(map[int64]overtime.Overtime), nextID: 1}
}

func (r *fakeOvertimeRepo) Create(_ context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	o.ID = r.nextID
	r.nextID++
	r.overtimes[o.ID] = o
	return o, nil
}

func (r *fakeOvertimeRepo) GetByID(_ context.Context, id int64) (overtime.Overtime, error) {
	o, ok := r.overtimes[id]
	if !ok {
		return overtime.Overtime{}, overtime.ErrOvertimeNotFound
	}
	return o, nil
}

func (r *fakeOvertimeRepo) ListByEmployee(_ context.Context, employeeID int64) ([]overtime.Overtime, error) {
	var out []overtime.Overtime
	for _, o := range r.overtimes {
		if o.EmployeeID == employeeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOvertimeRepo) ListByStatus(_ context.Context, status overtime.Status) ([]overtime.Overtime, error) {
	var out []overtime.Overtime
	for _, o := range r.overtimes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOvertimeRepo) UpdateStatus(_ context.Context, id int64, status overtime.Status, note string, approverID *int64) error {
	o, ok := r.overtimes[id]
	if !ok {
		return overtime.ErrOvertimeNotFound
	}
	o.Status = status
	if note != "" {
		o.Note = note
	}
	if approverID != nil {
		o.ApproverID = approverID
	}
	r.overtimes[id] = o
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

func seededService() (*Service, *fakeOvertimeRepo, *fakeEmployeeRepo) {
	userID := int64(10)
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1, UserID: &userID, RegistrationNumber: "E-001"})
	repo := newFakeOvertimeRepo()
	s := NewService(fakeTxManager{}, repo, empRepo, &recordingNotifier{}, slog.Default())
	return s, repo, empRepo
}

func registerRequest() overtime.RegisterOvertimeRequest {
	return overtime.RegisterOvertimeRequest{
		EmployeeID:      1,
		StartAt:         "2025-03-10 18:00:00",
		EndAt:           "2025-03-10 20:00:00",
		Kind:            "normal",
		Justification:   "release deployment",
		ForCompensation: true,
	}
}

func TestRegisterComputesMinutes(t *testing.T) {
	s, _, _ := seededService()

	created, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, 120, created.Minutes)
	assert.Equal(t, overtime.StatusPending, created.Status)
}

func TestRegisterRejectsInvertedRange(t *testing.T) {
	s, _, _ := seededService()

	req := registerRequest()
	req.StartAt = "2025-03-10 20:00:00"
	req.EndAt = "2025-03-10 18:00:00"

	_, err := s.Register(context.Background(), req)
	assert.ErrorIs(t, err, overtime.ErrInvalidTimeRange)
}

func TestApproveCreditsHourBankForCompensation(t *testing.T) {
	s, _, empRepo := seededService()

	created, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = s.Approve(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 120, emp.HourBankMinutes)
}

func TestApprovePayOnlyDoesNotTouchHourBank(t *testing.T) {
	s, _, empRepo := seededService()

	req := registerRequest()
	req.ForCompensation = false
	req.ForPay = true
	created, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = s.Approve(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 0, emp.HourBankMinutes)
}

func TestMarkPaidRequiresApprovalAndPayFlag(t *testing.T) {
	s, _, _ := seededService()

	req := registerRequest()
	req.ForPay = true
	created, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = s.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrNotApproved)

	_, err = s.Approve(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	paid, err := s.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusPaid, paid.Status)

	// Single shot: a paid record is no longer approved
	_, err = s.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrNotApproved)
}

func TestMarkPaidRejectsCompensationOnlyRecord(t *testing.T) {
	s, _, _ := seededService()

	created, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	_, err = s.Approve(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	_, err = s.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrNotForPay)
}

func TestMarkCompensatedSingleShot(t *testing.T) {
	s, _, empRepo := seededService()

	created, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	_, err = s.Approve(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	compensated, err := s.MarkCompensated(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusCompensated, compensated.Status)

	_, err = s.MarkCompensated(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrNotApproved)

	// Credit happened exactly once, at approval
	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 120, emp.HourBankMinutes)
}

func TestRejectDoesNotCredit(t *testing.T) {
	s, _, empRepo := seededService()

	created, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = s.Reject(context.Background(), overtime.DecideOvertimeRequest{ID: created.ID, ApproverID: 99})
	require.NoError(t, err)

	emp, _ := empRepo.GetByID(context.Background(), 1)
	assert.Equal(t, 0, emp.HourBankMinutes)
}
