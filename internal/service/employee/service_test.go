package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee), nextID: 1}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range r.employees {
		if existing.RegistrationNumber == e.RegistrationNumber {
			return employee.Employee{}, employee.ErrRegistrationNumberExists
		}
	}
	e.ID = r.nextID
	r.nextID++
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

func createEmployee(t *testing.T, s *Service) employee.EmployeeResponse {
	t.Helper()
	created, err := s.Create(context.Background(), employee.CreateEmployeeRequest{
		RegistrationNumber: "E-001",
		JobTitle:           "Analyst",
		Department:         "Finance",
		AdmissionDate:      "2023-05-02",
	})
	require.NoError(t, err)
	return created
}

func TestCreateAndGet(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())

	created := createEmployee(t, s)
	assert.Equal(t, 0, created.HourBankMinutes)

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "E-001", got.RegistrationNumber)
	assert.Equal(t, "2023-05-02", got.AdmissionDate)
}

func TestCreateDuplicateRegistrationNumber(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())
	createEmployee(t, s)

	_, err := s.Create(context.Background(), employee.CreateEmployeeRequest{
		RegistrationNumber: "E-001",
		JobTitle:           "Clerk",
		AdmissionDate:      "2024-01-10",
	})
	assert.ErrorIs(t, err, employee.ErrRegistrationNumberExists)
}

func TestUpdatePartialFields(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())
	created := createEmployee(t, s)

	title := "Senior Analyst"
	require.NoError(t, s.Update(context.Background(), employee.UpdateEmployeeRequest{ID: created.ID, JobTitle: &title}))

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Analyst", got.JobTitle)
	assert.Equal(t, "Finance", got.Department)
}

// Balance walk: 0, +120, failed 480 debit, +360, -480, back to 0.
func TestHourBankAdjustmentSequence(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())
	created := createEmployee(t, s)

	adjust := func(minutes int) (employee.EmployeeResponse, error) {
		return s.AdjustHourBank(context.Background(), employee.AdjustHourBankRequest{
			EmployeeID: created.ID, Minutes: minutes, Mode: "add",
		})
	}

	got, err := adjust(120)
	require.NoError(t, err)
	assert.Equal(t, 120, got.HourBankMinutes)

	_, err = adjust(-480)
	assert.ErrorIs(t, err, employee.ErrInsufficientHourBank)

	got, err = s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.HourBankMinutes)

	got, err = adjust(360)
	require.NoError(t, err)
	assert.Equal(t, 480, got.HourBankMinutes)

	got, err = adjust(-480)
	require.NoError(t, err)
	assert.Equal(t, 0, got.HourBankMinutes)
}

func TestHourBankSetMode(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())
	created := createEmployee(t, s)

	got, err := s.AdjustHourBank(context.Background(), employee.AdjustHourBankRequest{
		EmployeeID: created.ID, Minutes: 600, Mode: "set",
	})
	require.NoError(t, err)
	assert.Equal(t, 600, got.HourBankMinutes)

	_, err = s.AdjustHourBank(context.Background(), employee.AdjustHourBankRequest{
		EmployeeID: created.ID, Minutes: -1, Mode: "set",
	})
	assert.ErrorIs(t, err, employee.ErrInsufficientHourBank)
}

func TestDelete(t *testing.T) {
	s := NewService(newFakeEmployeeRepo())
	created := createEmployee(t, s)

	require.NoError(t, s.Delete(context.Background(), created.ID))
	_, err := s.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
