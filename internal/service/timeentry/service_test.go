package timeentry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/timeentry"
)

type fakeTimeEntryRepo struct {
	entries map[int64]timeentry.TimeEntry
	nextID  int64
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: make(map[int64]timeentry.TimeEntry), nextID: 1}
}

func (r *fakeTimeEntryRepo) Create(_ context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	e.ID = r.nextID
	r.nextID++
	r.entries[e.ID] = e
	return e, nil
}

func (r *fakeTimeEntryRepo) GetByID(_ context.Context, id int64) (timeentry.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}
	return e, nil
}

func (r *fakeTimeEntryRepo) ListByEmployee(_ context.Context, employeeID int64) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeTimeEntryRepo) ListByEmployeeAndRange(_ context.Context, employeeID int64, from, to time.Time) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID != employeeID {
			continue
		}
		if !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeTimeEntryRepo) ListUnvalidated(_ context.Context) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range r.entries {
		if !e.Validated {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeTimeEntryRepo) SetValidated(_ context.Context, id int64, validated bool) error {
	e, ok := r.entries[id]
	if !ok {
		return timeentry.ErrTimeEntryNotFound
	}
	e.Validated = validated
	r.entries[id] = e
	return nil
}

func (r *fakeTimeEntryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return timeentry.ErrTimeEntryNotFound
	}
	delete(r.entries, id)
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

func seededService() (*Service, *fakeTimeEntryRepo) {
	empRepo := newFakeEmployeeRepo(employee.Employee{ID: 1})
	repo := newFakeTimeEntryRepo()
	s := NewService(repo, empRepo)
	s.now = func() time.Time { return time.Date(2025, time.March, 10, 8, 0, 3, 0, time.UTC) }
	return s, repo
}

func TestPunchUsesServerClockAndStartsUnvalidated(t *testing.T) {
	s, repo := seededService()

	created, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "shift_start"})
	require.NoError(t, err)
	assert.False(t, created.Validated)
	assert.Equal(t, "2025-03-10 08:00:03", created.Timestamp)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, timeentry.KindShiftStart, stored.Kind)
}

func TestPunchRejectsUnknownKind(t *testing.T) {
	s, _ := seededService()

	_, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "coffee_break"})
	assert.Error(t, err)
}

func TestPunchRejectsUnknownEmployee(t *testing.T) {
	s, _ := seededService()

	_, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 42, Kind: "shift_start"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestValidateMarksEntry(t *testing.T) {
	s, _ := seededService()

	created, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "shift_start"})
	require.NoError(t, err)

	validated, err := s.Validate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, validated.Validated)

	unvalidated, err := s.ListUnvalidated(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unvalidated)
}

func TestListByEmployeeAndDateFiltersOneDay(t *testing.T) {
	s, _ := seededService()

	_, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "shift_start"})
	require.NoError(t, err)

	s.now = func() time.Time { return time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC) }
	_, err = s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "shift_start"})
	require.NoError(t, err)

	entries, err := s.ListByEmployeeAndDate(context.Background(), 1, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteRemovesEntry(t *testing.T) {
	s, repo := seededService()

	created, err := s.Punch(context.Background(), timeentry.PunchRequest{EmployeeID: 1, Kind: "shift_end"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), created.ID))
	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}
