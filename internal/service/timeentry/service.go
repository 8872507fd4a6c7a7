package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/timeentry"
)

type Service struct {
	timeentry.TimeEntryRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewService(
	timeEntryRepository timeentry.TimeEntryRepository,
	employeeRepository employee.EmployeeRepository,
) *Service {
	return &Service{
		TimeEntryRepository: timeEntryRepository,
		EmployeeRepository:  employeeRepository,
		now:                 time.Now,
	}
}

// Punch records a clock event stamped with the server clock. The entry is
// created unvalidated; ordering problems are fixed through review requests.
func (s *Service) Punch(ctx context.Context, req timeentry.PunchRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.TimeEntryRepository.Create(ctx, timeentry.TimeEntry{
		EmployeeID: req.EmployeeID,
		Timestamp:  s.now(),
		Kind:       timeentry.Kind(req.Kind),
		Note:       req.Note,
		Validated:  false,
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return timeentry.ToResponse(created), nil
}

func (s *Service) Validate(ctx context.Context, id int64) (timeentry.TimeEntryResponse, error) {
	e, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	if err := s.TimeEntryRepository.SetValidated(ctx, e.ID, true); err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to validate time entry: %w", err)
	}
	e.Validated = true

	return timeentry.ToResponse(e), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.TimeEntryRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]timeentry.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return timeentry.ToResponseList(entries), nil
}

func (s *Service) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]timeentry.TimeEntryResponse, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return s.ListByEmployeeAndRange(ctx, employeeID, from, from.AddDate(0, 0, 1))
}

func (s *Service) ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]timeentry.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return timeentry.ToResponseList(entries), nil
}

func (s *Service) ListUnvalidated(ctx context.Context) ([]timeentry.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListUnvalidated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unvalidated time entries: %w", err)
	}
	return timeentry.ToResponseList(entries), nil
}
