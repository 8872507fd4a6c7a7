package vacation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/vacation"
)

// maxBusinessDaysPerPeriod caps vacation days charged against one
// acquisition period.
const maxBusinessDaysPerPeriod = 30

// minNoticeDays is the required antecedence between request and start.
const minNoticeDays = 30

type Service struct {
	vacation.VacationRepository
	employee.EmployeeRepository
	notifier notification.Notifier
	logger   *slog.Logger

	now func() time.Time
}

func NewService(
	vacationRepository vacation.VacationRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		VacationRepository: vacationRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
		logger:             logger,
		now:                time.Now,
	}
}

func (s *Service) Request(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}
	start, end := req.Dates()

	if start.After(end) {
		return vacation.VacationResponse{}, vacation.ErrInvalidDateRange
	}
	if start.Before(s.now().AddDate(0, 0, minNoticeDays)) {
		return vacation.VacationResponse{}, vacation.ErrInsufficientNotice
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	overlapping, err := s.VacationRepository.ListOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to check overlapping vacations: %w", err)
	}
	if len(overlapping) > 0 {
		return vacation.VacationResponse{}, vacation.ErrOverlappingVacation
	}

	inPeriod, err := s.VacationRepository.ListByAcquisitionPeriod(ctx, req.EmployeeID, req.AcquisitionPeriod)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to list vacations in acquisition period: %w", err)
	}
	used := 0
	for _, v := range inPeriod {
		if v.Status == vacation.StatusApproved || v.Status == vacation.StatusCompleted {
			used += v.BusinessDays
		}
	}
	if used+req.BusinessDays > maxBusinessDaysPerPeriod {
		return vacation.VacationResponse{}, vacation.ErrAcquisitionExceeded
	}

	created, err := s.VacationRepository.Create(ctx, vacation.Vacation{
		EmployeeID:        req.EmployeeID,
		StartDate:         start,
		EndDate:           end,
		BusinessDays:      req.BusinessDays,
		Status:            vacation.StatusPending,
		AcquisitionPeriod: req.AcquisitionPeriod,
		Note:              req.Note,
		ThirteenthAdvance: req.ThirteenthAdvance,
		SellOneThird:      req.SellOneThird,
	})
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	s.notifyAdmin(ctx, emp,
		fmt.Sprintf("Vacation requested by %s: %s to %s", emp.RegistrationNumber, req.StartDate, req.EndDate))

	return vacation.ToResponse(created), nil
}

func (s *Service) Approve(ctx context.Context, req vacation.DecideVacationRequest) (vacation.VacationResponse, error) {
	return s.decide(ctx, req, vacation.StatusApproved, "Your vacation request was approved")
}

func (s *Service) Reject(ctx context.Context, req vacation.DecideVacationRequest) (vacation.VacationResponse, error) {
	return s.decide(ctx, req, vacation.StatusRejected, "Your vacation request was rejected")
}

func (s *Service) decide(ctx context.Context, req vacation.DecideVacationRequest, status vacation.Status, message string) (vacation.VacationResponse, error) {
	v, err := s.VacationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if err := s.VacationRepository.UpdateStatus(ctx, v.ID, status, req.Note, &req.ApproverID); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation status: %w", err)
	}
	v.Status = status
	if req.Note != "" {
		v.Note = req.Note
	}
	v.ApproverID = &req.ApproverID

	s.notifyEmployee(ctx, v.EmployeeID, req.ApproverID, message)

	return vacation.ToResponse(v), nil
}

// Complete closes an approved vacation whose end date already passed.
func (s *Service) Complete(ctx context.Context, id int64) (vacation.VacationResponse, error) {
	v, err := s.VacationRepository.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if v.Status != vacation.StatusApproved {
		return vacation.VacationResponse{}, vacation.ErrNotApproved
	}
	if !v.EndDate.Before(s.now()) {
		return vacation.VacationResponse{}, vacation.ErrNotFinishedYet
	}

	if err := s.VacationRepository.UpdateStatus(ctx, v.ID, vacation.StatusCompleted, "", nil); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation status: %w", err)
	}
	v.Status = vacation.StatusCompleted

	return vacation.ToResponse(v), nil
}

// Cancel withdraws a request. An approved vacation that already started can
// no longer be cancelled.
func (s *Service) Cancel(ctx context.Context, id int64) (vacation.VacationResponse, error) {
	v, err := s.VacationRepository.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if v.Status == vacation.StatusApproved && !s.now().Before(v.StartDate) {
		return vacation.VacationResponse{}, vacation.ErrAlreadyStarted
	}

	if err := s.VacationRepository.UpdateStatus(ctx, v.ID, vacation.StatusCancelled, "", nil); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation status: %w", err)
	}
	v.Status = vacation.StatusCancelled

	return vacation.ToResponse(v), nil
}

func (s *Service) Get(ctx context.Context, id int64) (vacation.VacationResponse, error) {
	v, err := s.VacationRepository.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	return vacation.ToResponse(v), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]vacation.VacationResponse, error) {
	vacations, err := s.VacationRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	return vacation.ToResponseList(vacations), nil
}

func (s *Service) ListPending(ctx context.Context) ([]vacation.VacationResponse, error) {
	vacations, err := s.VacationRepository.ListByStatus(ctx, vacation.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending vacations: %w", err)
	}
	return vacation.ToResponseList(vacations), nil
}

func (s *Service) notifyAdmin(ctx context.Context, emp employee.Employee, message string) {
	senderID := int64(0)
	if emp.UserID != nil {
		senderID = *emp.UserID
	}
	if err := s.notifier.Notify(ctx, notification.AdminRecipient, senderID, message, notification.CategoryVacation, false); err != nil {
		s.logger.Warn("failed to send vacation notification", "error", err)
	}
}

func (s *Service) notifyEmployee(ctx context.Context, employeeID, senderID int64, message string) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	recipient := strconv.FormatInt(*emp.UserID, 10)
	if err := s.notifier.Notify(ctx, recipient, senderID, message, notification.CategoryVacation, false); err != nil {
		s.logger.Warn("failed to send vacation notification", "error", err)
	}
}
