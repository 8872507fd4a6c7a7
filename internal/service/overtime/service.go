package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/overtime"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type Service struct {
	txm database.TxManager
	overtime.OvertimeRepository
	employee.EmployeeRepository
	notifier notification.Notifier
	logger   *slog.Logger
}

func NewService(
	txm database.TxManager,
	overtimeRepository overtime.OvertimeRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		txm:                txm,
		OvertimeRepository: overtimeRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
		logger:             logger,
	}
}

func (s *Service) Register(ctx context.Context, req overtime.RegisterOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}
	start, end := req.Times()

	if !start.Before(end) {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidTimeRange
	}
	minutes := int(end.Sub(start) / time.Minute)
	if minutes <= 0 {
		return overtime.OvertimeResponse{}, overtime.ErrNonPositiveMinutes
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.OvertimeRepository.Create(ctx, overtime.Overtime{
		EmployeeID:      req.EmployeeID,
		StartAt:         start,
		EndAt:           end,
		Minutes:         minutes,
		Kind:            overtime.Kind(req.Kind),
		Status:          overtime.StatusPending,
		Justification:   req.Justification,
		ForCompensation: req.ForCompensation,
		ForPay:          req.ForPay,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	s.notifyAdmin(ctx, emp,
		fmt.Sprintf("Overtime registered by %s: %d minutes", emp.RegistrationNumber, minutes))

	return overtime.ToResponse(created), nil
}

// Approve confirms the record. Overtime flagged for compensation credits the
// employee's hour bank atomically with the status change.
func (s *Service) Approve(ctx context.Context, req overtime.DecideOvertimeRequest) (overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if o.ForCompensation {
			if _, err := s.EmployeeRepository.AdjustHourBank(ctx, o.EmployeeID, o.Minutes); err != nil {
				return err
			}
		}
		return s.OvertimeRepository.UpdateStatus(ctx, o.ID, overtime.StatusApproved, req.Note, &req.ApproverID)
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to approve overtime record: %w", err)
	}

	o.Status = overtime.StatusApproved
	if req.Note != "" {
		o.Note = req.Note
	}
	o.ApproverID = &req.ApproverID

	s.notifyEmployee(ctx, o.EmployeeID, req.ApproverID, "Your overtime record was approved")

	return overtime.ToResponse(o), nil
}

func (s *Service) Reject(ctx context.Context, req overtime.DecideOvertimeRequest) (overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if err := s.OvertimeRepository.UpdateStatus(ctx, o.ID, overtime.StatusRejected, req.Note, &req.ApproverID); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to reject overtime record: %w", err)
	}
	o.Status = overtime.StatusRejected
	if req.Note != "" {
		o.Note = req.Note
	}
	o.ApproverID = &req.ApproverID

	s.notifyEmployee(ctx, o.EmployeeID, req.ApproverID, "Your overtime record was rejected")

	return overtime.ToResponse(o), nil
}

// MarkPaid settles an approved record flagged for pay.
func (s *Service) MarkPaid(ctx context.Context, id int64) (overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if o.Status != overtime.StatusApproved {
		return overtime.OvertimeResponse{}, overtime.ErrNotApproved
	}
	if !o.ForPay {
		return overtime.OvertimeResponse{}, overtime.ErrNotForPay
	}

	if err := s.OvertimeRepository.UpdateStatus(ctx, o.ID, overtime.StatusPaid, "", nil); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime status: %w", err)
	}
	o.Status = overtime.StatusPaid

	return overtime.ToResponse(o), nil
}

// MarkCompensated settles an approved record flagged for compensation. The
// hour-bank credit happened at approval; this transition only closes the
// record, and the approved-status guard makes it single shot.
func (s *Service) MarkCompensated(ctx context.Context, id int64) (overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if o.Status != overtime.StatusApproved {
		return overtime.OvertimeResponse{}, overtime.ErrNotApproved
	}
	if !o.ForCompensation {
		return overtime.OvertimeResponse{}, overtime.ErrNotForCompensation
	}

	if err := s.OvertimeRepository.UpdateStatus(ctx, o.ID, overtime.StatusCompensated, "", nil); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime status: %w", err)
	}
	o.Status = overtime.StatusCompensated

	return overtime.ToResponse(o), nil
}

func (s *Service) Get(ctx context.Context, id int64) (overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}
	return overtime.ToResponse(o), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.OvertimeRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	return overtime.ToResponseList(overtimes), nil
}

func (s *Service) ListPending(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.OvertimeRepository.ListByStatus(ctx, overtime.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending overtime records: %w", err)
	}
	return overtime.ToResponseList(overtimes), nil
}

func (s *Service) notifyAdmin(ctx context.Context, emp employee.Employee, message string) {
	senderID := int64(0)
	if emp.UserID != nil {
		senderID = *emp.UserID
	}
	if err := s.notifier.Notify(ctx, notification.AdminRecipient, senderID, message, notification.CategoryOvertime, false); err != nil {
		s.logger.Warn("failed to send overtime notification", "error", err)
	}
}

func (s *Service) notifyEmployee(ctx context.Context, employeeID, senderID int64, message string) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	recipient := strconv.FormatInt(*emp.UserID, 10)
	if err := s.notifier.Notify(ctx, recipient, senderID, message, notification.CategoryOvertime, false); err != nil {
		s.logger.Warn("failed to send overtime notification", "error", err)
	}
}
