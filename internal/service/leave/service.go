package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/leave"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type Service struct {
	txm database.TxManager
	leave.LeaveRepository
	employee.EmployeeRepository
	notifier notification.Notifier
	logger   *slog.Logger

	now func() time.Time
}

func NewService(
	txm database.TxManager,
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		txm:                txm,
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
		logger:             logger,
		now:                time.Now,
	}
}

func (s *Service) Request(ctx context.Context, req leave.RequestLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	start, end := req.Dates()

	if start.After(end) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	today := s.now().Truncate(24 * time.Hour)
	if start.Before(today) {
		return leave.LeaveResponse{}, leave.ErrStartInPast
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	overlapping, err := s.LeaveRepository.ListOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if len(overlapping) > 0 {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Kind:       leave.Kind(req.Kind),
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifyAdmin(ctx, emp,
		fmt.Sprintf("Leave requested by %s: %s to %s", emp.RegistrationNumber, req.StartDate, req.EndDate))

	return leave.ToResponse(created), nil
}

// Approve marks the leave approved. Hour-bank leaves debit the employee's
// balance atomically with the status change.
func (s *Service) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if l.Kind == leave.KindHourBank {
			if _, err := s.EmployeeRepository.AdjustHourBank(ctx, l.EmployeeID, -l.DebitMinutes()); err != nil {
				return err
			}
		}
		return s.LeaveRepository.UpdateStatus(ctx, l.ID, leave.StatusApproved, req.Note, &req.ApproverID)
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	l.Status = leave.StatusApproved
	if req.Note != "" {
		l.Note = req.Note
	}
	l.ApproverID = &req.ApproverID

	s.notifyEmployee(ctx, l.EmployeeID, req.ApproverID, "Your leave request was approved")

	return leave.ToResponse(l), nil
}

func (s *Service) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, l.ID, leave.StatusRejected, req.Note, &req.ApproverID); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}
	l.Status = leave.StatusRejected
	if req.Note != "" {
		l.Note = req.Note
	}
	l.ApproverID = &req.ApproverID

	s.notifyEmployee(ctx, l.EmployeeID, req.ApproverID, "Your leave request was rejected")

	return leave.ToResponse(l), nil
}

// Cancel withdraws a leave. Cancelling an approved hour-bank leave credits
// the debited minutes back, in the same transaction as the status change.
func (s *Service) Cancel(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if l.Status == leave.StatusApproved && l.Kind == leave.KindHourBank {
			if _, err := s.EmployeeRepository.AdjustHourBank(ctx, l.EmployeeID, l.DebitMinutes()); err != nil {
				return err
			}
		}
		return s.LeaveRepository.UpdateStatus(ctx, l.ID, leave.StatusCancelled, "", nil)
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}
	l.Status = leave.StatusCancelled

	return leave.ToResponse(l), nil
}

func (s *Service) Get(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return leave.ToResponse(l), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leave.ToResponseList(leaves), nil
}

func (s *Service) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leaves: %w", err)
	}
	return leave.ToResponseList(leaves), nil
}

func (s *Service) notifyAdmin(ctx context.Context, emp employee.Employee, message string) {
	senderID := int64(0)
	if emp.UserID != nil {
		senderID = *emp.UserID
	}
	if err := s.notifier.Notify(ctx, notification.AdminRecipient, senderID, message, notification.CategoryLeave, false); err != nil {
		s.logger.Warn("failed to send leave notification", "error", err)
	}
}

func (s *Service) notifyEmployee(ctx context.Context, employeeID, senderID int64, message string) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	recipient := strconv.FormatInt(*emp.UserID, 10)
	if err := s.notifier.Notify(ctx, recipient, senderID, message, notification.CategoryLeave, false); err != nil {
		s.logger.Warn("failed to send leave notification", "error", err)
	}
}
