package review

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/review"
)

type Service struct {
	review.RequestRepository
	employee.EmployeeRepository
	notifier notification.Notifier
	logger   *slog.Logger
}

func NewService(
	requestRepository review.RequestRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
		logger:             logger,
	}
}

func (s *Service) Create(ctx context.Context, req review.CreateRequestRequest) (review.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return review.RequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.RequestRepository.Create(ctx, review.Request{
		EmployeeID:  req.EmployeeID,
		Kind:        review.Kind(req.Kind),
		Status:      review.StatusOpen,
		Description: req.Description,
	})
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to create review request: %w", err)
	}

	s.notifyAdmin(ctx, emp,
		fmt.Sprintf("Review request opened by %s (%s)", emp.RegistrationNumber, req.Kind))

	return review.ToResponse(created), nil
}

// StartReview moves an open request to in_review.
func (s *Service) StartReview(ctx context.Context, id int64) (review.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to get review request: %w", err)
	}

	if r.Status != review.StatusOpen {
		return review.RequestResponse{}, review.ErrNotOpen
	}

	if err := s.RequestRepository.UpdateStatus(ctx, r.ID, review.StatusInReview); err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to update review request status: %w", err)
	}
	r.Status = review.StatusInReview

	return review.ToResponse(r), nil
}

// Respond resolves the request: accepted requests complete, declined ones are
// rejected. A request already in a terminal status cannot be responded to
// again.
func (s *Service) Respond(ctx context.Context, req review.RespondRequest) (review.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to get review request: %w", err)
	}

	if r.Status.IsTerminal() {
		return review.RequestResponse{}, review.ErrAlreadyTerminal
	}

	status := review.StatusRejected
	if req.Accept {
		status = review.StatusCompleted
	}

	if err := s.RequestRepository.SetResponse(ctx, r.ID, status, req.Response, req.ResponderID); err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to respond to review request: %w", err)
	}
	r.Status = status
	r.Response = req.Response
	r.ResponderID = &req.ResponderID

	s.notifyEmployee(ctx, r.EmployeeID, req.ResponderID,
		fmt.Sprintf("Your review request was %s", status))

	return review.ToResponse(r), nil
}

// Cancel withdraws a request that has not been resolved yet.
func (s *Service) Cancel(ctx context.Context, id int64) (review.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to get review request: %w", err)
	}

	if r.Status != review.StatusOpen && r.Status != review.StatusInReview {
		return review.RequestResponse{}, review.ErrNotCancellable
	}

	if err := s.RequestRepository.UpdateStatus(ctx, r.ID, review.StatusCancelled); err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to update review request status: %w", err)
	}
	r.Status = review.StatusCancelled

	return review.ToResponse(r), nil
}

func (s *Service) Get(ctx context.Context, id int64) (review.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return review.RequestResponse{}, fmt.Errorf("failed to get review request: %w", err)
	}
	return review.ToResponse(r), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]review.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review requests: %w", err)
	}
	return review.ToResponseList(requests), nil
}

func (s *Service) ListOpen(ctx context.Context) ([]review.RequestResponse, error) {
	requests, err := s.RequestRepository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open review requests: %w", err)
	}
	return review.ToResponseList(requests), nil
}

func (s *Service) notifyAdmin(ctx context.Context, emp employee.Employee, message string) {
	senderID := int64(0)
	if emp.UserID != nil {
		senderID = *emp.UserID
	}
	if err := s.notifier.Notify(ctx, notification.AdminRecipient, senderID, message, notification.CategoryReview, false); err != nil {
		s.logger.Warn("failed to send review notification", "error", err)
	}
}

func (s *Service) notifyEmployee(ctx context.Context, employeeID, senderID int64, message string) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	recipient := strconv.FormatInt(*emp.UserID, 10)
	if err := s.notifier.Notify(ctx, recipient, senderID, message, notification.CategoryReview, false); err != nil {
		s.logger.Warn("failed to send review notification", "error", err)
	}
}
