package notification

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
)

type Service struct {
	notification.NotificationRepository
}

func NewService(notificationRepository notification.NotificationRepository) *Service {
	return &Service{NotificationRepository: notificationRepository}
}

// Notify persists a notification. A numeric recipient addresses that user;
// anything else, including the literal "ADMIN", goes to the admin group.
func (s *Service) Notify(ctx context.Context, recipient string, senderID int64, message string, category notification.Category, urgent bool) error {
	n := notification.Notification{
		Recipient: notification.AdminRecipient,
		SenderID:  senderID,
		Message:   message,
		Category:  category,
		Urgent:    urgent,
	}
	if userID, err := strconv.ParseInt(recipient, 10, 64); err == nil {
		n.Recipient = recipient
		n.RecipientUserID = &userID
	}

	if _, err := s.NotificationRepository.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]notification.NotificationResponse, error) {
	notifications, err := s.NotificationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notification.ToResponseList(notifications), nil
}

func (s *Service) ListAdmin(ctx context.Context) ([]notification.NotificationResponse, error) {
	notifications, err := s.NotificationRepository.ListAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin notifications: %w", err)
	}
	return notification.ToResponseList(notifications), nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.NotificationRepository.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.NotificationRepository.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
