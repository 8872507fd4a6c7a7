package notification

import "context"

// Notifier creates notification rows. Delivery is best effort: callers treat
// failures as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, recipient string, senderID int64, message string, category Category, urgent bool) error
}

type NotificationService interface {
	Notifier
	ListByUser(ctx context.Context, userID int64) ([]NotificationResponse, error)
	ListAdmin(ctx context.Context) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}
