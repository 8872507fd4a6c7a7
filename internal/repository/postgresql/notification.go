package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

const notificationColumns = `id, recipient, recipient_user_id, sender_id, message, category, urgent, read, sent_at`

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(
		&n.ID,
		&n.Recipient,
		&n.RecipientUserID,
		&n.SenderID,
		&n.Message,
		&n.Category,
		&n.Urgent,
		&n.Read,
		&n.SentAt,
	)
	return n, err
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (recipient, recipient_user_id, sender_id, message, category, urgent, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, sent_at
	`

	err := q.QueryRow(ctx, query,
		n.Recipient, n.RecipientUserID, n.SenderID, n.Message, n.Category, n.Urgent, n.Read,
	).Scan(&n.ID, &n.SentAt)
	if err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id int64) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	n, err := scanNotification(q.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE recipient_user_id = $1 ORDER BY sent_at DESC`,
		userID)
}

func (r *notificationRepositoryImpl) ListAdmin(ctx context.Context) ([]notification.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE recipient = $1 ORDER BY sent_at DESC`,
		notification.AdminRecipient)
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, userID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE recipient_user_id = $1 AND read = FALSE`, userID)
	return err
}

func (r *notificationRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
