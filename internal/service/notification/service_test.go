package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
)

type fakeNotificationRepo struct {
	notifications map[int64]notification.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[int64]notification.Notification), nextID: 1}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	n.ID = r.nextID
	r.nextID++
	n.SentAt = time.Now()
	r.notifications[n.ID] = n
	return n, nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id int64) (notification.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return notification.Notification{}, notification.ErrNotificationNotFound
	}
	return n, nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range r.notifications {
		if n.RecipientUserID != nil && *n.RecipientUserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) ListAdmin(_ context.Context) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range r.notifications {
		if n.Recipient == notification.AdminRecipient {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	n, ok := r.notifications[id]
	if !ok {
		return notification.ErrNotificationNotFound
	}
	n.Read = true
	r.notifications[id] = n
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID int64) error {
	for id, n := range r.notifications {
		if n.RecipientUserID != nil && *n.RecipientUserID == userID {
			n.Read = true
			r.notifications[id] = n
		}
	}
	return nil
}

func TestNotifyNumericRecipientTargetsUser(t *testing.T) {
	s := NewService(newFakeNotificationRepo())

	require.NoError(t, s.Notify(context.Background(), "42", 1, "hello", notification.CategoryGeneral, false))

	mine, err := s.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "42", mine[0].Recipient)

	admins, err := s.ListAdmin(context.Background())
	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestNotifyNonNumericRecipientGoesToAdmin(t *testing.T) {
	s := NewService(newFakeNotificationRepo())

	require.NoError(t, s.Notify(context.Background(), "ADMIN", 1, "pending request", notification.CategoryVacation, true))
	require.NoError(t, s.Notify(context.Background(), "supervisor", 1, "weird recipient", notification.CategoryGeneral, false))

	admins, err := s.ListAdmin(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 2)
	for _, n := range admins {
		assert.Equal(t, notification.AdminRecipient, n.Recipient)
	}
}

func TestMarkReadFlows(t *testing.T) {
	repo := newFakeNotificationRepo()
	s := NewService(repo)

	require.NoError(t, s.Notify(context.Background(), "7", 1, "one", notification.CategoryGeneral, false))
	require.NoError(t, s.Notify(context.Background(), "7", 1, "two", notification.CategoryGeneral, false))

	require.NoError(t, s.MarkAllRead(context.Background(), 7))

	mine, err := s.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	for _, n := range mine {
		assert.True(t, n.Read)
	}

	assert.ErrorIs(t, s.MarkRead(context.Background(), 999), notification.ErrNotificationNotFound)
}
