package notification

import (
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type NotificationResponse struct {
	ID        int64    `json:"id"`
	Recipient string   `json:"recipient"`
	SenderID  int64    `json:"sender_id"`
	Message   string   `json:"message"`
	Category  Category `json:"category"`
	Urgent    bool     `json:"urgent"`
	Read      bool     `json:"read"`
	SentAt    string   `json:"sent_at"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Recipient: n.Recipient,
		SenderID:  n.SenderID,
		Message:   n.Message,
		Category:  n.Category,
		Urgent:    n.Urgent,
		Read:      n.Read,
		SentAt:    n.SentAt.Format(validator.DateTimeLayout),
	}
}

func ToResponseList(notifications []Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, ToResponse(n))
	}
	return out
}
