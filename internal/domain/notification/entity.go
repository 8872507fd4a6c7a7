package notification

import "time"

// AdminRecipient is the sentinel recipient for the admin group.
const AdminRecipient = "ADMIN"

type Category string

const (
	CategoryVacation Category = "vacation"
	CategoryLeave    Category = "leave"
	CategoryOvertime Category = "overtime"
	CategoryReview   Category = "review"
	CategoryHourBank Category = "hour_bank"
	CategoryGeneral  Category = "general"
)

// Notification is a persisted, best-effort message. Recipient is either a
// user id rendered as a string or the literal "ADMIN" group.
type Notification struct {
	ID              int64
	Recipient       string
	RecipientUserID *int64
	SenderID        int64
	Message         string
	Category        Category
	Urgent          bool
	Read            bool
	SentAt          time.Time
}
