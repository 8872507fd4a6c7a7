package review

import "time"

type Kind string

const (
	KindPunchAdjustment Kind = "punch_adjustment"
	KindVacationReview  Kind = "vacation_review"
	KindLeaveReview     Kind = "leave_review"
	KindOvertimeReview  Kind = "overtime_review"
	KindHourBankReview  Kind = "hour_bank_review"
	KindOther           Kind = "other"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusInReview  Status = "in_review"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// Request is an employee correction/review request handled by an admin.
type Request struct {
	ID          int64
	EmployeeID  int64
	CreatedAt   time.Time
	Kind        Kind
	Status      Status
	Description string
	Response    string
	ResponderID *int64
	RespondedAt *time.Time
}
