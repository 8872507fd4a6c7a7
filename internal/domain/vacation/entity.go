package vacation

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Vacation is a paid-vacation request tracked against an annual acquisition
// period (at most 30 business days per period).
type Vacation struct {
	ID                int64
	EmployeeID        int64
	StartDate         time.Time
	EndDate           time.Time
	BusinessDays      int
	Status            Status
	AcquisitionPeriod int
	ApproverID        *int64
	Note              string

	// Payment riders
	ThirteenthAdvance bool
	SellOneThird      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
