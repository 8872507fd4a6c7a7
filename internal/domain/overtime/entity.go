package overtime

import "time"

type Kind string

const (
	KindNormal  Kind = "normal"
	KindNight   Kind = "night"
	KindSunday  Kind = "sunday"
	KindHoliday Kind = "holiday"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusPaid        Status = "paid"
	StatusCompensated Status = "compensated"
)

// Overtime is a worked-overtime record. Approved compensatory overtime
// credits the employee's hour bank with Minutes.
type Overtime struct {
	ID              int64
	EmployeeID      int64
	StartAt         time.Time
	EndAt           time.Time
	Minutes         int
	Kind            Kind
	Status          Status
	Justification   string
	ForCompensation bool
	ForPay          bool
	ApproverID      *int64
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
