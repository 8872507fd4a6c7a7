package leave

import "time"

type Kind string

const (
	KindCompensatory Kind = "compensatory"
	KindAllowance    Kind = "allowance"
	KindHourBank     Kind = "hour_bank"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Leave is a day-off request. Hour-bank leaves debit the employee's balance
// on approval at eight hours per inclusive day.
type Leave struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Kind       Kind
	Status     Status
	Reason     string
	Note       string
	ApproverID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MinutesPerDay is the hour-bank cost of one leave day.
const MinutesPerDay = 8 * 60

// DebitMinutes is the hour-bank cost of the leave: inclusive days times
// eight hours.
func (l Leave) DebitMinutes() int {
	days := int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
	return days * MinutesPerDay
}
