package timeentry

import "time"

type Kind string

const (
	KindShiftStart Kind = "shift_start"
	KindLunchOut   Kind = "lunch_out"
	KindLunchIn    Kind = "lunch_in"
	KindShiftEnd   Kind = "shift_end"
)

// TimeEntry is a single clock punch. Entries are stamped server-side and
// start unvalidated; ordering against earlier punches is left to admin
// review.
type TimeEntry struct {
	ID         int64
	EmployeeID int64
	Timestamp  time.Time
	Kind       Kind
	Note       string
	Validated  bool
}
