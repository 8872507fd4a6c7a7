package overtime

import "errors"

var (
	ErrOvertimeNotFound   = errors.New("overtime record not found")
	ErrInvalidTimeRange   = errors.New("start must be before end")
	ErrNonPositiveMinutes = errors.New("overtime duration must be positive")
	ErrNotApproved        = errors.New("overtime is not approved")
	ErrNotForPay          = errors.New("overtime is not flagged for pay")
	ErrNotForCompensation = errors.New("overtime is not flagged for compensation")
)
