package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrStartInPast      = errors.New("start date must be in the future")
	ErrOverlappingLeave = errors.New("leave overlaps an existing leave or vacation")
)
