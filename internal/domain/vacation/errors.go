package vacation

import "errors"

var (
	ErrVacationNotFound     = errors.New("vacation request not found")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInsufficientNotice   = errors.New("vacation must be requested at least 30 days in advance")
	ErrOverlappingVacation  = errors.New("vacation overlaps an existing request")
	ErrAcquisitionExceeded  = errors.New("exceeds the 30-day limit for the acquisition period")
	ErrNotApproved          = errors.New("vacation is not approved")
	ErrNotFinishedYet       = errors.New("vacation has not finished yet")
	ErrAlreadyStarted       = errors.New("an approved vacation that already started cannot be cancelled")
)
