package review

import "errors"

var (
	ErrRequestNotFound   = errors.New("review request not found")
	ErrNotOpen           = errors.New("review request is not open")
	ErrAlreadyTerminal   = errors.New("review request already resolved")
	ErrNotCancellable    = errors.New("review request cannot be cancelled in its current status")
	ErrDescriptionBounds = errors.New("description must be between 10 and 1000 characters")
)
