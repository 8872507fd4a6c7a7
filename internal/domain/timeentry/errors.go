package timeentry

import "errors"

var ErrTimeEntryNotFound = errors.New("time entry not found")
