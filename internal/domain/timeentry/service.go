package timeentry

import (
	"context"
	"time"
)

type TimeEntryService interface {
	Punch(ctx context.Context, req PunchRequest) (TimeEntryResponse, error)
	Validate(ctx context.Context, id int64) (TimeEntryResponse, error)
	Delete(ctx context.Context, id int64) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]TimeEntryResponse, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]TimeEntryResponse, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]TimeEntryResponse, error)
	ListUnvalidated(ctx context.Context) ([]TimeEntryResponse, error)
}
