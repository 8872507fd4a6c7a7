package timeentry

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, e TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id int64) (TimeEntry, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]TimeEntry, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]TimeEntry, error)
	ListUnvalidated(ctx context.Context) ([]TimeEntry, error)
	SetValidated(ctx context.Context, id int64, validated bool) error
	Delete(ctx context.Context, id int64) error
}
