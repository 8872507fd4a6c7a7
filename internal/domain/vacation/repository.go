package vacation

import (
	"context"
	"time"
)

type VacationRepository interface {
	Create(ctx context.Context, v Vacation) (Vacation, error)
	GetByID(ctx context.Context, id int64) (Vacation, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Vacation, error)
	ListByStatus(ctx context.Context, status Status) ([]Vacation, error)

	// ListOverlapping returns records for the employee whose [start,end]
	// range intersects the given one, in any non-terminated status.
	ListOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]Vacation, error)

	// ListByAcquisitionPeriod returns every record of the employee charged
	// against the given acquisition-period year.
	ListByAcquisitionPeriod(ctx context.Context, employeeID int64, period int) ([]Vacation, error)

	UpdateStatus(ctx context.Context, id int64, status Status, note string, approverID *int64) error
}
