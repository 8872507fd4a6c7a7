package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Leave, error)
	ListByStatus(ctx context.Context, status Status) ([]Leave, error)

	// ListOverlapping returns the employee's leaves intersecting [start,end]
	// in pending or approved status.
	ListOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]Leave, error)

	UpdateStatus(ctx context.Context, id int64, status Status, note string, approverID *int64) error
}
