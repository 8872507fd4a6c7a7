package overtime

import "context"

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	GetByID(ctx context.Context, id int64) (Overtime, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Overtime, error)
	ListByStatus(ctx context.Context, status Status) ([]Overtime, error)
	UpdateStatus(ctx context.Context, id int64, status Status, note string, approverID *int64) error
}
