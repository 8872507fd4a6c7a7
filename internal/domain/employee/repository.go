package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id int64) error

	// AdjustHourBank applies delta (minutes, may be negative) to the
	// employee's balance in a single guarded UPDATE. It fails with
	// ErrInsufficientHourBank when the result would be negative and returns
	// the new balance otherwise.
	AdjustHourBank(ctx context.Context, id int64, delta int) (int, error)

	// SetHourBank overwrites the balance (admin adjustment).
	SetHourBank(ctx context.Context, id int64, minutes int) error
}
