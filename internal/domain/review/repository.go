package review

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Request, error)
	ListOpen(ctx context.Context) ([]Request, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	SetResponse(ctx context.Context, id int64, status Status, response string, responderID int64) error
}
