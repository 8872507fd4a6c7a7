package vacation

import "context"

type VacationService interface {
	Request(ctx context.Context, req RequestVacationRequest) (VacationResponse, error)
	Approve(ctx context.Context, req DecideVacationRequest) (VacationResponse, error)
	Reject(ctx context.Context, req DecideVacationRequest) (VacationResponse, error)
	Complete(ctx context.Context, id int64) (VacationResponse, error)
	Cancel(ctx context.Context, id int64) (VacationResponse, error)
	Get(ctx context.Context, id int64) (VacationResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]VacationResponse, error)
	ListPending(ctx context.Context) ([]VacationResponse, error)
}
