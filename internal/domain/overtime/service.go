package overtime

import "context"

type OvertimeService interface {
	Register(ctx context.Context, req RegisterOvertimeRequest) (OvertimeResponse, error)
	Approve(ctx context.Context, req DecideOvertimeRequest) (OvertimeResponse, error)
	Reject(ctx context.Context, req DecideOvertimeRequest) (OvertimeResponse, error)
	MarkPaid(ctx context.Context, id int64) (OvertimeResponse, error)
	MarkCompensated(ctx context.Context, id int64) (OvertimeResponse, error)
	Get(ctx context.Context, id int64) (OvertimeResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]OvertimeResponse, error)
	ListPending(ctx context.Context) ([]OvertimeResponse, error)
}
