package leave

import "context"

type LeaveService interface {
	Request(ctx context.Context, req RequestLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, id int64) (LeaveResponse, error)
	Get(ctx context.Context, id int64) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
}
