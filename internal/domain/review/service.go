package review

import "context"

type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	StartReview(ctx context.Context, id int64) (RequestResponse, error)
	Respond(ctx context.Context, req RespondRequest) (RequestResponse, error)
	Cancel(ctx context.Context, id int64) (RequestResponse, error)
	Get(ctx context.Context, id int64) (RequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]RequestResponse, error)
	ListOpen(ctx context.Context) ([]RequestResponse, error)
}
