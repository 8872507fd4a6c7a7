package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/review"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) review.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `id, employee_id, created_at, kind, status, description, response, responder_id, responded_at`

func scanRequest(row pgx.Row) (review.Request, error) {
	var rr review.Request
	err := row.Scan(
		&rr.ID,
		&rr.EmployeeID,
		&rr.CreatedAt,
		&rr.Kind,
		&rr.Status,
		&rr.Description,
		&rr.Response,
		&rr.ResponderID,
		&rr.RespondedAt,
	)
	return rr, err
}

func (r *requestRepositoryImpl) Create(ctx context.Context, rr review.Request) (review.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO review_requests (employee_id, kind, status, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rr.EmployeeID, rr.Kind, rr.Status, rr.Description,
	).Scan(&rr.ID, &rr.CreatedAt)
	if err != nil {
		return review.Request{}, err
	}
	return rr, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (review.Request, error) {
	q := GetQuerier(ctx, r.db)

	rr, err := scanRequest(q.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM review_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return review.Request{}, review.ErrRequestNotFound
		}
		return review.Request{}, err
	}
	return rr, nil
}

func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]review.Request, error) {
	return r.list(ctx,
		`SELECT `+requestColumns+` FROM review_requests WHERE employee_id = $1 ORDER BY created_at DESC`,
		employeeID)
}

func (r *requestRepositoryImpl) ListOpen(ctx context.Context) ([]review.Request, error) {
	return r.list(ctx,
		`SELECT `+requestColumns+` FROM review_requests WHERE status IN ('open', 'in_review') ORDER BY created_at`)
}

func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status review.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE review_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return review.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepositoryImpl) SetResponse(ctx context.Context, id int64, status review.Status, response string, responderID int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE review_requests
		SET status = $2, response = $3, responder_id = $4, responded_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, response, responderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return review.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]review.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []review.Request
	for rows.Next() {
		rr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, rr)
	}
	return requests, rows.Err()
}
