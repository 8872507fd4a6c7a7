package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/leave"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, start_date, end_date, kind, status, reason, note, approver_id, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.StartDate,
		&l.EndDate,
		&l.Kind,
		&l.Status,
		&l.Reason,
		&l.Note,
		&l.ApproverID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, start_date, end_date, kind, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.StartDate, l.EndDate, l.Kind, l.Status, l.Reason,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE employee_id = $1 ORDER BY start_date DESC`,
		employeeID)
}

func (r *leaveRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Leave, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE status = $1 ORDER BY start_date`,
		status)
}

func (r *leaveRepositoryImpl) ListOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
		  AND status IN ('pending', 'approved')
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`
	return r.list(ctx, query, employeeID, start, end)
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status, note string, approverID *int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2,
		    note = CASE WHEN $3 <> '' THEN $3 ELSE note END,
		    approver_id = COALESCE($4, approver_id),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, note, approverID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
