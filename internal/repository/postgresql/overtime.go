package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/overtime"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `id, employee_id, start_at, end_at, minutes, kind, status, justification,
	for_compensation, for_pay, approver_id, note, created_at, updated_at`

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var o overtime.Overtime
	err := row.Scan(
		&o.ID,
		&o.EmployeeID,
		&o.StartAt,
		&o.EndAt,
		&o.Minutes,
		&o.Kind,
		&o.Status,
		&o.Justification,
		&o.ForCompensation,
		&o.ForPay,
		&o.ApproverID,
		&o.Note,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func (r *overtimeRepositoryImpl) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtimes (employee_id, start_at, end_at, minutes, kind, status,
			justification, for_compensation, for_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.EmployeeID, o.StartAt, o.EndAt, o.Minutes, o.Kind, o.Status,
		o.Justification, o.ForCompensation, o.ForPay,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return overtime.Overtime{}, err
	}
	return o, nil
}

func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id int64) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOvertime(q.QueryRow(ctx,
		`SELECT `+overtimeColumns+` FROM overtimes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, err
	}
	return o, nil
}

func (r *overtimeRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]overtime.Overtime, error) {
	return r.list(ctx,
		`SELECT `+overtimeColumns+` FROM overtimes WHERE employee_id = $1 ORDER BY start_at DESC`,
		employeeID)
}

func (r *overtimeRepositoryImpl) ListByStatus(ctx context.Context, status overtime.Status) ([]overtime.Overtime, error) {
	return r.list(ctx,
		`SELECT `+overtimeColumns+` FROM overtimes WHERE status = $1 ORDER BY start_at`,
		status)
}

func (r *overtimeRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status overtime.Status, note string, approverID *int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtimes
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
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

func (r *overtimeRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, err
		}
		overtimes = append(overtimes, o)
	}
	return overtimes, rows.Err()
}
