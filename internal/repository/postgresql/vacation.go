package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/vacation"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

const vacationColumns = `id, employee_id, start_date, end_date, business_days, status, acquisition_period,
	approver_id, note, thirteenth_advance, sell_one_third, created_at, updated_at`

func scanVacation(row pgx.Row) (vacation.Vacation, error) {
	var v vacation.Vacation
	err := row.Scan(
		&v.ID,
		&v.EmployeeID,
		&v.StartDate,
		&v.EndDate,
		&v.BusinessDays,
		&v.Status,
		&v.AcquisitionPeriod,
		&v.ApproverID,
		&v.Note,
		&v.ThirteenthAdvance,
		&v.SellOneThird,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func (r *vacationRepositoryImpl) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (employee_id, start_date, end_date, business_days, status,
			acquisition_period, note, thirteenth_advance, sell_one_third)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		v.EmployeeID, v.StartDate, v.EndDate, v.BusinessDays, v.Status,
		v.AcquisitionPeriod, v.Note, v.ThirteenthAdvance, v.SellOneThird,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return vacation.Vacation{}, err
	}
	return v, nil
}

func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id int64) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	v, err := scanVacation(q.QueryRow(ctx,
		`SELECT `+vacationColumns+` FROM vacations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, err
	}
	return v, nil
}

func (r *vacationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]vacation.Vacation, error) {
	return r.list(ctx,
		`SELECT `+vacationColumns+` FROM vacations WHERE employee_id = $1 ORDER BY start_date DESC`,
		employeeID)
}

func (r *vacationRepositoryImpl) ListByStatus(ctx context.Context, status vacation.Status) ([]vacation.Vacation, error) {
	return r.list(ctx,
		`SELECT `+vacationColumns+` FROM vacations WHERE status = $1 ORDER BY start_date`,
		status)
}

func (r *vacationRepositoryImpl) ListOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]vacation.Vacation, error) {
	query := `
		SELECT ` + vacationColumns + `
		FROM vacations
		WHERE employee_id = $1
		  AND status IN ('pending', 'approved', 'completed')
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`
	return r.list(ctx, query, employeeID, start, end)
}

func (r *vacationRepositoryImpl) ListByAcquisitionPeriod(ctx context.Context, employeeID int64, period int) ([]vacation.Vacation, error) {
	return r.list(ctx,
		`SELECT `+vacationColumns+` FROM vacations WHERE employee_id = $1 AND acquisition_period = $2 ORDER BY start_date`,
		employeeID, period)
}

func (r *vacationRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status vacation.Status, note string, approverID *int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacations
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
		return vacation.ErrVacationNotFound
	}
	return nil
}

func (r *vacationRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}
