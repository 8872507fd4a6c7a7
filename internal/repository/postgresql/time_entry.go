package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/timeentry"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `id, employee_id, entry_timestamp, kind, note, validated`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Timestamp,
		&e.Kind,
		&e.Note,
		&e.Validated,
	)
	return e, err
}

func (r *timeEntryRepositoryImpl) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (employee_id, entry_timestamp, kind, note, validated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.Timestamp, e.Kind, e.Note, e.Validated,
	).Scan(&e.ID)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}
	return e, nil
}

func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanTimeEntry(q.QueryRow(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, err
	}
	return e, nil
}

func (r *timeEntryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]timeentry.TimeEntry, error) {
	return r.list(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE employee_id = $1 ORDER BY entry_timestamp DESC`,
		employeeID)
}

func (r *timeEntryRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]timeentry.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND entry_timestamp >= $2 AND entry_timestamp < $3
		ORDER BY entry_timestamp
	`
	return r.list(ctx, query, employeeID, from, to)
}

func (r *timeEntryRepositoryImpl) ListUnvalidated(ctx context.Context) ([]timeentry.TimeEntry, error) {
	return r.list(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE validated = FALSE ORDER BY entry_timestamp`)
}

func (r *timeEntryRepositoryImpl) SetValidated(ctx context.Context, id int64, validated bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE time_entries SET validated = $2 WHERE id = $1`, id, validated)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
