package reports

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO analysis_reports (id, person_id, mode, schema_version, result, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.DB.ExecContext(ctx, query,
		report.ID,
		report.PersonID,
		report.Mode,
		report.SchemaVersion,
		[]byte(report.Result),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, reportID string) (Report, error) {
	const query = `
SELECT id, person_id, mode, schema_version, result, created_at
FROM analysis_reports
WHERE id = $1
LIMIT 1`
	var report Report
	var result []byte
	err := r.DB.QueryRowContext(ctx, query, reportID).Scan(
		&report.ID,
		&report.PersonID,
		&report.Mode,
		&report.SchemaVersion,
		&result,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	report.Result = result
	return report, nil
}

func (r *PGRepo) ListByPerson(ctx context.Context, personID string) ([]Report, error) {
	const query = `
SELECT id, person_id, mode, schema_version, result, created_at
FROM analysis_reports
WHERE person_id = $1
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var report Report
		var result []byte
		if err := rows.Scan(
			&report.ID,
			&report.PersonID,
			&report.Mode,
			&report.SchemaVersion,
			&result,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		report.Result = result
		out = append(out, report)
	}
	return out, rows.Err()
}
