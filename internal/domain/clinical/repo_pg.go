package clinical

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newark-medical/hospital-api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

func (r *repoPG) Create(ctx context.Context, d *Diagnosis) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO diagnoses (patient_id, diagnosis)
		VALUES ($1, $2)
		RETURNING id, to_char(diagnosis_date, 'YYYY-MM-DD')`,
		d.PatientID, d.Diagnosis,
	).Scan(&d.ID, &d.DiagnosisDate)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Diagnosis, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, diagnosis, to_char(diagnosis_date, 'YYYY-MM-DD')
		FROM diagnoses
		WHERE patient_id = $1
		ORDER BY diagnosis_date DESC, id DESC`,
		patientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Diagnosis
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.ID, &d.PatientID, &d.Diagnosis, &d.DiagnosisDate); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}
