package scheduling

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

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor, appointment_date, appointment_time)
		VALUES ($1, $2, $3::date, $4::time)
		RETURNING id`,
		a.PatientID, a.Doctor, a.AppointmentDate, a.AppointmentTime,
	).Scan(&a.ID)
}

func (r *repoPG) List(ctx context.Context, f Filter) ([]*Appointment, error) {
	q := `
		SELECT id, patient_id, doctor,
		       to_char(appointment_date, 'YYYY-MM-DD'),
		       to_char(appointment_time, 'HH24:MI')
		FROM appointments`
	var (
		conds []string
		args  []any
	)
	if f.Doctor != "" {
		args = append(args, f.Doctor)
		conds = append(conds, "doctor = $1")
	}
	if f.Date != "" {
		args = append(args, f.Date)
		if len(args) == 1 {
			conds = append(conds, "appointment_date = $1::date")
		} else {
			conds = append(conds, "appointment_date = $2::date")
		}
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY appointment_date, appointment_time"

	rows, err := r.conn(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.Doctor, &a.AppointmentDate, &a.AppointmentTime); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
