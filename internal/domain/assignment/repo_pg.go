package assignment

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

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return pool
}

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) Create(ctx context.Context, a *DoctorAssignment) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO doctor_assignments (patient_id, doctor_id, assignment_date, reason)
		VALUES ($1, $2, $3::date, $4)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.AssignmentDate, a.Reason,
	).Scan(&a.ID)
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*DoctorAssignment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT da.id, da.patient_id, da.doctor_id,
		       to_char(da.assignment_date, 'YYYY-MM-DD'), da.reason,
		       p.name,
		       s.first_name || ' ' || s.last_name
		FROM doctor_assignments da
		JOIN patients p ON da.patient_id = p.id
		JOIN staff s ON da.doctor_id = s.id
		ORDER BY da.assignment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorAssignment
	for rows.Next() {
		var a DoctorAssignment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AssignmentDate,
			&a.Reason, &a.PatientName, &a.DoctorName); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM doctor_assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type nurseRepoPG struct {
	pool *pgxpool.Pool
}

func NewNurseRepoPG(pool *pgxpool.Pool) NurseRepository {
	return &nurseRepoPG{pool: pool}
}

func (r *nurseRepoPG) Create(ctx context.Context, a *NurseAssignment) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO nurse_assignments (patient_id, nurse_id, assignment_date, shift, responsibilities)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING id`,
		a.PatientID, a.NurseID, a.AssignmentDate, a.Shift, a.Responsibilities,
	).Scan(&a.ID)
}

func (r *nurseRepoPG) List(ctx context.Context) ([]*NurseAssignment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT na.id, na.patient_id, na.nurse_id,
		       to_char(na.assignment_date, 'YYYY-MM-DD'), na.shift, na.responsibilities,
		       p.name,
		       s.first_name || ' ' || s.last_name
		FROM nurse_assignments na
		JOIN patients p ON na.patient_id = p.id
		JOIN staff s ON na.nurse_id = s.id
		ORDER BY na.assignment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*NurseAssignment
	for rows.Next() {
		var a NurseAssignment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.NurseID, &a.AssignmentDate,
			&a.Shift, &a.Responsibilities, &a.PatientName, &a.NurseName); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *nurseRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM nurse_assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
