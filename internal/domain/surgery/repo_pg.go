package surgery

import (
	"context"
	"fmt"

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

func (r *repoPG) Create(ctx context.Context, s *Surgery) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO surgeries (
			patient_id, surgeon_id, surgery_type, room_number,
			surgery_date, start_time, end_time, notes, status
		) VALUES ($1, $2, $3, $4, $5::date, $6::time, $7::time, $8, 'Scheduled')
		RETURNING id, status`,
		s.PatientID, s.SurgeonID, s.SurgeryType, s.RoomNumber,
		s.SurgeryDate, s.StartTime, s.EndTime, s.Notes,
	).Scan(&s.ID, &s.Status)
}

const listQuery = `
	SELECT s.id, s.patient_id, p.name,
	       s.surgeon_id, st.first_name || ' ' || st.last_name,
	       s.surgery_type, s.room_number,
	       to_char(s.surgery_date, 'YYYY-MM-DD'),
	       to_char(s.start_time, 'HH24:MI'),
	       to_char(s.end_time, 'HH24:MI'),
	       s.notes, s.status,
	       to_char(s.start_time, 'HH24:MI') || ' - ' || to_char(s.end_time, 'HH24:MI')
	FROM surgeries s
	JOIN patients p ON s.patient_id = p.id
	JOIN staff st ON s.surgeon_id = st.id`

func (r *repoPG) List(ctx context.Context, f Filter) ([]*Surgery, error) {
	q := listQuery
	var (
		conds []string
		args  []any
	)
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.PatientID != 0 {
		add("s.patient_id = $%d", f.PatientID)
	}
	if f.SurgeonID != 0 {
		add("s.surgeon_id = $%d", f.SurgeonID)
	}
	if f.RoomNumber != "" {
		add("s.room_number = $%d", f.RoomNumber)
	}
	if f.Date != "" {
		add("s.surgery_date = $%d::date", f.Date)
	}
	if f.Status != "" {
		add("s.status = $%d", f.Status)
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY s.surgery_date, s.start_time"

	rows, err := r.conn(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Surgery
	for rows.Next() {
		var s Surgery
		if err := rows.Scan(&s.ID, &s.PatientID, &s.PatientName,
			&s.SurgeonID, &s.SurgeonName,
			&s.SurgeryType, &s.RoomNumber,
			&s.SurgeryDate, &s.StartTime, &s.EndTime,
			&s.Notes, &s.Status, &s.TimeRange); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *repoPG) GetStatus(ctx context.Context, id int64) (string, bool, error) {
	var status string
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT status FROM surgeries WHERE id = $1`, id).Scan(&status)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

func (r *repoPG) SetStatus(ctx context.Context, id int64, status string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE surgeries SET status = $1 WHERE id = $2`, status, id)
	return err
}
