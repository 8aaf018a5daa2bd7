package occupancy

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

type roomRepoPG struct {
	pool *pgxpool.Pool
}

func NewRoomRepoPG(pool *pgxpool.Pool) RoomRepository {
	return &roomRepoPG{pool: pool}
}

func (r *roomRepoPG) Create(ctx context.Context, room *Room) error {
	if room.Status == "" {
		room.Status = StatusAvailable
	}
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO rooms (room_number, room_type, status)
		VALUES ($1, $2, $3)`,
		room.RoomNumber, room.RoomType, room.Status)
	return err
}

func (r *roomRepoPG) List(ctx context.Context, status string) ([]*Room, error) {
	q := `SELECT room_number, room_type, status FROM rooms`
	var args []any
	if status != "" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY room_number`

	rows, err := conn(ctx, r.pool).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Room
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.RoomNumber, &room.RoomType, &room.Status); err != nil {
			return nil, err
		}
		items = append(items, &room)
	}
	return items, rows.Err()
}

func (r *roomRepoPG) Status(ctx context.Context, roomNumber string) (string, bool, error) {
	var status string
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT status FROM rooms WHERE room_number = $1`, roomNumber).Scan(&status)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

func (r *roomRepoPG) Claim(ctx context.Context, roomNumber string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE rooms SET status = 'Occupied'
		WHERE room_number = $1 AND status = 'Available'`,
		roomNumber)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *roomRepoPG) Release(ctx context.Context, roomNumber string) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE rooms SET status = 'Available' WHERE room_number = $1`,
		roomNumber)
	return err
}

type stayRepoPG struct {
	pool *pgxpool.Pool
}

func NewStayRepoPG(pool *pgxpool.Pool) StayRepository {
	return &stayRepoPG{pool: pool}
}

func (r *stayRepoPG) Create(ctx context.Context, s *Stay) error {
	var discharge any
	if s.DischargeDate != nil {
		discharge = *s.DischargeDate
	}
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO patient_rooms (patient_id, room_number, admission_date, discharge_date)
		VALUES ($1, $2, $3::date, $4::date)
		RETURNING id`,
		s.PatientID, s.RoomNumber, s.AdmissionDate, discharge,
	).Scan(&s.ID)
}

func (r *stayRepoPG) OpenByPatient(ctx context.Context, patientID int64) (*Stay, bool, error) {
	var s Stay
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, patient_id, room_number, to_char(admission_date, 'YYYY-MM-DD')
		FROM patient_rooms
		WHERE patient_id = $1 AND discharge_date IS NULL
		ORDER BY id DESC
		LIMIT 1`,
		patientID,
	).Scan(&s.ID, &s.PatientID, &s.RoomNumber, &s.AdmissionDate)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (r *stayRepoPG) Close(ctx context.Context, stayID int64) (string, error) {
	var discharge string
	err := conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE patient_rooms
		SET discharge_date = CURRENT_DATE
		WHERE id = $1
		RETURNING to_char(discharge_date, 'YYYY-MM-DD')`,
		stayID,
	).Scan(&discharge)
	return discharge, err
}

type assignmentRepoPG struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepoPG(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepoPG{pool: pool}
}

func (r *assignmentRepoPG) Create(ctx context.Context, a *RoomAssignment) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO room_assignments (
			patient_id, admission_date, nursing_unit,
			room_number, bed_number, number_of_days, assigned_nurse
		) VALUES ($1, $2::date, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.PatientID, a.AdmissionDate, a.NursingUnit,
		a.RoomNumber, a.BedNumber, a.NumberOfDays, a.AssignedNurse,
	).Scan(&a.ID)
}

func (r *assignmentRepoPG) List(ctx context.Context, patientID int64) ([]*RoomAssignment, error) {
	q := `
		SELECT ra.id, ra.patient_id, to_char(ra.admission_date, 'YYYY-MM-DD'),
		       ra.nursing_unit, ra.room_number, ra.bed_number,
		       ra.number_of_days, ra.assigned_nurse,
		       p.name,
		       to_char(ra.admission_date, 'YYYY-MM-DD')
		FROM room_assignments ra
		JOIN patients p ON ra.patient_id = p.id`
	var args []any
	if patientID != 0 {
		q += ` WHERE ra.patient_id = $1`
		args = append(args, patientID)
	}
	q += ` ORDER BY ra.admission_date DESC`

	rows, err := conn(ctx, r.pool).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*RoomAssignment
	for rows.Next() {
		var a RoomAssignment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.AdmissionDate,
			&a.NursingUnit, &a.RoomNumber, &a.BedNumber,
			&a.NumberOfDays, &a.AssignedNurse,
			&a.PatientName, &a.FormattedDate); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *assignmentRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM room_assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
