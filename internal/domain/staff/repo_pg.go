package staff

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newark-medical/hospital-api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Staff Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const staffCols = `id, first_name, last_name, age, employment_no, ssn,
	street, city, state, zip, gender, phone, emp_type, role, created_at`

func (r *repoPG) scanMember(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Age, &m.EmploymentNo, &m.SSN,
		&m.Street, &m.City, &m.State, &m.Zip, &m.Gender, &m.Phone, &m.EmpType, &m.Role, &m.CreatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Member) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO staff (first_name, last_name, age, employment_no, ssn,
			street, city, state, zip, gender, phone, emp_type, role)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id, created_at`,
		m.FirstName, m.LastName, m.Age, m.EmploymentNo, m.SSN,
		m.Street, m.City, m.State, m.Zip, m.Gender, m.Phone, m.EmpType, m.Role).
		Scan(&m.ID, &m.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Member, error) {
	return r.scanMember(r.conn(ctx).QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Member, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+staffCols+` FROM staff ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Member
	for rows.Next() {
		m, err := r.scanMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByRoles(ctx context.Context, roles ...string) ([]*DirectoryEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, first_name, last_name, employment_no, role
		FROM staff
		WHERE role = ANY($1)
		ORDER BY last_name, first_name`, roles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DirectoryEntry
	for rows.Next() {
		var e DirectoryEntry
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.EmploymentNo, &e.Role); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, m *Member) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff SET first_name=$2, last_name=$3, age=$4, employment_no=$5, ssn=$6,
			street=$7, city=$8, state=$9, zip=$10, gender=$11, phone=$12, emp_type=$13, role=$14
		WHERE id = $1`,
		m.ID, m.FirstName, m.LastName, m.Age, m.EmploymentNo, m.SSN,
		m.Street, m.City, m.State, m.Zip, m.Gender, m.Phone, m.EmpType, m.Role)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM staff WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) NameWithRoles(ctx context.Context, id int64, roles ...string) (string, bool, error) {
	var name string
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT first_name || ' ' || last_name
		FROM staff WHERE id = $1 AND role = ANY($2)`, id, roles).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// =========== Shift Repository ===========

type shiftRepoPG struct{ pool *pgxpool.Pool }

func NewShiftRepoPG(pool *pgxpool.Pool) ShiftRepository { return &shiftRepoPG{pool: pool} }

func (r *shiftRepoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

func (r *shiftRepoPG) Create(ctx context.Context, s *Shift) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO shifts (staff_id, shift_type, shift_date)
		VALUES ($1, $2, $3::date)
		RETURNING id`,
		s.StaffID, s.ShiftType, s.ShiftDate).Scan(&s.ID)
}

func (r *shiftRepoPG) List(ctx context.Context) ([]*ShiftDetail, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT s.id, s.staff_id,
			st.first_name || ' ' || st.last_name AS staff_name,
			st.role, s.shift_type,
			to_char(s.shift_date, 'YYYY-MM-DD') AS shift_date,
			to_char(s.shift_date, 'MM/DD/YYYY') AS formatted_date
		FROM shifts s
		JOIN staff st ON s.staff_id = st.id
		ORDER BY s.shift_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ShiftDetail
	for rows.Next() {
		var d ShiftDetail
		if err := rows.Scan(&d.ID, &d.StaffID, &d.StaffName, &d.Role, &d.ShiftType, &d.ShiftDate, &d.FormattedDate); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *shiftRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
