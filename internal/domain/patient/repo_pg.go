package patient

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const patientCols = `id, name, age, gender, phone, email, address, created_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Phone, &p.Email, &p.Address, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (name, age, gender, phone, email, address)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return r.scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) GetIDByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.conn(ctx).QueryRow(ctx, `SELECT id FROM patients WHERE name = $1`, name).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patients SET name=$2, age=$3, gender=$4, phone=$5, email=$6, address=$7
		WHERE id = $1`,
		p.ID, p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// dependentTables lists every table that references patients, in schema order.
// The guard reports all blocking tables, not just the first.
var dependentTables = []string{
	"appointments",
	"diagnoses",
	"room_assignments",
	"doctor_assignments",
	"nurse_assignments",
	"surgeries",
}

func (r *repoPG) DependentTables(ctx context.Context, id int64) ([]string, error) {
	var blocking []string
	for _, table := range dependentTables {
		var count int
		// Table names come from the fixed list above, never from input.
		err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM `+table+` WHERE patient_id = $1`, id).Scan(&count)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			blocking = append(blocking, table)
		}
	}
	return blocking, nil
}
