package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements is the fixed hospital schema. Every statement is
// idempotent, so Apply can run on every process start without versioning.
// Order matters: referenced tables come before their dependents.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		age INT NOT NULL,
		gender VARCHAR(10) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(100) NOT NULL,
		address VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		age INT NOT NULL,
		employment_no VARCHAR(20) UNIQUE NOT NULL,
		ssn VARCHAR(20) UNIQUE NOT NULL,
		street VARCHAR(100) NOT NULL,
		city VARCHAR(50) NOT NULL,
		state VARCHAR(50) NOT NULL,
		zip VARCHAR(20) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		emp_type VARCHAR(20) NOT NULL,
		role VARCHAR(50) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		doctor VARCHAR(100) NOT NULL,
		appointment_date DATE NOT NULL,
		appointment_time TIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS diagnoses (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		diagnosis TEXT NOT NULL,
		diagnosis_date DATE NOT NULL DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE IF NOT EXISTS room_assignments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		admission_date DATE NOT NULL,
		nursing_unit VARCHAR(20) NOT NULL,
		room_number VARCHAR(20) NOT NULL,
		bed_number VARCHAR(10) NOT NULL,
		number_of_days INT NOT NULL,
		assigned_nurse VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_number VARCHAR(20) PRIMARY KEY,
		room_type VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Available',
		CONSTRAINT rooms_status_check CHECK (status IN ('Available', 'Occupied', 'Maintenance'))
	)`,
	`CREATE TABLE IF NOT EXISTS patient_rooms (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		room_number VARCHAR(20) NOT NULL REFERENCES rooms(room_number),
		admission_date DATE NOT NULL,
		discharge_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS shifts (
		id BIGSERIAL PRIMARY KEY,
		staff_id BIGINT NOT NULL REFERENCES staff(id),
		shift_type VARCHAR(20) NOT NULL,
		shift_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS doctor_assignments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		doctor_id BIGINT NOT NULL REFERENCES staff(id),
		assignment_date DATE NOT NULL,
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS nurse_assignments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		nurse_id BIGINT NOT NULL REFERENCES staff(id),
		assignment_date DATE NOT NULL,
		shift VARCHAR(20) NOT NULL,
		responsibilities TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS surgeries (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		surgeon_id BIGINT NOT NULL REFERENCES staff(id),
		surgery_type VARCHAR(100) NOT NULL,
		room_number VARCHAR(20) NOT NULL,
		surgery_date DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		notes TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'Scheduled',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Schema applies the fixed hospital schema at startup.
type Schema struct {
	pool *pgxpool.Pool
}

func NewSchema(pool *pgxpool.Pool) *Schema {
	return &Schema{pool: pool}
}

// Apply runs all schema statements in a single transaction so a partial
// startup never leaves half the tables missing.
func (s *Schema) Apply(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// TableCount reports how many tables the fixed schema defines. Exposed for
// the schema CLI command's summary output.
func (s *Schema) TableCount() int {
	return len(schemaStatements)
}
