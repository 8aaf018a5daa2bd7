package clinical

import "context"

// Repository persists diagnoses.
type Repository interface {
	Create(ctx context.Context, d *Diagnosis) error
	ListByPatient(ctx context.Context, patientID int64) ([]*Diagnosis, error)
}
