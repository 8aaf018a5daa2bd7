package clinical

import (
	"context"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// PatientDirectory is the slice of the patient service this package needs.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	diagnoses Repository
	patients  PatientDirectory
}

func NewService(diagnoses Repository, patients PatientDirectory) *Service {
	return &Service{diagnoses: diagnoses, patients: patients}
}

func (s *Service) Record(ctx context.Context, d *Diagnosis) error {
	if d.Diagnosis == "" {
		return apperr.Validation("diagnosis is required")
	}
	ok, err := s.patients.PatientExists(ctx, d.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Patient not found")
	}
	if err := s.diagnoses.Create(ctx, d); err != nil {
		return apperr.Store("record diagnosis", err)
	}
	return nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Diagnosis, error) {
	items, err := s.diagnoses.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperr.Store("list diagnoses", err)
	}
	return items, nil
}
