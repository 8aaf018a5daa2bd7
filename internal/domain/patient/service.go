package patient

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if p.Age <= 0 {
		return apperr.Validation("age must be positive")
	}
	if p.Gender == "" {
		return apperr.Validation("gender is required")
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return apperr.Store("add patient", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, apperr.Store("list patients", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperr.NotFound("Patient not found")
	}
	if err != nil {
		return nil, apperr.Store("get patient", err)
	}
	return p, nil
}

// LookupID resolves a patient id from an exact name match.
func (s *Service) LookupID(ctx context.Context, name string) (int64, error) {
	id, ok, err := s.patients.GetIDByName(ctx, name)
	if err != nil {
		return 0, apperr.Store("look up patient", err)
	}
	if !ok {
		return 0, apperr.NotFound("Patient not found")
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	found, err := s.patients.Update(ctx, p)
	if err != nil {
		return apperr.Store("update patient", err)
	}
	if !found {
		return apperr.NotFound("Patient not found")
	}
	return nil
}

// CanDelete runs the referential guard: a patient may only be deleted once no
// dependent rows remain in any referencing table.
func (s *Service) CanDelete(ctx context.Context, id int64) (*DeleteCheck, error) {
	blocking, err := s.patients.DependentTables(ctx, id)
	if err != nil {
		return nil, apperr.Store("check patient references", err)
	}
	return &DeleteCheck{Allowed: len(blocking) == 0, BlockingTables: blocking}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	check, err := s.CanDelete(ctx, id)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return apperr.Conflict(
			"Cannot delete patient because they have records in: %s. Delete those records first.",
			strings.Join(check.BlockingTables, ", "))
	}
	found, err := s.patients.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete patient", err)
	}
	if !found {
		return apperr.NotFound("Patient not found")
	}
	return nil
}

// PatientName resolves a patient's name for FK pre-checks in other domains.
func (s *Service) PatientName(ctx context.Context, id int64) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// PatientExists is the existence pre-check used before inserting rows that
// reference a patient.
func (s *Service) PatientExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.patients.Exists(ctx, id)
	if err != nil {
		return false, apperr.Store("check patient", err)
	}
	return ok, nil
}
