package assignment

import (
	"context"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// PatientDirectory is the slice of the patient service this package needs.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

// StaffDirectory is the slice of the staff service this package needs.
type StaffDirectory interface {
	StaffExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	doctors  DoctorRepository
	nurses   NurseRepository
	patients PatientDirectory
	staff    StaffDirectory
}

func NewService(doctors DoctorRepository, nurses NurseRepository, patients PatientDirectory, staff StaffDirectory) *Service {
	return &Service{doctors: doctors, nurses: nurses, patients: patients, staff: staff}
}

func (s *Service) checkRefs(ctx context.Context, patientID, staffID int64) error {
	ok, err := s.patients.PatientExists(ctx, patientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Patient not found")
	}
	ok, err = s.staff.StaffExists(ctx, staffID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Staff member not found")
	}
	return nil
}

func (s *Service) AssignDoctor(ctx context.Context, a *DoctorAssignment) error {
	if a.AssignmentDate == "" {
		return apperr.Validation("assignment_date is required")
	}
	if err := s.checkRefs(ctx, a.PatientID, a.DoctorID); err != nil {
		return err
	}
	if err := s.doctors.Create(ctx, a); err != nil {
		return apperr.Store("assign doctor", err)
	}
	return nil
}

func (s *Service) ListDoctorAssignments(ctx context.Context) ([]*DoctorAssignment, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperr.Store("list doctor assignments", err)
	}
	return items, nil
}

func (s *Service) DeleteDoctorAssignment(ctx context.Context, id int64) error {
	found, err := s.doctors.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete doctor assignment", err)
	}
	if !found {
		return apperr.NotFound("Assignment not found")
	}
	return nil
}

func (s *Service) AssignNurse(ctx context.Context, a *NurseAssignment) error {
	if a.AssignmentDate == "" {
		return apperr.Validation("assignment_date is required")
	}
	if a.Shift == "" {
		return apperr.Validation("shift is required")
	}
	if err := s.checkRefs(ctx, a.PatientID, a.NurseID); err != nil {
		return err
	}
	if err := s.nurses.Create(ctx, a); err != nil {
		return apperr.Store("assign nurse", err)
	}
	return nil
}

func (s *Service) ListNurseAssignments(ctx context.Context) ([]*NurseAssignment, error) {
	items, err := s.nurses.List(ctx)
	if err != nil {
		return nil, apperr.Store("list nurse assignments", err)
	}
	return items, nil
}

func (s *Service) DeleteNurseAssignment(ctx context.Context, id int64) error {
	found, err := s.nurses.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete nurse assignment", err)
	}
	if !found {
		return apperr.NotFound("Assignment not found")
	}
	return nil
}
