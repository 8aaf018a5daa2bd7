package scheduling

import (
	"context"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// PatientDirectory is the slice of the patient service the scheduler needs.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	appointments Repository
	patients     PatientDirectory
}

func NewService(appointments Repository, patients PatientDirectory) *Service {
	return &Service{appointments: appointments, patients: patients}
}

func (s *Service) Schedule(ctx context.Context, a *Appointment) error {
	if a.Doctor == "" {
		return apperr.Validation("doctor is required")
	}
	if a.AppointmentDate == "" || a.AppointmentTime == "" {
		return apperr.Validation("appointment_date and appointment_time are required")
	}
	ok, err := s.patients.PatientExists(ctx, a.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Patient not found")
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return apperr.Store("schedule appointment", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Appointment, error) {
	items, err := s.appointments.List(ctx, f)
	if err != nil {
		return nil, apperr.Store("list appointments", err)
	}
	return items, nil
}
