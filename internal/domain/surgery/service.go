package surgery

import (
	"context"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// PatientDirectory is the slice of the patient service this package needs.
type PatientDirectory interface {
	PatientName(ctx context.Context, id int64) (string, error)
}

// SurgeonDirectory resolves staff members allowed to perform surgery.
type SurgeonDirectory interface {
	SurgeonName(ctx context.Context, id int64) (string, error)
}

type Service struct {
	surgeries Repository
	patients  PatientDirectory
	surgeons  SurgeonDirectory
}

func NewService(surgeries Repository, patients PatientDirectory, surgeons SurgeonDirectory) *Service {
	return &Service{surgeries: surgeries, patients: patients, surgeons: surgeons}
}

// Schedule verifies both references, inserts with status Scheduled and
// returns the denormalized record for immediate display.
func (s *Service) Schedule(ctx context.Context, sg *Surgery) error {
	if sg.SurgeryType == "" {
		return apperr.Validation("surgery_type is required")
	}
	if sg.RoomNumber == "" {
		return apperr.Validation("room_number is required")
	}
	if sg.SurgeryDate == "" || sg.StartTime == "" || sg.EndTime == "" {
		return apperr.Validation("surgery_date, start_time and end_time are required")
	}
	patientName, err := s.patients.PatientName(ctx, sg.PatientID)
	if err != nil {
		return err
	}
	surgeonName, err := s.surgeons.SurgeonName(ctx, sg.SurgeonID)
	if err != nil {
		return err
	}
	if err := s.surgeries.Create(ctx, sg); err != nil {
		return apperr.Store("schedule surgery", err)
	}
	sg.PatientName = patientName
	sg.SurgeonName = surgeonName
	sg.TimeRange = sg.StartTime + " - " + sg.EndTime
	return nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Surgery, error) {
	items, err := s.surgeries.List(ctx, f)
	if err != nil {
		return nil, apperr.Store("list surgeries", err)
	}
	return items, nil
}

// UpdateStatus moves a surgery through Scheduled -> Completed | Cancelled.
// Terminal statuses never transition again, except that cancelling an
// already cancelled surgery is accepted as a no-op.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
	default:
		return apperr.Validation("status must be Scheduled, Completed or Cancelled")
	}
	current, ok, err := s.surgeries.GetStatus(ctx, id)
	if err != nil {
		return apperr.Store("get surgery", err)
	}
	if !ok {
		return apperr.NotFound("Surgery not found")
	}
	if current == status {
		return nil
	}
	if current == StatusCompleted || current == StatusCancelled {
		return apperr.Conflict("Surgery is already %s", current)
	}
	if err := s.surgeries.SetStatus(ctx, id, status); err != nil {
		return apperr.Store("update surgery status", err)
	}
	return nil
}

// Cancel is the soft delete: the row stays, status becomes Cancelled.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, StatusCancelled)
}
