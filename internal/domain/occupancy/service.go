package occupancy

import (
	"context"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// PatientDirectory is the slice of the patient service this package needs.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

// TxRunner executes fn inside a database transaction. Repos reached through
// the fn's context join that transaction.
type TxRunner func(ctx context.Context, fn func(context.Context) error) error

type Service struct {
	rooms       RoomRepository
	stays       StayRepository
	assignments AssignmentRepository
	patients    PatientDirectory
	inTx        TxRunner
}

func NewService(rooms RoomRepository, stays StayRepository, assignments AssignmentRepository, patients PatientDirectory, inTx TxRunner) *Service {
	return &Service{
		rooms:       rooms,
		stays:       stays,
		assignments: assignments,
		patients:    patients,
		inTx:        inTx,
	}
}

// -- Room inventory --

func (s *Service) CreateRoom(ctx context.Context, room *Room) error {
	if room.RoomNumber == "" {
		return apperr.Validation("room_number is required")
	}
	if room.RoomType == "" {
		return apperr.Validation("room_type is required")
	}
	switch room.Status {
	case "", StatusAvailable, StatusOccupied, StatusMaintenance:
	default:
		return apperr.Validation("status must be Available, Occupied or Maintenance")
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return apperr.Store("add room", err)
	}
	return nil
}

func (s *Service) ListRooms(ctx context.Context, status string) ([]*Room, error) {
	items, err := s.rooms.List(ctx, status)
	if err != nil {
		return nil, apperr.Store("list rooms", err)
	}
	return items, nil
}

// -- Assign / discharge --

// AssignRoom places a patient in a room. The stay insert and the room status
// flip happen in one transaction; the status flip is a conditional update so
// two concurrent assignments for the same room cannot both win.
func (s *Service) AssignRoom(ctx context.Context, req *AssignRequest) (*Stay, error) {
	if req.RoomNumber == "" {
		return nil, apperr.Validation("room_number is required")
	}
	if req.AdmissionDate == "" {
		return nil, apperr.Validation("admission_date is required")
	}
	ok, err := s.patients.PatientExists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Patient not found")
	}

	var stay *Stay
	err = s.inTx(ctx, func(ctx context.Context) error {
		if _, held, err := s.stays.OpenByPatient(ctx, req.PatientID); err != nil {
			return apperr.Store("check open stay", err)
		} else if held {
			return apperr.Conflict("Patient already has an active room assignment")
		}

		claimed, err := s.rooms.Claim(ctx, req.RoomNumber)
		if err != nil {
			return apperr.Store("claim room", err)
		}
		if !claimed {
			if _, exists, err := s.rooms.Status(ctx, req.RoomNumber); err != nil {
				return apperr.Store("check room", err)
			} else if !exists {
				return apperr.Conflict("Room %s does not exist", req.RoomNumber)
			}
			return apperr.Conflict("Room %s is not available", req.RoomNumber)
		}

		st := &Stay{
			PatientID:     req.PatientID,
			RoomNumber:    req.RoomNumber,
			AdmissionDate: req.AdmissionDate,
		}
		if req.DischargeDate != "" {
			d := req.DischargeDate
			st.DischargeDate = &d
			// A stay created already closed leaves the room free.
			if err := s.rooms.Release(ctx, req.RoomNumber); err != nil {
				return apperr.Store("release room", err)
			}
		}
		if err := s.stays.Create(ctx, st); err != nil {
			return apperr.Store("create stay", err)
		}
		stay = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stay, nil
}

// DischargePatient closes the patient's open stay and frees the room, in one
// transaction.
func (s *Service) DischargePatient(ctx context.Context, patientID int64) (*Stay, error) {
	var stay *Stay
	err := s.inTx(ctx, func(ctx context.Context) error {
		st, held, err := s.stays.OpenByPatient(ctx, patientID)
		if err != nil {
			return apperr.Store("find open stay", err)
		}
		if !held {
			return apperr.NotFound("No active room assignment found for patient")
		}
		discharge, err := s.stays.Close(ctx, st.ID)
		if err != nil {
			return apperr.Store("close stay", err)
		}
		if err := s.rooms.Release(ctx, st.RoomNumber); err != nil {
			return apperr.Store("release room", err)
		}
		st.DischargeDate = &discharge
		stay = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stay, nil
}

// -- Legacy admission records --

func (s *Service) CreateAssignment(ctx context.Context, a *RoomAssignment) error {
	if a.AdmissionDate == "" {
		return apperr.Validation("admission_date is required")
	}
	if a.RoomNumber == "" {
		return apperr.Validation("room_number is required")
	}
	ok, err := s.patients.PatientExists(ctx, a.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Patient not found")
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		return apperr.Store("assign room", err)
	}
	return nil
}

func (s *Service) ListAssignments(ctx context.Context, patientID int64) ([]*RoomAssignment, error) {
	items, err := s.assignments.List(ctx, patientID)
	if err != nil {
		return nil, apperr.Store("list room assignments", err)
	}
	return items, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id int64) error {
	found, err := s.assignments.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete room assignment", err)
	}
	if !found {
		return apperr.NotFound("Room assignment not found")
	}
	return nil
}
