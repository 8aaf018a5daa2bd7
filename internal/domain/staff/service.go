package staff

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

type Service struct {
	staff  Repository
	shifts ShiftRepository
}

func NewService(staff Repository, shifts ShiftRepository) *Service {
	return &Service{staff: staff, shifts: shifts}
}

// -- Staff directory --

func (s *Service) Create(ctx context.Context, m *Member) error {
	if m.FirstName == "" || m.LastName == "" {
		return apperr.Validation("first_name and last_name are required")
	}
	if m.EmploymentNo == "" {
		return apperr.Validation("employment_no is required")
	}
	if m.SSN == "" {
		return apperr.Validation("ssn is required")
	}
	if m.Role == "" {
		return apperr.Validation("role is required")
	}
	if err := s.staff.Create(ctx, m); err != nil {
		return apperr.Store("add staff", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*Member, error) {
	items, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperr.Store("list staff", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Member, error) {
	m, err := s.staff.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperr.NotFound("Staff member not found")
	}
	if err != nil {
		return nil, apperr.Store("get staff", err)
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, m *Member) error {
	found, err := s.staff.Update(ctx, m)
	if err != nil {
		return apperr.Store("update staff", err)
	}
	if !found {
		return apperr.NotFound("Staff member not found")
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	found, err := s.staff.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete staff", err)
	}
	if !found {
		return apperr.NotFound("Staff member not found")
	}
	return nil
}

// ListNurses returns the nurse directory for assignment dropdowns.
func (s *Service) ListNurses(ctx context.Context) ([]*DirectoryEntry, error) {
	items, err := s.staff.ListByRoles(ctx, RoleNurse)
	if err != nil {
		return nil, apperr.Store("list nurses", err)
	}
	return items, nil
}

// ListDoctors returns physicians and surgeons.
func (s *Service) ListDoctors(ctx context.Context) ([]*DirectoryEntry, error) {
	items, err := s.staff.ListByRoles(ctx, RolePhysician, RoleSurgeon)
	if err != nil {
		return nil, apperr.Store("list doctors", err)
	}
	return items, nil
}

// StaffExists is the existence pre-check used before inserting rows that
// reference a staff member.
func (s *Service) StaffExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.staff.Exists(ctx, id)
	if err != nil {
		return false, apperr.Store("check staff", err)
	}
	return ok, nil
}

// SurgeonName resolves a staff member's full name, requiring a role that may
// perform surgery. Returns NotFound otherwise.
func (s *Service) SurgeonName(ctx context.Context, id int64) (string, error) {
	name, ok, err := s.staff.NameWithRoles(ctx, id, RoleSurgeon, RolePhysician)
	if err != nil {
		return "", apperr.Store("check surgeon", err)
	}
	if !ok {
		return "", apperr.NotFound("Surgeon not found or not a valid surgeon")
	}
	return name, nil
}

// -- Shifts --

func (s *Service) ScheduleShift(ctx context.Context, sh *Shift) error {
	if sh.ShiftType == "" {
		return apperr.Validation("shift_type is required")
	}
	if sh.ShiftDate == "" {
		return apperr.Validation("shift_date is required")
	}
	ok, err := s.StaffExists(ctx, sh.StaffID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Staff member not found")
	}
	if err := s.shifts.Create(ctx, sh); err != nil {
		return apperr.Store("schedule shift", err)
	}
	return nil
}

func (s *Service) ListShifts(ctx context.Context) ([]*ShiftDetail, error) {
	items, err := s.shifts.List(ctx)
	if err != nil {
		return nil, apperr.Store("list shifts", err)
	}
	return items, nil
}

func (s *Service) DeleteShift(ctx context.Context, id int64) error {
	found, err := s.shifts.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete shift", err)
	}
	if !found {
		return apperr.NotFound("Shift not found")
	}
	return nil
}
