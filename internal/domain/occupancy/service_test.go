package occupancy

import (
	"context"
	"errors"
	"testing"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// -- Mocks --

type mockRoomRepo struct {
	rooms map[string]*Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *Room) error {
	if room.Status == "" {
		room.Status = StatusAvailable
	}
	m.rooms[room.RoomNumber] = room
	return nil
}

func (m *mockRoomRepo) List(_ context.Context, status string) ([]*Room, error) {
	var result []*Room
	for _, r := range m.rooms {
		if status == "" || r.Status == status {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomRepo) Status(_ context.Context, roomNumber string) (string, bool, error) {
	r, ok := m.rooms[roomNumber]
	if !ok {
		return "", false, nil
	}
	return r.Status, true, nil
}

func (m *mockRoomRepo) Claim(_ context.Context, roomNumber string) (bool, error) {
	r, ok := m.rooms[roomNumber]
	if !ok || r.Status != StatusAvailable {
		return false, nil
	}
	r.Status = StatusOccupied
	return true, nil
}

func (m *mockRoomRepo) Release(_ context.Context, roomNumber string) error {
	if r, ok := m.rooms[roomNumber]; ok {
		r.Status = StatusAvailable
	}
	return nil
}

type mockStayRepo struct {
	stays     map[int64]*Stay
	nextID    int64
	createErr error
}

func newMockStayRepo() *mockStayRepo {
	return &mockStayRepo{stays: make(map[int64]*Stay), nextID: 1}
}

func (m *mockStayRepo) Create(_ context.Context, s *Stay) error {
	if m.createErr != nil {
		return m.createErr
	}
	s.ID = m.nextID
	m.nextID++
	m.stays[s.ID] = s
	return nil
}

func (m *mockStayRepo) OpenByPatient(_ context.Context, patientID int64) (*Stay, bool, error) {
	for _, s := range m.stays {
		if s.PatientID == patientID && s.DischargeDate == nil {
			return s, true, nil
		}
	}
	return nil, false, nil
}

func (m *mockStayRepo) Close(_ context.Context, stayID int64) (string, error) {
	s, ok := m.stays[stayID]
	if !ok {
		return "", errors.New("no such stay")
	}
	d := "2025-03-05"
	s.DischargeDate = &d
	return d, nil
}

type mockAssignmentRepo struct {
	rows   map[int64]*RoomAssignment
	nextID int64
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{rows: make(map[int64]*RoomAssignment), nextID: 1}
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *RoomAssignment) error {
	a.ID = m.nextID
	m.nextID++
	m.rows[a.ID] = a
	return nil
}

func (m *mockAssignmentRepo) List(_ context.Context, patientID int64) ([]*RoomAssignment, error) {
	var result []*RoomAssignment
	for _, a := range m.rows {
		if patientID == 0 || a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

type mockPatients struct {
	ids map[int64]bool
}

func (m *mockPatients) PatientExists(_ context.Context, id int64) (bool, error) {
	return m.ids[id], nil
}

func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *mockRoomRepo, *mockStayRepo) {
	rooms := newMockRoomRepo()
	stays := newMockStayRepo()
	patients := &mockPatients{ids: map[int64]bool{1: true, 2: true}}
	svc := NewService(rooms, stays, newMockAssignmentRepo(), patients, passthroughTx)
	return svc, rooms, stays
}

func assignReq(patientID int64, room string) *AssignRequest {
	return &AssignRequest{PatientID: patientID, RoomNumber: room, AdmissionDate: "2025-03-01"}
}

// -- Tests --

func TestAssignRoom(t *testing.T) {
	svc, rooms, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})

	stay, err := svc.AssignRoom(context.Background(), assignReq(1, "101"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stay.ID == 0 {
		t.Error("expected stay ID to be set")
	}
	if stay.DischargeDate != nil {
		t.Error("expected open stay")
	}
	if rooms.rooms["101"].Status != StatusOccupied {
		t.Errorf("expected Occupied, got %s", rooms.rooms["101"].Status)
	}
}

func TestAssignRoom_RoomTaken(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})

	if _, err := svc.AssignRoom(context.Background(), assignReq(1, "101")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.AssignRoom(context.Background(), assignReq(2, "101"))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestAssignRoom_UnknownRoom(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AssignRoom(context.Background(), assignReq(1, "404"))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestAssignRoom_UnknownPatient(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})

	_, err := svc.AssignRoom(context.Background(), assignReq(99, "101"))
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAssignRoom_PatientAlreadyPlaced(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "102", RoomType: "Private"})

	if _, err := svc.AssignRoom(context.Background(), assignReq(1, "101")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.AssignRoom(context.Background(), assignReq(1, "102"))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestAssignRoom_MaintenanceRoom(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private", Status: StatusMaintenance})

	_, err := svc.AssignRoom(context.Background(), assignReq(1, "101"))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestAssignRoom_ClosedStayLeavesRoomFree(t *testing.T) {
	svc, rooms, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})

	req := assignReq(1, "101")
	req.DischargeDate = "2025-03-03"
	stay, err := svc.AssignRoom(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stay.DischargeDate == nil {
		t.Error("expected closed stay")
	}
	if rooms.rooms["101"].Status != StatusAvailable {
		t.Errorf("expected Available, got %s", rooms.rooms["101"].Status)
	}
}

func TestDischargePatient(t *testing.T) {
	svc, rooms, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})
	svc.AssignRoom(context.Background(), assignReq(1, "101"))

	stay, err := svc.DischargePatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stay.DischargeDate == nil {
		t.Error("expected discharge date to be set")
	}
	if rooms.rooms["101"].Status != StatusAvailable {
		t.Errorf("expected Available, got %s", rooms.rooms["101"].Status)
	}
}

func TestDischargePatient_NoOpenStay(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.DischargePatient(context.Background(), 1)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDischargeThenReassign(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})

	svc.AssignRoom(context.Background(), assignReq(1, "101"))
	svc.DischargePatient(context.Background(), 1)

	if _, err := svc.AssignRoom(context.Background(), assignReq(2, "101")); err != nil {
		t.Fatalf("expected reassignment after discharge to succeed, got %v", err)
	}
}

func TestAssignRoom_StayInsertFailureSurfaces(t *testing.T) {
	svc, _, stays := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})
	stays.createErr = errors.New("insert failed")

	_, err := svc.AssignRoom(context.Background(), assignReq(1, "101"))
	if apperr.KindOf(err) != apperr.KindStore {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestCreateRoom_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CreateRoom(context.Background(), &Room{RoomType: "Private"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
	err = svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private", Status: "Broken"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListRooms_StatusFilter(t *testing.T) {
	svc, _, _ := newTestService()
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "101", RoomType: "Private"})
	svc.CreateRoom(context.Background(), &Room{RoomNumber: "102", RoomType: "Ward"})
	svc.AssignRoom(context.Background(), assignReq(1, "101"))

	available, err := svc.ListRooms(context.Background(), StatusAvailable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].RoomNumber != "102" {
		t.Errorf("unexpected available rooms: %v", available)
	}
}

func TestRoomAssignmentRecords(t *testing.T) {
	svc, _, _ := newTestService()

	a := &RoomAssignment{
		PatientID:     1,
		AdmissionDate: "2025-03-01",
		NursingUnit:   "3W",
		RoomNumber:    "305",
		BedNumber:     "A",
		NumberOfDays:  4,
		AssignedNurse: "Mary Major",
	}
	if err := svc.CreateAssignment(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := svc.ListAssignments(context.Background(), 1)
	if len(items) != 1 {
		t.Errorf("expected 1 assignment, got %d", len(items))
	}

	if err := svc.DeleteAssignment(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteAssignment(context.Background(), a.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
