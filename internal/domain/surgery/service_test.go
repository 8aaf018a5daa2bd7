package surgery

import (
	"context"
	"testing"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

type mockRepo struct {
	surgeries map[int64]*Surgery
	nextID    int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{surgeries: make(map[int64]*Surgery), nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, s *Surgery) error {
	s.ID = m.nextID
	m.nextID++
	s.Status = StatusScheduled
	m.surgeries[s.ID] = s
	return nil
}

func (m *mockRepo) List(_ context.Context, f Filter) ([]*Surgery, error) {
	var result []*Surgery
	for _, s := range m.surgeries {
		if f.PatientID != 0 && s.PatientID != f.PatientID {
			continue
		}
		if f.SurgeonID != 0 && s.SurgeonID != f.SurgeonID {
			continue
		}
		if f.RoomNumber != "" && s.RoomNumber != f.RoomNumber {
			continue
		}
		if f.Date != "" && s.SurgeryDate != f.Date {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockRepo) GetStatus(_ context.Context, id int64) (string, bool, error) {
	s, ok := m.surgeries[id]
	if !ok {
		return "", false, nil
	}
	return s.Status, true, nil
}

func (m *mockRepo) SetStatus(_ context.Context, id int64, status string) error {
	m.surgeries[id].Status = status
	return nil
}

type mockDirectory struct{}

func (mockDirectory) PatientName(_ context.Context, id int64) (string, error) {
	if id != 1 {
		return "", apperr.NotFound("Patient not found")
	}
	return "John Doe", nil
}

func (mockDirectory) SurgeonName(_ context.Context, id int64) (string, error) {
	if id != 2 {
		return "", apperr.NotFound("Surgeon not found or not a valid surgeon")
	}
	return "Sam Scalpel", nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, mockDirectory{}, mockDirectory{}), repo
}

func validSurgery() *Surgery {
	return &Surgery{
		PatientID:   1,
		SurgeonID:   2,
		SurgeryType: "Appendectomy",
		RoomNumber:  "OR-1",
		SurgeryDate: "2025-03-10",
		StartTime:   "09:00",
		EndTime:     "11:30",
		Notes:       "routine",
	}
}

func TestScheduleSurgery(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	if err := svc.Schedule(context.Background(), sg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sg.ID == 0 {
		t.Error("expected ID to be set")
	}
	if sg.Status != StatusScheduled {
		t.Errorf("expected Scheduled, got %s", sg.Status)
	}
	if sg.PatientName != "John Doe" || sg.SurgeonName != "Sam Scalpel" {
		t.Errorf("expected joined names, got %q / %q", sg.PatientName, sg.SurgeonName)
	}
	if sg.TimeRange != "09:00 - 11:30" {
		t.Errorf("unexpected time range: %q", sg.TimeRange)
	}
}

func TestScheduleSurgery_UnknownPatient(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	sg.PatientID = 99
	err := svc.Schedule(context.Background(), sg)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestScheduleSurgery_InvalidSurgeon(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	sg.SurgeonID = 99
	err := svc.Schedule(context.Background(), sg)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
	if apperr.Detail(err) != "Surgeon not found or not a valid surgeon" {
		t.Errorf("unexpected message: %q", apperr.Detail(err))
	}
}

func TestScheduleSurgery_Validation(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	sg.SurgeryType = ""
	if err := svc.Schedule(context.Background(), sg); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus_Complete(t *testing.T) {
	svc, repo := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)

	if err := svc.UpdateStatus(context.Background(), sg.ID, StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.surgeries[sg.ID].Status != StatusCompleted {
		t.Errorf("expected Completed, got %s", repo.surgeries[sg.ID].Status)
	}
}

func TestUpdateStatus_TerminalIsFinal(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)
	svc.UpdateStatus(context.Background(), sg.ID, StatusCompleted)

	err := svc.UpdateStatus(context.Background(), sg.ID, StatusScheduled)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
	err = svc.UpdateStatus(context.Background(), sg.ID, StatusCancelled)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)

	err := svc.UpdateStatus(context.Background(), sg.ID, "Postponed")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), 99, StatusCompleted)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCancel_SoftDelete(t *testing.T) {
	svc, repo := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)

	if err := svc.Cancel(context.Background(), sg.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.surgeries[sg.ID]; !ok {
		t.Fatal("cancelled surgery should still exist")
	}
	if repo.surgeries[sg.ID].Status != StatusCancelled {
		t.Errorf("expected Cancelled, got %s", repo.surgeries[sg.ID].Status)
	}
}

func TestCancel_Idempotent(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)
	svc.Cancel(context.Background(), sg.ID)

	if err := svc.Cancel(context.Background(), sg.ID); err != nil {
		t.Errorf("expected repeated cancel to be a no-op, got %v", err)
	}
}

func TestCancel_CompletedSurgery(t *testing.T) {
	svc, _ := newTestService()

	sg := validSurgery()
	svc.Schedule(context.Background(), sg)
	svc.UpdateStatus(context.Background(), sg.ID, StatusCompleted)

	err := svc.Cancel(context.Background(), sg.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestListSurgeries_Filters(t *testing.T) {
	svc, _ := newTestService()

	a := validSurgery()
	svc.Schedule(context.Background(), a)
	b := validSurgery()
	b.RoomNumber = "OR-2"
	b.SurgeryDate = "2025-03-11"
	svc.Schedule(context.Background(), b)
	svc.Cancel(context.Background(), b.ID)

	all, _ := svc.List(context.Background(), Filter{})
	if len(all) != 2 {
		t.Errorf("expected 2, got %d", len(all))
	}

	scheduled, _ := svc.List(context.Background(), Filter{Status: StatusScheduled})
	if len(scheduled) != 1 {
		t.Errorf("expected 1, got %d", len(scheduled))
	}

	byRoom, _ := svc.List(context.Background(), Filter{RoomNumber: "OR-2"})
	if len(byRoom) != 1 {
		t.Errorf("expected 1, got %d", len(byRoom))
	}
}
