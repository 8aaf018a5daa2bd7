package clinical

import (
	"context"
	"testing"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

type mockRepo struct {
	diagnoses []*Diagnosis
	nextID    int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, d *Diagnosis) error {
	d.ID = m.nextID
	m.nextID++
	if d.DiagnosisDate == "" {
		d.DiagnosisDate = "2025-03-01"
	}
	m.diagnoses = append(m.diagnoses, d)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64) ([]*Diagnosis, error) {
	var result []*Diagnosis
	for _, d := range m.diagnoses {
		if d.PatientID == patientID {
			result = append(result, d)
		}
	}
	return result, nil
}

type mockPatients struct {
	ids map[int64]bool
}

func (m *mockPatients) PatientExists(_ context.Context, id int64) (bool, error) {
	return m.ids[id], nil
}

func newTestService() *Service {
	return NewService(newMockRepo(), &mockPatients{ids: map[int64]bool{1: true}})
}

func TestRecordDiagnosis(t *testing.T) {
	svc := newTestService()

	d := &Diagnosis{PatientID: 1, Diagnosis: "Hypertension"}
	if err := svc.Record(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == 0 {
		t.Error("expected ID to be set")
	}
	if d.DiagnosisDate == "" {
		t.Error("expected diagnosis date to default")
	}
}

func TestRecordDiagnosis_UnknownPatient(t *testing.T) {
	svc := newTestService()

	d := &Diagnosis{PatientID: 99, Diagnosis: "Hypertension"}
	err := svc.Record(context.Background(), d)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRecordDiagnosis_Validation(t *testing.T) {
	svc := newTestService()

	err := svc.Record(context.Background(), &Diagnosis{PatientID: 1})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListDiagnosesByPatient(t *testing.T) {
	svc := newTestService()

	svc.Record(context.Background(), &Diagnosis{PatientID: 1, Diagnosis: "Hypertension"})
	svc.Record(context.Background(), &Diagnosis{PatientID: 1, Diagnosis: "Asthma"})

	items, err := svc.ListByPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2, got %d", len(items))
	}

	none, _ := svc.ListByPatient(context.Background(), 2)
	if len(none) != 0 {
		t.Errorf("expected 0, got %d", len(none))
	}
}
