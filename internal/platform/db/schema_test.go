package db

import (
	"strings"
	"testing"
)

func TestSchemaStatements_CoverAllTables(t *testing.T) {
	tables := []string{
		"patients",
		"staff",
		"appointments",
		"diagnoses",
		"room_assignments",
		"rooms",
		"patient_rooms",
		"shifts",
		"doctor_assignments",
		"nurse_assignments",
		"surgeries",
	}

	joined := strings.Join(schemaStatements, "\n")
	for _, table := range tables {
		if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("missing create statement for %s", table)
		}
	}
	if len(schemaStatements) != len(tables) {
		t.Errorf("expected %d statements, got %d", len(tables), len(schemaStatements))
	}
}

func TestSchemaStatements_Idempotent(t *testing.T) {
	for _, stmt := range schemaStatements {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement not idempotent: %.60s", stmt)
		}
	}
}

func TestSchemaStatements_RoomStatusConstraint(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	for _, status := range []string{"'Available'", "'Occupied'", "'Maintenance'"} {
		if !strings.Contains(joined, status) {
			t.Errorf("room status check missing %s", status)
		}
	}
}

func TestTableCount(t *testing.T) {
	s := NewSchema(nil)
	if s.TableCount() != len(schemaStatements) {
		t.Errorf("TableCount() = %d, want %d", s.TableCount(), len(schemaStatements))
	}
}
