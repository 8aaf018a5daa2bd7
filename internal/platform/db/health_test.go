package db

import (
	"encoding/json"
	"testing"
)

func TestPoolStats_JSONFields(t *testing.T) {
	stats := PoolStats{
		TotalConns:    8,
		IdleConns:     5,
		AcquiredConns: 3,
		MaxConns:      10,
	}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, field := range []string{"total_conns", "idle_conns", "acquired_conns", "max_conns"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("expected field %q in JSON output", field)
		}
	}
	if decoded["max_conns"].(float64) != 10 {
		t.Errorf("expected max_conns 10, got %v", decoded["max_conns"])
	}
	if decoded["acquired_conns"].(float64) != 3 {
		t.Errorf("expected acquired_conns 3, got %v", decoded["acquired_conns"])
	}
}
