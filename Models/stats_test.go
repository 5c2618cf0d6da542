package Models

import "testing"

func TestGetStats(t *testing.T) {
	newTestDB(t)
	setToday(t, "2026-03-02")

	ana := mustCreatePatient(t, "Garcia", "Ana", "", "")
	juan := mustCreatePatient(t, "Lopez", "Juan", "", "")
	mustCreateOrder(t, ana.ID, "5", "dx")
	mustCreateOrder(t, juan.ID, "gym", "")

	if _, err := RecordSession(ana.ID); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	stats, err := GetStats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalPatients != 2 {
		t.Errorf("expected 2 patients, got %d", stats.TotalPatients)
	}
	if stats.TotalOrders != 2 || stats.ActiveOrders != 2 {
		t.Errorf("expected 2 orders (2 active), got %d/%d", stats.TotalOrders, stats.ActiveOrders)
	}
	if stats.TotalSessions != 1 || stats.SessionsToday != 1 {
		t.Errorf("expected 1 session today, got %d/%d", stats.TotalSessions, stats.SessionsToday)
	}
}
