package Models

import (
	"errors"
	"testing"
)

func TestParseQuotaSpec(t *testing.T) {
	unlimited, quota, err := ParseQuotaSpec("gym")
	if err != nil || !unlimited || quota != 0 {
		t.Errorf("gym: expected unlimited, got unlimited=%v quota=%d err=%v", unlimited, quota, err)
	}

	unlimited, quota, err = ParseQuotaSpec("5")
	if err != nil || unlimited || quota != 5 {
		t.Errorf("5: expected fixed quota 5, got unlimited=%v quota=%d err=%v", unlimited, quota, err)
	}

	for _, bad := range []string{"0", "-3", "five", ""} {
		if _, _, err := ParseQuotaSpec(bad); err == nil {
			t.Errorf("expected error for quota spec %q", bad)
		}
	}
}

func TestCreateOrderUnknownPatient(t *testing.T) {
	newTestDB(t)

	if _, err := CreateOrder(77, "5", "dx"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	newTestDB(t)
	setToday(t, "2026-03-02")

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	order := mustCreateOrder(t, patient.ID, "10", "  shoulder  ")

	if order.Date != "2026-03-02" {
		t.Errorf("expected creation date 2026-03-02, got %s", order.Date)
	}
	if order.Used != 0 || !order.Active || order.Unlimited {
		t.Errorf("unexpected defaults: %+v", order)
	}
	if order.Diagnosis != "shoulder" {
		t.Errorf("expected trimmed diagnosis, got %q", order.Diagnosis)
	}
}

func TestActiveOrdersNewestFirst(t *testing.T) {
	newTestDB(t)

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	setToday(t, "2026-01-10")
	older := mustCreateOrder(t, patient.ID, "5", "old")
	setToday(t, "2026-02-10")
	newer := mustCreateOrder(t, patient.ID, "5", "new")

	orders, err := ActiveOrders(patient.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != newer.ID || orders[1].ID != older.ID {
		t.Errorf("expected newest first, got %v then %v", orders[0].Date, orders[1].Date)
	}
}

func TestAvailableSessionsRoundTrip(t *testing.T) {
	newTestDB(t)
	setToday(t, "2026-03-02")

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	order := mustCreateOrder(t, patient.ID, "5", "dx")

	availability, err := AvailableSessions(patient.ID)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if availability.Available != 5 || availability.Diagnoses != "dx" || availability.HasUnlimited {
		t.Fatalf("unexpected availability %+v", availability)
	}

	for _, day := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		setToday(t, day)
		if _, err := RecordSession(patient.ID); err != nil {
			t.Fatalf("record on %s failed: %v", day, err)
		}
	}

	availability, err = AvailableSessions(patient.ID)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if availability.Available != 2 {
		t.Errorf("expected 2 available after 3 sessions, got %d", availability.Available)
	}
	if got := reloadOrder(t, order.ID).Used; got != 3 {
		t.Errorf("expected used count 3, got %d", got)
	}
}

func TestAvailableSessionsNoOrders(t *testing.T) {
	newTestDB(t)

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	availability, err := AvailableSessions(patient.ID)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if availability.Available != 0 || availability.Diagnoses != "" || availability.HasUnlimited {
		t.Errorf("expected empty availability, got %+v", availability)
	}
}

func TestAvailableSessionsWithGym(t *testing.T) {
	newTestDB(t)
	setToday(t, "2026-03-02")

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	mustCreateOrder(t, patient.ID, "3", "dx")
	mustCreateOrder(t, patient.ID, "gym", "")

	availability, err := AvailableSessions(patient.ID)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if !availability.HasUnlimited {
		t.Error("expected HasUnlimited to be set")
	}
	if availability.Available != UnlimitedSurplus+3 {
		t.Errorf("expected %d available, got %d", UnlimitedSurplus+3, availability.Available)
	}
	if availability.Diagnoses != "dx" {
		t.Errorf("blank gym diagnosis should not be joined, got %q", availability.Diagnoses)
	}
}

func TestDeleteOrderMissing(t *testing.T) {
	newTestDB(t)

	if _, err := DeleteOrder(404); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDeleteOrderRemovesSessions(t *testing.T) {
	newTestDB(t)

	patient := mustCreatePatient(t, "Garcia", "Ana", "", "")
	order := mustCreateOrder(t, patient.ID, "5", "dx")

	for _, day := range []string{"2026-03-02", "2026-03-03"} {
		setToday(t, day)
		if _, err := RecordSession(patient.ID); err != nil {
			t.Fatalf("record on %s failed: %v", day, err)
		}
	}

	patientID, err := DeleteOrder(order.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if patientID != patient.ID {
		t.Errorf("expected patient id %d back, got %d", patient.ID, patientID)
	}

	sessions, err := SessionsByPatient(patient.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions left, got %d", len(sessions))
	}
}
