package Models

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

// newTestDB points the package at a fresh in-memory database. The DSN
// is named per call so parallel-opened pools never share state.
func newTestDB(t *testing.T) {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:ledger_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	Migrate(db)
	DB = db
}

// setToday pins the ledger clock to a fixed calendar date.
func setToday(t *testing.T, date string) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	Now = func() time.Time { return parsed }
	t.Cleanup(func() { Now = time.Now })
}

func mustCreatePatient(t *testing.T, surname, name, nationalID, memberNumber string) *Patient {
	t.Helper()
	patient := &Patient{
		Surname:      surname,
		Name:         name,
		NationalID:   nationalID,
		MemberNumber: memberNumber,
	}
	if err := CreatePatient(patient); err != nil {
		t.Fatalf("failed to create patient %s: %v", surname, err)
	}
	return patient
}

func mustCreateOrder(t *testing.T, patientID uint, spec, diagnosis string) *Order {
	t.Helper()
	order, err := CreateOrder(patientID, spec, diagnosis)
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return order
}

func reloadOrder(t *testing.T, orderID uint) *Order {
	t.Helper()
	var order Order
	if err := DB.First(&order, "id = ?", orderID).Error; err != nil {
		t.Fatalf("failed to reload order %d: %v", orderID, err)
	}
	return &order
}
