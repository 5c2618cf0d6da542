package Export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"TherapyTrack/Models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

func setupLedger(t *testing.T) {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:export_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	Models.Migrate(db)
	Models.DB = db

	day, _ := time.Parse("2006-01-02", "2026-03-02")
	Models.Now = func() time.Time { return day }
	t.Cleanup(func() { Models.Now = time.Now })

	patient := &Models.Patient{Surname: "Garcia", Name: "Ana", NationalID: "30111222"}
	if err := Models.CreatePatient(patient); err != nil {
		t.Fatalf("seed patient failed: %v", err)
	}
	if _, err := Models.CreateOrder(patient.ID, "5", "knee"); err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	if _, err := Models.RecordSession(patient.ID); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}
}

func TestBuildSummaries(t *testing.T) {
	setupLedger(t)

	summaries, err := BuildSummaries()
	if err != nil {
		t.Fatalf("summaries failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(summaries))
	}

	summary := summaries[0]
	if summary.Patient != "Garcia, Ana" {
		t.Errorf("unexpected patient label %q", summary.Patient)
	}
	if summary.TotalOrdered != 5 || summary.TotalUsed != 1 || summary.Available != 4 {
		t.Errorf("unexpected totals %+v", summary)
	}
	if summary.LastSession != "2026-03-02" {
		t.Errorf("expected last session 2026-03-02, got %q", summary.LastSession)
	}
	if summary.HasGym {
		t.Error("no gym order was seeded")
	}
}

func TestWorkbookFilenameEmbedsDate(t *testing.T) {
	setupLedger(t)
	dir := t.TempDir()

	path, err := Workbook(dir)
	if err != nil {
		t.Fatalf("workbook failed: %v", err)
	}
	if filepath.Base(path) != "backup_2026-03-02.xlsx" {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("workbook file missing: %v", err)
	}
}

func TestCSVSnapshot(t *testing.T) {
	setupLedger(t)
	dir := t.TempDir()

	csvDir, err := CSVSnapshot(dir)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if filepath.Base(csvDir) != "csv_exports_2026-03-02" {
		t.Errorf("unexpected directory %q", csvDir)
	}
	for _, name := range []string{"patients_2026-03-02.csv", "summary_2026-03-02.csv"} {
		if _, err := os.Stat(filepath.Join(csvDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}
