package Export

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"TherapyTrack/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// Summary is one patient's row on the workbook's summary sheet.
type Summary struct {
	Patient      string
	NationalID   string
	TotalOrdered uint
	TotalUsed    uint
	Available    int
	LastSession  string
	HasGym       bool
}

// BuildSummaries aggregates every patient's active orders: totals for
// fixed quotas, a gym marker for unlimited ones, and the date of the
// most recent session.
func BuildSummaries() ([]Summary, error) {
	patients, err := Models.AllPatients()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(patients))
	for _, patient := range patients {
		orders, err := Models.ActiveOrders(patient.ID)
		if err != nil {
			return nil, err
		}

		summary := Summary{
			Patient:    patient.Surname + ", " + patient.Name,
			NationalID: patient.NationalID,
		}
		for _, order := range orders {
			if order.Unlimited {
				summary.HasGym = true
				continue
			}
			summary.TotalOrdered += order.Quota
			summary.TotalUsed += order.Used
		}
		summary.Available = int(summary.TotalOrdered) - int(summary.TotalUsed)

		var lastSession sql.NullString
		row := Models.DB.Model(&Models.Session{}).
			Where("patient_id = ?", patient.ID).
			Select("MAX(date)").Row()
		if err := row.Scan(&lastSession); err != nil {
			return nil, fmt.Errorf("failed to find last session: %w", err)
		}
		if lastSession.Valid {
			summary.LastSession = lastSession.String
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Workbook writes the full spreadsheet backup (patients sheet plus the
// per-patient summary sheet) into dataDir and returns the file path.
// The filename embeds the current date.
func Workbook(dataDir string) (string, error) {
	patients, err := Models.AllPatients()
	if err != nil {
		return "", err
	}
	summaries, err := BuildSummaries()
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()

	patientsSheet := "Patients"
	file.NewSheet(patientsSheet)
	file.DeleteSheet("Sheet1")
	patientHeaders := map[string]string{
		"A1": "Surname",
		"B1": "Name",
		"C1": "National ID",
		"D1": "Phone",
		"E1": "Member Number",
		"F1": "Insurer",
	}
	for k, v := range patientHeaders {
		file.SetCellValue(patientsSheet, k, v)
	}
	for i := 0; i < len(patients); i++ {
		appendPatientRow(patientsSheet, file, i, patients)
	}

	summarySheet := "Summary"
	file.NewSheet(summarySheet)
	summaryHeaders := map[string]string{
		"A1": "Patient",
		"B1": "National ID",
		"C1": "Total Ordered",
		"D1": "Total Used",
		"E1": "Available",
		"F1": "Last Session",
		"G1": "Gym",
	}
	for k, v := range summaryHeaders {
		file.SetCellValue(summarySheet, k, v)
	}
	for i := 0; i < len(summaries); i++ {
		appendSummaryRow(summarySheet, file, i, summaries)
	}

	filename := fmt.Sprintf("backup_%s.xlsx", Models.Today())
	path := filepath.Join(dataDir, filename)
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func appendPatientRow(sheet string, file *excelize.File, index int, rows []Models.Patient) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Surname)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Name)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].NationalID)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Phone)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].MemberNumber)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Insurer)
}

func appendSummaryRow(sheet string, file *excelize.File, index int, rows []Summary) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Patient)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].NationalID)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), int(rows[index].TotalOrdered))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), int(rows[index].TotalUsed))
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Available)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].LastSession)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].HasGym)
}
