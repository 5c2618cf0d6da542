package Export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"TherapyTrack/Models"
)

// CSVSnapshot writes the patients and summary tables as CSV files into
// a dated directory under dataDir and returns that directory.
func CSVSnapshot(dataDir string) (string, error) {
	date := Models.Today()
	csvDir := filepath.Join(dataDir, "csv_exports_"+date)
	if err := os.MkdirAll(csvDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	patients, err := Models.AllPatients()
	if err != nil {
		return "", err
	}
	patientRows := make([][]string, 0, len(patients))
	for _, patient := range patients {
		patientRows = append(patientRows, []string{
			patient.Surname,
			patient.Name,
			patient.NationalID,
			patient.Phone,
			patient.MemberNumber,
			patient.Insurer,
		})
	}
	patientsPath := filepath.Join(csvDir, fmt.Sprintf("patients_%s.csv", date))
	header := []string{"Surname", "Name", "National ID", "Phone", "Member Number", "Insurer"}
	if err := writeCSV(patientsPath, header, patientRows); err != nil {
		return "", err
	}

	summaries, err := BuildSummaries()
	if err != nil {
		return "", err
	}
	summaryRows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		summaryRows = append(summaryRows, []string{
			summary.Patient,
			summary.NationalID,
			strconv.Itoa(int(summary.TotalOrdered)),
			strconv.Itoa(int(summary.TotalUsed)),
			strconv.Itoa(summary.Available),
			summary.LastSession,
			strconv.FormatBool(summary.HasGym),
		})
	}
	summaryPath := filepath.Join(csvDir, fmt.Sprintf("summary_%s.csv", date))
	header = []string{"Patient", "National ID", "Total Ordered", "Total Used", "Available", "Last Session", "Gym"}
	if err := writeCSV(summaryPath, header, summaryRows); err != nil {
		return "", err
	}

	return csvDir, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
