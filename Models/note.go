package Models

import (
	"fmt"

	"gorm.io/gorm"
)

type Note struct {
	gorm.Model
	PatientID   uint   `json:"patient_id"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func NotesByPatient(patientID uint) ([]Note, error) {
	var notes []Note
	if err := DB.Where("patient_id = ?", patientID).
		Order("date DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func CreateNote(patientID uint, description string) (*Note, error) {
	note := Note{
		PatientID:   patientID,
		Description: description,
		Date:        Today(),
	}
	if err := DB.Create(&note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

// DeleteNote is unconditional; 0 rows affected means the id was unknown
// and is not treated as a hard error.
func DeleteNote(noteID uint) (int64, error) {
	result := DB.Delete(&Note{}, "id = ?", noteID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete note: %w", result.Error)
	}
	return result.RowsAffected, nil
}
