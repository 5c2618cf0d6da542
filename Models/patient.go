package Models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Surname      string    `json:"surname"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id" gorm:"index"`
	Phone        string    `json:"phone"`
	MemberNumber string    `json:"member_number" gorm:"index"`
	Insurer      string    `json:"insurer"`
	Orders       []Order   `json:"orders,omitempty"`
	Sessions     []Session `json:"sessions,omitempty"`
	Notes        []Note    `json:"notes,omitempty"`
}

// PatientExists reports whether a patient other than excludeID already
// uses the given national ID or member number. Both identifiers are
// optional; empty values never collide.
func PatientExists(nationalID, memberNumber string, excludeID uint) (bool, error) {
	query := DB.Model(&Patient{})
	switch {
	case nationalID != "" && memberNumber != "":
		query = query.Where("national_id = ? OR member_number = ?", nationalID, memberNumber)
	case nationalID != "":
		query = query.Where("national_id = ?", nationalID)
	case memberNumber != "":
		query = query.Where("member_number = ?", memberNumber)
	default:
		return false, nil
	}
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check for existing patient: %w", err)
	}
	return count > 0, nil
}

func CreatePatient(patient *Patient) error {
	exists, err := PatientExists(patient.NationalID, patient.MemberNumber, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePatient
	}

	if err := DB.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// UpdatePatient rewrites every editable field of the patient. A missing
// id is reported as zero rows changed, not an error.
func UpdatePatient(patient *Patient) (int64, error) {
	exists, err := PatientExists(patient.NationalID, patient.MemberNumber, patient.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicatePatient
	}

	result := DB.Model(&Patient{}).Where("id = ?", patient.ID).Updates(map[string]interface{}{
		"surname":       patient.Surname,
		"name":          patient.Name,
		"national_id":   patient.NationalID,
		"phone":         patient.Phone,
		"member_number": patient.MemberNumber,
		"insurer":       patient.Insurer,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update patient: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SearchPatients matches case-insensitive substrings; both filters
// combine with AND, an empty filter matches everything.
func SearchPatients(surname, name string) ([]Patient, error) {
	query := DB.Model(&Patient{})
	if surname != "" {
		query = query.Where("LOWER(surname) LIKE ?", "%"+strings.ToLower(surname)+"%")
	}
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var patients []Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func AllPatients() ([]Patient, error) {
	var patients []Patient
	if err := DB.Order("surname, name").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// DeletePatient removes the patient and everything it owns in one
// transaction: sessions, notes, orders, then the patient row. Returns
// the patient rows affected (0 when the id was unknown).
func DeletePatient(patientID uint) (int64, error) {
	var affected int64
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patientID).Delete(&Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&Order{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Patient{}, "id = ?", patientID)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete patient: %w", err)
	}
	return affected, nil
}
