package Models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DefaultObservation is stamped on sessions created by RecordSession.
const DefaultObservation = "Session completed"

type Session struct {
	gorm.Model
	OrderID      uint   `json:"order_id"`
	PatientID    uint   `json:"patient_id"`
	Date         string `json:"date"`
	Observations string `json:"observations"`
}

// SessionRecord is a session row joined with its order's diagnosis.
type SessionRecord struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	Observations string `json:"observations"`
	Diagnosis    string `json:"diagnosis"`
}

// HasSessionToday is the per-patient-per-day gate. It is global across
// all of the patient's orders, not per order.
func HasSessionToday(patientID uint) (bool, error) {
	return hasSessionOn(DB, patientID, Today())
}

func hasSessionOn(db *gorm.DB, patientID uint, date string) (bool, error) {
	var count int64
	if err := db.Model(&Session{}).
		Where("patient_id = ? AND date = ?", patientID, date).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sessions for %s: %w", date, err)
	}
	return count > 0, nil
}

// RecordSession books one session for the patient today. The day gate,
// the candidate pick and both writes run in a single transaction so the
// quota read and the session insert observe the same snapshot.
func RecordSession(patientID uint) (*Session, error) {
	today := Today()
	var session Session
	err := DB.Transaction(func(tx *gorm.DB) error {
		taken, err := hasSessionOn(tx, patientID, today)
		if err != nil {
			return err
		}
		if taken {
			return ErrAlreadyRecordedToday
		}

		// Gym orders first, then oldest order date.
		var order Order
		err = tx.Where("patient_id = ? AND active = ?", patientID, true).
			Where("unlimited = ? OR used < quota", true).
			Order("unlimited DESC, date ASC, id ASC").
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoAvailableQuota
		}
		if err != nil {
			return err
		}

		// A gym order is never exhausted, its counter stays untouched.
		if !order.Unlimited {
			if err := tx.Model(&Order{}).Where("id = ?", order.ID).
				Update("used", gorm.Expr("used + 1")).Error; err != nil {
				return err
			}
		}

		session = Session{
			OrderID:      order.ID,
			PatientID:    patientID,
			Date:         today,
			Observations: DefaultObservation,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyRecordedToday) || errors.Is(err, ErrNoAvailableQuota) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the session and gives the unit back to its
// order. The decrement clamps at zero so a counter that drifted low
// after a partial failure is never driven negative.
func DeleteSession(sessionID uint) (uint, error) {
	var patientID uint
	err := DB.Transaction(func(tx *gorm.DB) error {
		var session Session
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		patientID = session.PatientID

		if err := tx.Delete(&Session{}, "id = ?", sessionID).Error; err != nil {
			return err
		}
		return tx.Model(&Order{}).
			Where("id = ? AND used > 0", session.OrderID).
			Update("used", gorm.Expr("used - 1")).Error
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to delete session: %w", err)
	}
	return patientID, nil
}

// SessionsByPatient lists the patient's sessions newest first, joined
// with the parent order's diagnosis.
func SessionsByPatient(patientID uint) ([]SessionRecord, error) {
	var records []SessionRecord
	if err := DB.Model(&Session{}).
		Select("sessions.id, sessions.date, sessions.observations, orders.diagnosis").
		Joins("JOIN orders ON orders.id = sessions.order_id").
		Where("sessions.patient_id = ?", patientID).
		Order("sessions.date DESC, sessions.id DESC").
		Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return records, nil
}
