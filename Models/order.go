package Models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// GymSpec is the quota spec literal for an open gym order.
const GymSpec = "gym"

// UnlimitedSurplus is what a single gym order contributes to the
// availability sum, so a patient holding one always shows availability.
const UnlimitedSurplus = 9999

// Order is a treatment authorization ("pedido") granting a session
// quota. The quota is tagged: Unlimited marks a gym order, otherwise
// Quota holds the authorized session count and Used how many were
// consumed.
type Order struct {
	gorm.Model
	PatientID uint      `json:"patient_id"`
	Date      string    `json:"date"`
	Diagnosis string    `json:"diagnosis"`
	Unlimited bool      `json:"unlimited"`
	Quota     uint      `json:"quota"`
	Used      uint      `json:"used"`
	Active    bool      `json:"active" gorm:"default:true"`
	Sessions  []Session `json:"sessions,omitempty"`
}

// HasAvailable reports whether the order can still take a session.
func (o *Order) HasAvailable() bool {
	return o.Unlimited || o.Used < o.Quota
}

// ParseQuotaSpec converts the API quota spec, either "gym" or a
// positive integer, into the tagged quota pair.
func ParseQuotaSpec(spec string) (unlimited bool, quota uint, err error) {
	spec = strings.TrimSpace(spec)
	if strings.EqualFold(spec, GymSpec) {
		return true, 0, nil
	}
	n, convErr := strconv.Atoi(spec)
	if convErr != nil || n <= 0 {
		return false, 0, fmt.Errorf("quota must be %q or a positive number of sessions", GymSpec)
	}
	return false, uint(n), nil
}

func CreateOrder(patientID uint, spec, diagnosis string) (*Order, error) {
	unlimited, quota, err := ParseQuotaSpec(spec)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := DB.Model(&Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return nil, ErrPatientNotFound
	}

	order := Order{
		PatientID: patientID,
		Date:      Today(),
		Diagnosis: strings.TrimSpace(diagnosis),
		Unlimited: unlimited,
		Quota:     quota,
		Active:    true,
	}
	if err := DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

func ActiveOrders(patientID uint) ([]Order, error) {
	var orders []Order
	if err := DB.Where("patient_id = ? AND active = ?", patientID, true).
		Order("date DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}
	return orders, nil
}

// Availability aggregates the patient's active orders. A patient with
// no orders gets zero availability and empty diagnoses, never an error.
type Availability struct {
	Available    int    `json:"available"`
	Diagnoses    string `json:"diagnoses"`
	HasUnlimited bool   `json:"has_unlimited"`
}

func AvailableSessions(patientID uint) (Availability, error) {
	orders, err := ActiveOrders(patientID)
	if err != nil {
		return Availability{}, err
	}

	var availability Availability
	var diagnoses []string
	for _, order := range orders {
		if order.Unlimited {
			availability.Available += UnlimitedSurplus
			availability.HasUnlimited = true
		} else if order.Used < order.Quota {
			availability.Available += int(order.Quota - order.Used)
		}
		if order.Diagnosis != "" {
			diagnoses = append(diagnoses, order.Diagnosis)
		}
	}
	availability.Diagnoses = strings.Join(diagnoses, ",")
	return availability, nil
}

// DeleteOrder removes the order and its sessions in one transaction and
// returns the owning patient id so the caller can refresh that view.
func DeleteOrder(orderID uint) (uint, error) {
	var patientID uint
	err := DB.Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		patientID = order.PatientID

		if err := tx.Where("order_id = ?", orderID).Delete(&Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Order{}, "id = ?", orderID).Error
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}
	return patientID, nil
}
