package Models

import "fmt"

// Stats is the system-wide counters snapshot shown on the dashboard.
type Stats struct {
	TotalPatients int64 `json:"total_patients"`
	TotalOrders   int64 `json:"total_orders"`
	TotalSessions int64 `json:"total_sessions"`
	ActiveOrders  int64 `json:"active_orders"`
	SessionsToday int64 `json:"sessions_today"`
}

func GetStats() (Stats, error) {
	var stats Stats
	if err := DB.Model(&Patient{}).Count(&stats.TotalPatients).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count patients: %w", err)
	}
	if err := DB.Model(&Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := DB.Model(&Session{}).Count(&stats.TotalSessions).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count sessions: %w", err)
	}
	if err := DB.Model(&Order{}).Where("active = ?", true).Count(&stats.ActiveOrders).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count active orders: %w", err)
	}
	if err := DB.Model(&Session{}).Where("date = ?", Today()).Count(&stats.SessionsToday).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count today's sessions: %w", err)
	}
	return stats, nil
}
