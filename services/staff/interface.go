package staff

import (
	"context"

	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/models"
)

// Dashboard is the per-barber view of the appointment book.
type Dashboard struct {
	Today    []models.Appointment `json:"today"`
	Upcoming []models.Appointment `json:"upcoming"`
	// EstimatedEarnings sums today's display prices in whole currency
	// units.
	EstimatedEarnings int `json:"estimatedEarnings"`
	TodayCount        int `json:"todayCount"`
	ClientCount       int `json:"clientCount"`
}

// StaffService covers the staff-facing side of the shop: the stand-in
// login and the dashboard over committed appointments.
type StaffService interface {
	Authenticate(email, password string) (string, *models.Staff, error)
	Dashboard(ctx context.Context, staffID string) (*Dashboard, error)
}

// DefaultStaffService implements StaffService.
type DefaultStaffService struct {
	Ledger ledgerRepo.LedgerRepository
}
