package staff

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"barberbook/models"
	"barberbook/services/booking"
)

// Dashboard assembles the barber's appointment book: today's
// appointments, upcoming ones, and today's headline numbers.
func (svc *DefaultStaffService) Dashboard(ctx context.Context, staffID string) (*Dashboard, error) {
	appts, err := svc.Ledger.AppointmentsByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for staff %s: %w", staffID, err)
	}

	today := time.Now().Format(booking.DateLayout)
	return buildDashboard(appts, today), nil
}

func buildDashboard(appts []models.Appointment, today string) *Dashboard {
	dash := &Dashboard{
		Today:    []models.Appointment{},
		Upcoming: []models.Appointment{},
	}

	for _, appt := range appts {
		switch {
		case appt.Date == today:
			dash.Today = append(dash.Today, appt)
			dash.EstimatedEarnings += priceValue(appt.Price)
		case appt.Date > today:
			dash.Upcoming = append(dash.Upcoming, appt)
		}
	}

	dash.TodayCount = len(dash.Today)
	dash.ClientCount = len(dash.Today)
	return dash
}

// priceValue extracts the numeric part of a display price such as
// "R$ 25". Non-digit characters are ignored.
func priceValue(price string) int {
	value := 0
	for _, r := range price {
		if unicode.IsDigit(r) {
			value = value*10 + int(r-'0')
		}
	}
	return value
}
