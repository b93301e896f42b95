package booking

import (
	"time"

	"barberbook/models"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// IsDateSelectable reports whether the calendar day is bookable: it
// must be today or later (time of day ignored) and must not fall on the
// closed weekday.
func IsDateSelectable(date string, now time.Time, closedWeekday time.Weekday) bool {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	if day.Weekday() == closedWeekday {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(today)
}

// stepGuard validates that the session satisfies the requirements of
// its current step before the wizard may advance.
func stepGuard(session *models.BookingSession) error {
	switch session.Step {
	case models.StepSelectService:
		if session.Service == nil {
			return NewInvalidSelectionError("select a service before continuing")
		}
	case models.StepSelectStaff:
		if session.Staff == nil {
			return NewInvalidSelectionError("select a staff member before continuing")
		}
	case models.StepSelectDateTime:
		if session.Date == "" || session.Start == "" {
			return NewInvalidSelectionError("select both a date and a time before continuing")
		}
	case models.StepConfirmDetails:
		if session.ClientName == "" || session.ClientEmail == "" || session.ClientPhone == "" {
			return NewInvalidSelectionError("fill in name, email and phone before confirming")
		}
	default:
		return NewInvalidSelectionError("flow already finished")
	}
	return nil
}

// advanceStep moves the wizard forward one step after its guard passes.
// The final forward transition (ConfirmDetails onwards) happens through
// ConfirmBooking, not here.
func advanceStep(session *models.BookingSession) error {
	if err := stepGuard(session); err != nil {
		return err
	}
	switch session.Step {
	case models.StepSelectService:
		session.Step = models.StepSelectStaff
	case models.StepSelectStaff:
		session.Step = models.StepSelectDateTime
	case models.StepSelectDateTime:
		session.Step = models.StepConfirmDetails
	default:
		return NewInvalidSelectionError("cannot advance past the confirmation step")
	}
	return nil
}

// backStep moves the wizard backward one step. Backward transitions are
// always permitted from steps 2-4.
func backStep(session *models.BookingSession) error {
	switch session.Step {
	case models.StepSelectStaff:
		session.Step = models.StepSelectService
	case models.StepSelectDateTime:
		session.Step = models.StepSelectStaff
	case models.StepConfirmDetails:
		session.Step = models.StepSelectDateTime
	default:
		return NewInvalidSelectionError("cannot go back from this step")
	}
	return nil
}
