package booking

import (
	"context"
	"time"

	"barberbook/models"
)

// BookingFlowService drives the four-step booking wizard: it owns the
// draft session, applies guarded transitions, and turns a completed
// draft into a committed appointment.
type BookingFlowService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error)
	SelectStaff(ctx context.Context, sessionID, staffID string) (*models.BookingSession, error)
	SelectDateTime(ctx context.Context, sessionID, date, start string) (*models.BookingSession, error)
	SetContactDetails(ctx context.Context, sessionID, name, email, phone string) (*models.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SlotGrid(ctx context.Context, sessionID string) ([]models.SlotView, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingSession, error)
	AcknowledgeOutcome(ctx context.Context, sessionID string) error
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler queues a client reminder for a committed
// appointment. Implementations must tolerate being called inline on
// the commit path.
type ReminderScheduler interface {
	ScheduleReminder(appt models.Appointment) error
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Store  SessionStore
	Engine *DefaultSchedulingEngine
	// Reminders is optional; a nil scheduler skips reminders.
	Reminders ReminderScheduler
	// ClosedWeekday is the weekday the shop stays closed. The zero
	// value is Sunday, matching the reference deployment.
	ClosedWeekday time.Weekday
}
