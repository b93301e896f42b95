package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/booking"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues appointment reminders through asynq.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleReminder enqueues a reminder to fire one hour before the
// appointment starts. Appointments closer than the lead time get an
// immediate reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(appt models.Appointment) error {
	startsAt, err := time.ParseInLocation(booking.DateLayout+" 15:04", appt.Date+" "+appt.Start, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment start: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		StaffID:       appt.StaffID,
		ClientName:    appt.ClientName,
		ClientEmail:   appt.ClientEmail,
		Date:          appt.Date,
		Start:         appt.Start,
		ServiceName:   appt.ServiceName,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
