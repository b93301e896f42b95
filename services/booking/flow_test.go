package booking

import (
	"context"
	"testing"
	"time"

	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScheduler struct {
	scheduled []models.Appointment
}

func (r *recordingScheduler) ScheduleReminder(appt models.Appointment) error {
	r.scheduled = append(r.scheduled, appt)
	return nil
}

type flowFixture struct {
	svc       *DefaultBookingFlowService
	ledger    ledgerRepo.LedgerRepository
	reminders *recordingScheduler
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ledger := ledgerRepo.NewMemoryLedgerRepo()
	reminders := &recordingScheduler{}
	return &flowFixture{
		svc: &DefaultBookingFlowService{
			Store:     NewRedisSessionStore(client, time.Minute),
			Engine:    &DefaultSchedulingEngine{Repo: ledger},
			Reminders: reminders,
		},
		ledger:    ledger,
		reminders: reminders,
	}
}

// bookableDate picks a future date that does not fall on the closed
// weekday, so the fixture's date guard accepts it on any day the tests
// happen to run.
func bookableDate(t *testing.T) string {
	t.Helper()
	day := time.Now().AddDate(0, 0, 7)
	if day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format(DateLayout)
}

// driveToConfirmation walks a fresh session to the confirmation step.
func driveToConfirmation(t *testing.T, f *flowFixture, start, email, phone string) string {
	t.Helper()
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = f.svc.SelectService(ctx, id, "service2")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.SelectStaff(ctx, id, "barber1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, id, bookableDate(t), start)
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.SetContactDetails(ctx, id, "Cliente Teste", email, phone)
	require.NoError(t, err)
	return id
}

func TestFullFlowCommitsBooking(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	id := driveToConfirmation(t, f, "10:00", "cliente@example.com", "11 99999-0001")
	session, err := f.svc.ConfirmBooking(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, models.StepCommitted, session.Step)
	require.NotNil(t, session.Appointment)
	assert.Equal(t, "10:00", session.Appointment.Start)
	assert.Equal(t, "service2", session.Appointment.ServiceID)
	assert.Equal(t, 60, session.Appointment.DurationMinutes)
	assert.Equal(t, "barber1", session.Appointment.StaffID)
	assert.NotEmpty(t, session.Appointment.ID)

	occupied, err := f.ledger.OccupiedSlots(ctx, session.Appointment.Date, "barber1")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, occupied)

	require.Len(t, f.reminders.scheduled, 1)
	assert.Equal(t, session.Appointment.ID, f.reminders.scheduled[0].ID)
}

func TestDuplicateSubmissionIsRejected(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	// Same client has the identical booking open in two sessions, as a
	// double-click or second tab would produce. Both pass the advisory
	// availability display; only the commit decides.
	first := driveToConfirmation(t, f, "10:00", "cliente@example.com", "11 99999-0001")
	second := driveToConfirmation(t, f, "10:00", "cliente@example.com", "11 99999-0001")

	session, err := f.svc.ConfirmBooking(ctx, first)
	require.NoError(t, err)
	require.Equal(t, models.StepCommitted, session.Step)

	session, err = f.svc.ConfirmBooking(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, models.StepRejected, session.Step)
	assert.Equal(t, CodeDuplicateBooking, session.RejectReason)
	assert.Nil(t, session.Appointment)

	appts, err := f.ledger.AppointmentsByStaff(ctx, "barber1")
	require.NoError(t, err)
	assert.Len(t, appts, 1, "the duplicate must not add a second appointment")
	assert.Len(t, f.reminders.scheduled, 1)
}

func TestConcurrentSlotRaceLosesCleanly(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	// Two different clients both reach the confirmation screen while
	// the slot still reads available, then confirm one after another.
	winner := driveToConfirmation(t, f, "10:00", "primeiro@example.com", "11 99999-0001")
	loser := driveToConfirmation(t, f, "10:00", "segundo@example.com", "11 99999-0002")

	session, err := f.svc.ConfirmBooking(ctx, winner)
	require.NoError(t, err)
	require.Equal(t, models.StepCommitted, session.Step)

	session, err = f.svc.ConfirmBooking(ctx, loser)
	require.NoError(t, err)
	assert.Equal(t, models.StepRejected, session.Step)
	assert.Equal(t, CodeSlotConflict, session.RejectReason)

	occupied, err := f.ledger.OccupiedSlots(ctx, bookableDate(t), "barber1")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, occupied, "the loser must not extend occupancy")
}

func TestOverlappingSpanConflicts(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	// A 10:00-11:00 draft and a 10:30 draft both reach confirmation;
	// the 10:30 one overlaps the committed span's second block.
	first := driveToConfirmation(t, f, "10:00", "primeiro@example.com", "11 99999-0001")
	second := driveToConfirmation(t, f, "10:30", "segundo@example.com", "11 99999-0002")

	session, err := f.svc.ConfirmBooking(ctx, first)
	require.NoError(t, err)
	require.Equal(t, models.StepCommitted, session.Step)

	session, err = f.svc.ConfirmBooking(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, models.StepRejected, session.Step)
	assert.Equal(t, CodeSlotConflict, session.RejectReason)
}

func TestSelectDateTimeRefusesOccupiedSlot(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	first := driveToConfirmation(t, f, "10:00", "primeiro@example.com", "11 99999-0001")
	session, err := f.svc.ConfirmBooking(ctx, first)
	require.NoError(t, err)
	require.Equal(t, models.StepCommitted, session.Step)

	// A later client browsing the same day sees the taken slot refused
	// up front.
	session, err = f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = f.svc.SelectService(ctx, id, "service1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.SelectStaff(ctx, id, "barber1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, id, bookableDate(t), "10:00")
	require.Error(t, err)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, CodeSlotUnavailable, flowErr.Code)

	// The neighbouring free slot is fine.
	_, err = f.svc.SelectDateTime(ctx, id, bookableDate(t), "11:00")
	assert.NoError(t, err)
}

func TestSelectionsAreStepBound(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = f.svc.SelectStaff(ctx, id, "barber1")
	assert.Error(t, err, "staff selection before the staff step")
	_, err = f.svc.SelectDateTime(ctx, id, bookableDate(t), "10:00")
	assert.Error(t, err, "date selection before the date step")
	_, err = f.svc.SetContactDetails(ctx, id, "Cliente", "c@example.com", "11 99999-0000")
	assert.Error(t, err, "contact details before the confirmation step")

	_, err = f.svc.SelectService(ctx, id, "no-such-service")
	assert.Error(t, err)
	_, err = f.svc.Advance(ctx, id)
	assert.Error(t, err, "cannot advance without a service")
}

func TestChangingDateClearsTime(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = f.svc.SelectService(ctx, id, "service1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.SelectStaff(ctx, id, "barber1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	date := bookableDate(t)
	session, err = f.svc.SelectDateTime(ctx, id, date, "10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", session.Start)

	otherDate := time.Now().AddDate(0, 0, 14)
	if otherDate.Weekday() == time.Sunday {
		otherDate = otherDate.AddDate(0, 0, 1)
	}
	session, err = f.svc.SelectDateTime(ctx, id, otherDate.Format(DateLayout), "")
	require.NoError(t, err)
	assert.Empty(t, session.Start, "a new date invalidates the old time")

	_, err = f.svc.Advance(ctx, id)
	assert.Error(t, err, "cleared time must fail the date step guard")
}

func TestClosedAndPastDatesAreRefused(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = f.svc.SelectService(ctx, id, "service1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.SelectStaff(ctx, id, "barber1")
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	sunday := nextWeekday(time.Now(), time.Sunday).Format(DateLayout)
	_, err = f.svc.SelectDateTime(ctx, id, sunday, "")
	assert.Error(t, err, "closed weekday")

	past := time.Now().AddDate(0, 0, -7).Format(DateLayout)
	_, err = f.svc.SelectDateTime(ctx, id, past, "")
	assert.Error(t, err, "past date")
}

func TestBackNavigationKeepsSelections(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	id := driveToConfirmation(t, f, "10:00", "cliente@example.com", "11 99999-0001")

	session, err := f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectDateTime, session.Step)
	assert.NotNil(t, session.Service)
	assert.NotNil(t, session.Staff)
	assert.Equal(t, "10:00", session.Start)

	session, err = f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectStaff, session.Step)
	session, err = f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectService, session.Step)

	_, err = f.svc.Back(ctx, id)
	assert.Error(t, err)
}

func TestAcknowledgeOutcomeDiscardsDraft(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	id := driveToConfirmation(t, f, "10:00", "cliente@example.com", "11 99999-0001")

	// Not finished yet.
	err := f.svc.AcknowledgeOutcome(ctx, id)
	assert.Error(t, err)

	_, err = f.svc.ConfirmBooking(ctx, id)
	require.NoError(t, err)

	require.NoError(t, f.svc.AcknowledgeOutcome(ctx, id))
	_, err = f.svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSessionDiscardsDraft(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelSession(ctx, session.SessionID))
	_, err = f.svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
