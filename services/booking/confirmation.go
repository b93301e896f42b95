package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking is the sole linearization point of the flow. It builds
// the appointment from the draft and asks the ledger to commit it; the
// ledger re-validates duplicates and occupancy against its latest
// state, so a stale step-3 availability display can never double-book.
// The session transitions to Committed or Rejected and is kept until
// the client acknowledges the outcome.
func (s *DefaultBookingFlowService) ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmDetails {
		return nil, NewInvalidSelectionError("booking can only be confirmed from the confirmation step")
	}
	if err := stepGuard(session); err != nil {
		return nil, err
	}

	blocks := ReservedBlocks(*session.Service, session.Start)
	if blocks == nil {
		return nil, NewSlotUnavailableError(fmt.Sprintf("service cannot start at %s", session.Start))
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		Date:            session.Date,
		Start:           session.Start,
		ServiceID:       session.Service.ID,
		ServiceName:     session.Service.Name,
		DurationMinutes: session.Service.DurationMinutes(),
		Price:           session.Service.Price,
		StaffID:         session.Staff.ID,
		StaffName:       session.Staff.Name,
		ClientName:      session.ClientName,
		ClientEmail:     session.ClientEmail,
		ClientPhone:     session.ClientPhone,
		CreatedAt:       time.Now(),
	}

	switch err := s.Engine.Repo.Commit(ctx, appt, blocks); {
	case errors.Is(err, ledgerRepo.ErrDuplicateBooking):
		session.Step = models.StepRejected
		session.RejectReason = CodeDuplicateBooking
		logger.Warn("booking rejected: duplicate client submission",
			zap.String("sessionID", sessionID), zap.String("date", appt.Date), zap.String("start", appt.Start))
	case errors.Is(err, ledgerRepo.ErrSlotConflict):
		session.Step = models.StepRejected
		session.RejectReason = CodeSlotConflict
		logger.Warn("booking rejected: slot taken between display and commit",
			zap.String("sessionID", sessionID), zap.String("staffID", appt.StaffID),
			zap.String("date", appt.Date), zap.String("start", appt.Start))
	case err != nil:
		return nil, fmt.Errorf("booking commit failed: %w", err)
	default:
		session.Step = models.StepCommitted
		session.Appointment = appt
		logger.Info("booking committed",
			zap.String("appointmentID", appt.ID), zap.String("staffID", appt.StaffID),
			zap.String("date", appt.Date), zap.String("start", appt.Start))

		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(*appt); err != nil {
				// The booking stands; the reminder is best-effort.
				logger.Error("failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AcknowledgeOutcome discards the draft once the client has seen the
// terminal confirmation or rejection screen.
func (s *DefaultBookingFlowService) AcknowledgeOutcome(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Step.Terminal() {
		return NewInvalidSelectionError("flow has not reached an outcome yet")
	}
	return s.Store.Delete(ctx, sessionID)
}
