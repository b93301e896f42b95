package booking

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession creates a new draft at the first wizard step.
func (s *DefaultBookingFlowService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepSelectService,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	utils.GetLogger().Debug("booking session initiated", zap.String("sessionID", session.SessionID))
	return session, nil
}

// GetSession returns the current draft.
func (s *DefaultBookingFlowService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectService records the chosen service. Only valid while the wizard
// is on the service step.
func (s *DefaultBookingFlowService) SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectService {
		return nil, NewInvalidSelectionError("service can only be chosen on the service step")
	}

	svc, err := ServiceByID(serviceID)
	if err != nil {
		return nil, NewInvalidSelectionError(err.Error())
	}
	session.Service = svc

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectStaff records the chosen barber. Only valid while the wizard is
// on the staff step.
func (s *DefaultBookingFlowService) SelectStaff(ctx context.Context, sessionID, staffID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectStaff {
		return nil, NewInvalidSelectionError("staff can only be chosen on the staff step")
	}

	stf, err := StaffByID(staffID)
	if err != nil {
		return nil, NewInvalidSelectionError(err.Error())
	}
	session.Staff = stf

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDateTime records the chosen calendar day and, optionally, the
// start time. Picking a new date clears any previously picked time.
// The availability check here is advisory; the commit re-validates.
func (s *DefaultBookingFlowService) SelectDateTime(ctx context.Context, sessionID, date, start string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectDateTime {
		return nil, NewInvalidSelectionError("date and time can only be chosen on the date/time step")
	}

	if !IsDateSelectable(date, time.Now(), s.ClosedWeekday) {
		return nil, NewInvalidSelectionError("the selected date is not open for booking")
	}
	if session.Date != date {
		session.Date = date
		session.Start = ""
	}

	if start != "" {
		available, err := s.Engine.IsAvailable(ctx, date, start, session.Service, session.Staff)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, NewSlotUnavailableError(fmt.Sprintf("slot %s on %s is not available", start, date))
		}
		session.Start = start
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetContactDetails records the client's contact fields on the
// confirmation step.
func (s *DefaultBookingFlowService) SetContactDetails(ctx context.Context, sessionID, name, email, phone string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmDetails {
		return nil, NewInvalidSelectionError("contact details can only be set on the confirmation step")
	}

	session.ClientName = name
	session.ClientEmail = email
	session.ClientPhone = phone

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard forward after the current step's guard
// passes.
func (s *DefaultBookingFlowService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := advanceStep(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one step backward.
func (s *DefaultBookingFlowService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := backStep(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SlotGrid returns the rendering status of every slot for the draft's
// current date, service and staff selection.
func (s *DefaultBookingFlowService) SlotGrid(ctx context.Context, sessionID string) ([]models.SlotView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Engine.SlotGrid(ctx, session.Date, session.Start, session.Service, session.Staff)
}

// CancelSession discards the draft. No compensating action is needed;
// nothing is written to the ledger before the final commit.
func (s *DefaultBookingFlowService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
