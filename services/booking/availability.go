package booking

import (
	"context"
	"fmt"

	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/models"
)

// DefaultSchedulingEngine answers slot availability questions against
// the current ledger state. It performs no writes; committing a
// reservation is the ledger's job.
type DefaultSchedulingEngine struct {
	Repo ledgerRepo.LedgerRepository
}

// ReservedBlocks returns the exact contiguous slot span a booking of
// this service starting at start would occupy. It returns nil when the
// start time is not a valid slot or the span would run past closing;
// such a booking can never be committed.
func ReservedBlocks(svc models.Service, start string) []string {
	startIndex := SlotIndex(start)
	if startIndex == -1 {
		return nil
	}
	durationBlocks := svc.DurationBlocks()
	if startIndex+durationBlocks > len(timeSlots) {
		return nil
	}
	blocks := make([]string, durationBlocks)
	copy(blocks, timeSlots[startIndex:startIndex+durationBlocks])
	return blocks
}

// IsAvailable reports whether a booking of svc by stf could start at
// start on date. Missing inputs answer available so the grid can render
// before the wizard's earlier selections are complete; the commit path
// never relies on this being a reservation.
func (se *DefaultSchedulingEngine) IsAvailable(ctx context.Context, date, start string, svc *models.Service, stf *models.Staff) (bool, error) {
	if date == "" || svc == nil || stf == nil {
		return true, nil
	}

	blocks := ReservedBlocks(*svc, start)
	if blocks == nil {
		return false, nil
	}

	occupied, err := se.Repo.OccupiedSlots(ctx, date, stf.ID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch occupancy: %w", err)
	}
	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	for _, slot := range blocks {
		if _, taken := occupiedSet[slot]; taken {
			return false, nil
		}
	}
	return true, nil
}

// SlotGrid computes the rendering status of every slot in the business
// day for the given date, service and staff selection. The selected
// start time, if any, is marked even when it is the only reason the
// surrounding span reads occupied.
func (se *DefaultSchedulingEngine) SlotGrid(ctx context.Context, date, selected string, svc *models.Service, stf *models.Staff) ([]models.SlotView, error) {
	views := make([]models.SlotView, 0, len(timeSlots))
	for _, slot := range timeSlots {
		available, err := se.IsAvailable(ctx, date, slot, svc, stf)
		if err != nil {
			return nil, err
		}

		status := models.SlotOccupied
		switch {
		case slot == selected:
			status = models.SlotSelected
		case available:
			status = models.SlotAvailable
		}
		views = append(views, models.SlotView{Time: slot, Status: status})
	}
	return views, nil
}
