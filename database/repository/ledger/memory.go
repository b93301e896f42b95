// File: database/repository/ledger/memory.go
package ledgerRepo

import (
	"context"
	"sort"
	"sync"

	"barberbook/models"
)

// memoryLedgerRepo is a mutex-guarded in-memory LedgerRepository. It
// backs tests and single-process deployments that run without Mongo.
type memoryLedgerRepo struct {
	mu           sync.Mutex
	occupied     map[string]map[string]struct{} // (date|staffID) -> slot set
	appointments []models.Appointment
}

// NewMemoryLedgerRepo constructs an empty in-memory LedgerRepository.
func NewMemoryLedgerRepo() LedgerRepository {
	return &memoryLedgerRepo{
		occupied: make(map[string]map[string]struct{}),
	}
}

func occupancyKey(date, staffID string) string {
	return date + "|" + staffID
}

func (repo *memoryLedgerRepo) OccupiedSlots(_ context.Context, date, staffID string) ([]string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	set, ok := repo.occupied[occupancyKey(date, staffID)]
	if !ok {
		return nil, nil
	}
	slots := make([]string, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

func (repo *memoryLedgerRepo) IsDuplicate(_ context.Context, date, start, email, phone string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.isDuplicateLocked(date, start, email, phone), nil
}

func (repo *memoryLedgerRepo) isDuplicateLocked(date, start, email, phone string) bool {
	for _, appt := range repo.appointments {
		if appt.Date == date && appt.Start == start &&
			appt.ClientEmail == email && appt.ClientPhone == phone {
			return true
		}
	}
	return false
}

// Commit validates and applies both mutations under a single lock so no
// partial state is ever visible.
func (repo *memoryLedgerRepo) Commit(_ context.Context, appt *models.Appointment, reservedBlocks []string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.isDuplicateLocked(appt.Date, appt.Start, appt.ClientEmail, appt.ClientPhone) {
		return ErrDuplicateBooking
	}

	key := occupancyKey(appt.Date, appt.StaffID)
	set := repo.occupied[key]
	for _, slot := range reservedBlocks {
		if _, taken := set[slot]; taken {
			return ErrSlotConflict
		}
	}

	if set == nil {
		set = make(map[string]struct{})
		repo.occupied[key] = set
	}
	for _, slot := range reservedBlocks {
		set[slot] = struct{}{}
	}
	repo.appointments = append(repo.appointments, *appt)
	return nil
}

func (repo *memoryLedgerRepo) AppointmentsByStaff(_ context.Context, staffID string) ([]models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var appts []models.Appointment
	for _, appt := range repo.appointments {
		if appt.StaffID == staffID {
			appts = append(appts, appt)
		}
	}
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].Date+appts[i].Start < appts[j].Date+appts[j].Start
	})
	return appts, nil
}

func (repo *memoryLedgerRepo) AppointmentsByDate(_ context.Context, date string) ([]models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var appts []models.Appointment
	for _, appt := range repo.appointments {
		if appt.Date == date {
			appts = append(appts, appt)
		}
	}
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].Start < appts[j].Start
	})
	return appts, nil
}
