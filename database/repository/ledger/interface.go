// File: database/repository/ledger/interface.go
package ledgerRepo

import (
	"context"
	"errors"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Commit failure modes. Callers match with errors.Is.
var (
	// ErrDuplicateBooking means the same client identity already holds
	// an appointment at that date and time.
	ErrDuplicateBooking = errors.New("duplicate booking for client at this date and time")
	// ErrSlotConflict means at least one reserved block became occupied
	// between the advisory availability check and the commit.
	ErrSlotConflict = errors.New("slot already occupied for staff member")
)

// LedgerRepository is the durable record of confirmed appointments and
// of per-staff/per-day occupied slots.
//
// Commit applies the occupancy merge and the appointment append
// together or not at all, re-validating duplicates and occupancy
// against the latest state. At most one reservation can ever exist per
// (date, staff, slot).
type LedgerRepository interface {
	OccupiedSlots(ctx context.Context, date, staffID string) ([]string, error)
	IsDuplicate(ctx context.Context, date, start, email, phone string) (bool, error)
	Commit(ctx context.Context, appt *models.Appointment, reservedBlocks []string) error
	AppointmentsByStaff(ctx context.Context, staffID string) ([]models.Appointment, error)
	AppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

type mongoLedgerRepo struct {
	occupancyColl   *mongo.Collection
	appointmentColl *mongo.Collection
}

// NewMongoLedgerRepo constructs a new MongoDB LedgerRepository.
func NewMongoLedgerRepo() LedgerRepository {
	db := database.MongoClient.Database("barberbook")
	return &mongoLedgerRepo{
		occupancyColl:   db.Collection("occupancy"),
		appointmentColl: db.Collection("appointments"),
	}
}
