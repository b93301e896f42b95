// File: database/repository/ledger/mongo.go
package ledgerRepo

import (
	"context"
	"fmt"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OccupiedSlots returns the occupancy set for (date, staffID). A missing
// document means nothing is booked yet.
func (repo *mongoLedgerRepo) OccupiedSlots(ctx context.Context, date, staffID string) ([]string, error) {
	filter := bson.M{"date": date, "staff_id": staffID}

	var record models.OccupancyRecord
	err := repo.occupancyColl.FindOne(ctx, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupancy for %s/%s: %w", date, staffID, err)
	}
	return record.Slots, nil
}

// IsDuplicate reports whether an appointment with the same date, start
// time, email and phone already exists. The guard is client-identity
// based and deliberately independent of staff.
func (repo *mongoLedgerRepo) IsDuplicate(ctx context.Context, date, start, email, phone string) (bool, error) {
	filter := bson.M{
		"date":         date,
		"start":        start,
		"client_email": email,
		"client_phone": phone,
	}
	count, err := repo.appointmentColl.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate booking: %w", err)
	}
	return count > 0, nil
}

// Commit durably records the appointment and merges its reserved blocks
// into the occupancy set inside a single transaction.
//
// The occupancy update filter requires that none of the reserved blocks
// are already present; if they are, the filter misses and the upsert
// collides with the unique (date, staff_id) index, which surfaces as
// ErrSlotConflict. This makes the commit the linearization point: a
// stale advisory availability check can never double-book a slot.
func (repo *mongoLedgerRepo) Commit(ctx context.Context, appt *models.Appointment, reservedBlocks []string) error {
	if len(reservedBlocks) == 0 {
		return fmt.Errorf("commit requires at least one reserved block")
	}

	client := repo.appointmentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		dup, err := repo.IsDuplicate(sc, appt.Date, appt.Start, appt.ClientEmail, appt.ClientPhone)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateBooking
		}

		filter := bson.M{
			"date":     appt.Date,
			"staff_id": appt.StaffID,
			"slots":    bson.M{"$nin": reservedBlocks},
		}
		update := bson.M{
			"$addToSet": bson.M{"slots": bson.M{"$each": reservedBlocks}},
		}

		res, err := repo.occupancyColl.UpdateOne(sc, filter, update, options.Update().SetUpsert(true))
		if mongo.IsDuplicateKeyError(err) {
			// The document exists but holds at least one of the blocks.
			return ErrSlotConflict
		}
		if err != nil {
			return fmt.Errorf("failed to merge reserved blocks: %w", err)
		}
		if res.MatchedCount == 0 && res.UpsertedCount == 0 {
			return ErrSlotConflict
		}

		if _, err := repo.appointmentColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

// AppointmentsByStaff returns the staff member's appointments ordered by
// date then start time.
func (repo *mongoLedgerRepo) AppointmentsByStaff(ctx context.Context, staffID string) ([]models.Appointment, error) {
	filter := bson.M{"staff_id": staffID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := repo.appointmentColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// AppointmentsByDate returns every appointment on the given date ordered
// by start time.
func (repo *mongoLedgerRepo) AppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{"date": date}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.appointmentColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
