// File: database/repository/ledger/indexes.go
package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureLedgerIndexes creates the indexes the ledger relies on. The
// unique occupancy index is load-bearing: the guarded upsert in Commit
// depends on it to reject conflicting writers.
func EnsureLedgerIndexes(repo LedgerRepository) error {
	mongoRepo, ok := repo.(*mongoLedgerRepo)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	occupancyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "staff_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("occupancy_date_staff"),
	}
	if _, err := mongoRepo.occupancyColl.Indexes().CreateOne(ctx, occupancyIndex); err != nil {
		return fmt.Errorf("failed to create occupancy index: %w", err)
	}

	appointmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "staff_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start", Value: 1},
			},
			Options: options.Index().SetName("appointments_staff_date_start"),
		},
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "start", Value: 1},
				{Key: "client_email", Value: 1},
				{Key: "client_phone", Value: 1},
			},
			Options: options.Index().SetName("appointments_duplicate_guard"),
		},
	}
	if _, err := mongoRepo.appointmentColl.Indexes().CreateMany(ctx, appointmentIndexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	return nil
}
