package shootRepo

import (
	"context"
	"fmt"
	"time"

	"shootflow/database"
	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShootRepo implements ShootRepository using MongoDB.
type MongoShootRepo struct {
	coll *mongo.Collection
}

// NewMongoShootRepo constructs a new instance of MongoShootRepo.
func NewMongoShootRepo() ShootRepository {
	db := database.MongoClient.Database("shootflow")
	return &MongoShootRepo{
		coll: db.Collection("shoots"),
	}
}

// GetByID retrieves a shoot document by ID.
func (repo *MongoShootRepo) GetByID(id string) (*models.ShootRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rec models.ShootRecord
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&rec); err != nil {
		return nil, fmt.Errorf("error fetching shoot with id %s: %w", id, err)
	}
	return &rec, nil
}

// List retrieves all shoots, newest scheduled date first.
func (repo *MongoShootRepo) List() ([]models.ShootRecord, error) {
	return repo.find(bson.M{})
}

// ListByPhotographer retrieves the shoots assigned to a photographer.
func (repo *MongoShootRepo) ListByPhotographer(photographerID string) ([]models.ShootRecord, error) {
	return repo.find(bson.M{"photographer.id": photographerID})
}

// ListByClient retrieves the shoots booked by a client.
func (repo *MongoShootRepo) ListByClient(clientID string) ([]models.ShootRecord, error) {
	return repo.find(bson.M{"client.id": clientID})
}

func (repo *MongoShootRepo) find(filter bson.M) ([]models.ShootRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching shoots: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []models.ShootRecord
	for cursor.Next(ctx) {
		var rec models.ShootRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("error decoding shoot: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return recs, nil
}

// Upsert stores one authority-confirmed shoot record.
func (repo *MongoShootRepo) Upsert(rec models.ShootRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": rec.ID}
	update := bson.M{"$set": rec}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting shoot %s: %w", rec.ID, err)
	}
	return nil
}

// UpsertMany stores a batch of authority-confirmed records (poll sync).
func (repo *MongoShootRepo) UpsertMany(recs []models.ShootRecord) error {
	if len(recs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ops := make([]mongo.WriteModel, 0, len(recs))
	for _, rec := range recs {
		op := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": rec.ID}).
			SetUpdate(bson.M{"$set": rec}).
			SetUpsert(true)
		ops = append(ops, op)
	}
	if _, err := repo.coll.BulkWrite(ctx, ops); err != nil {
		return fmt.Errorf("error bulk upserting shoots: %w", err)
	}
	return nil
}
