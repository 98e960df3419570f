package rescheduleRepo

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

// MongoRescheduleRepo implements RescheduleRepository using MongoDB.
type MongoRescheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoRescheduleRepo constructs a new instance of MongoRescheduleRepo.
func NewMongoRescheduleRepo() RescheduleRepository {
	db := database.MongoClient.Database("shootflow")
	return &MongoRescheduleRepo{
		coll: db.Collection("reschedule_requests"),
	}
}

// Create inserts a new reschedule request.
func (repo *MongoRescheduleRepo) Create(req models.RescheduleRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("error inserting reschedule request: %w", err)
	}
	return nil
}

// GetByID retrieves a reschedule request by ID.
func (repo *MongoRescheduleRepo) GetByID(id string) (*models.RescheduleRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var req models.RescheduleRequest
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, fmt.Errorf("error fetching reschedule request %s: %w", id, err)
	}
	return &req, nil
}

// ListByShoot retrieves all requests for a shoot, newest first.
func (repo *MongoRescheduleRepo) ListByShoot(shootID string) ([]models.RescheduleRequest, error) {
	return repo.find(bson.M{"shoot_id": shootID})
}

// ListPending retrieves all unresolved requests.
func (repo *MongoRescheduleRepo) ListPending() ([]models.RescheduleRequest, error) {
	return repo.find(bson.M{"status": models.ReschedulePending})
}

func (repo *MongoRescheduleRepo) find(filter bson.M) ([]models.RescheduleRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reschedule requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.RescheduleRequest
	for cursor.Next(ctx) {
		var req models.RescheduleRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("error decoding reschedule request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reqs, nil
}

// Resolve stamps a terminal status on a pending request. Resolving an already
// resolved request is an error; requests are inert after resolution.
func (repo *MongoRescheduleRepo) Resolve(id string, status models.RescheduleStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id, "status": models.ReschedulePending}
	update := bson.M{"$set": bson.M{"status": status, "resolved_at": now}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error resolving reschedule request %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reschedule request %s is not pending", id)
	}
	return nil
}
