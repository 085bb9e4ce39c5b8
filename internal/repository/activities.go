package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"volunteerhub/internal/models"
	"volunteerhub/internal/store"
)

// ActivityRepository is the persistence contract for volunteering activities.
type ActivityRepository interface {
	All(ctx context.Context) ([]models.Activity, error)
	Insert(ctx context.Context, activity *models.Activity) (string, error)

	// AddParticipant appends the participant to the activity's set and
	// reports whether an activity with that ID existed.
	AddParticipant(ctx context.Context, id string, participant models.Participant) (bool, error)
}

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewMongoActivityRepository(st *store.Client) *MongoActivityRepository {
	return &MongoActivityRepository{coll: st.Collection("activities")}
}

func (r *MongoActivityRepository) All(ctx context.Context) ([]models.Activity, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *MongoActivityRepository) Insert(ctx context.Context, activity *models.Activity) (string, error) {
	result, err := r.coll.InsertOne(ctx, activity)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted ID type")
	}
	activity.ID = id
	return id.Hex(), nil
}

func (r *MongoActivityRepository) AddParticipant(ctx context.Context, id string, participant models.Participant) (bool, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID cannot match any document.
		return false, nil
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "participants", Value: participant}}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
