// Package repository holds the per-collection persistence interfaces and
// their MongoDB implementations. Lookups that find nothing return (nil, nil)
// so callers can distinguish a miss from a store failure.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"volunteerhub/internal/models"
	"volunteerhub/internal/store"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// FindByEmailOrUsername returns an account matching either value, used by
	// registration's existence check.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)

	// FindByIdentifier returns the account whose username or email equals the
	// given login identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// Insert persists a new account and returns its generated ID.
	Insert(ctx context.Context, user *models.User) (string, error)
}

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(st *store.Client) *MongoUserRepository {
	return &MongoUserRepository{coll: st.Collection("users")}
}

func (r *MongoUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "username", Value: username}},
	}}}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: identifier}},
		bson.D{{Key: "email", Value: identifier}},
	}}}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted ID type")
	}
	user.ID = id
	return id.Hex(), nil
}
