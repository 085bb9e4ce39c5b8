package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"volunteerhub/internal/models"
	"volunteerhub/internal/store"
)

// PostRepository is the persistence contract for community posts.
type PostRepository interface {
	// AllByNewest returns every post, newest first.
	AllByNewest(ctx context.Context) ([]models.CommunityPost, error)
	Insert(ctx context.Context, post *models.CommunityPost) (string, error)
}

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewMongoPostRepository(st *store.Client) *MongoPostRepository {
	return &MongoPostRepository{coll: st.Collection("communityPosts")}
}

func (r *MongoPostRepository) AllByNewest(ctx context.Context) ([]models.CommunityPost, error) {
	cursor, err := r.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	posts := []models.CommunityPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) Insert(ctx context.Context, post *models.CommunityPost) (string, error) {
	result, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted ID type")
	}
	post.ID = id
	return id.Hex(), nil
}
