package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CommunityPost is a post in the communityPosts collection.
type CommunityPost struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Author    string        `bson:"author" json:"author"`
	AuthorID  string        `bson:"authorId" json:"authorId"`
	Likes     int           `bson:"likes" json:"likes"`
	Comments  []PostComment `bson:"comments" json:"comments"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
}

// PostComment is a comment attached to a community post.
type PostComment struct {
	Author    string    `bson:"author" json:"author"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
