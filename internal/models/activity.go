package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Activity is a volunteering event in the activities collection. Date and the
// time fields are kept as client-provided strings.
type Activity struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Description     string        `bson:"description" json:"description"`
	Date            string        `bson:"date" json:"date"`
	StartTime       string        `bson:"startTime" json:"startTime"`
	EndTime         string        `bson:"endTime" json:"endTime"`
	Location        string        `bson:"location" json:"location"`
	MaxParticipants int           `bson:"maxParticipants" json:"maxParticipants"`
	Participants    []Participant `bson:"participants" json:"participants"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	IsActive        bool          `bson:"isActive" json:"isActive"`
}

// Participant records one volunteer having joined an activity.
type Participant struct {
	UserID   string    `bson:"userId" json:"userId"`
	UserName string    `bson:"userName" json:"userName"`
	JoinedAt time.Time `bson:"joinedAt" json:"joinedAt"`
}
