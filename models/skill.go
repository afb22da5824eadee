package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill represents a single skill entry owned by a user.
// Collection: skills
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	Level     int                `bson:"level,omitempty" json:"level"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Hidden    bool               `bson:"hidden" json:"hidden"`
}
