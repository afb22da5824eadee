package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Language represents a spoken language with a proficiency level (e.g. "B2").
// Collection: languages
type Language struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Language  string             `bson:"language" json:"language"`
	Level     string             `bson:"level" json:"level"`
	Hidden    bool               `bson:"hidden" json:"hidden"`
}
