package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLink represents a social media reference (GitHub, LinkedIn, ...).
// Collection: social_links
type SocialLink struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name         string             `bson:"name" json:"name"`
	RedirectLink string             `bson:"redirect_link" json:"redirectLink"`
	Hidden       bool               `bson:"hidden" json:"hidden"`
}
