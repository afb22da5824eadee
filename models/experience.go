package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience represents a work experience record.
// EndDate is nil while the position is ongoing.
// Collection: experiences
type Experience struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role             string             `bson:"role" json:"role"`
	Company          string             `bson:"company" json:"company"`
	StartDate        time.Time          `bson:"start_date" json:"startDate"`
	EndDate          *time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Responsibilities []string           `bson:"responsibilities" json:"responsibilities"`
	Hidden           bool               `bson:"hidden" json:"hidden"`
}
