package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Education represents a degree or study record.
// EndDate is nil while the degree is in progress.
// Collection: education
type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Institution string             `bson:"institution" json:"institution"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Finished    bool               `bson:"finished" json:"finished"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Hidden      bool               `bson:"hidden" json:"hidden"`
}
