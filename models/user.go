package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account and its public portfolio header.
// Collection: users
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	SubTitle     string             `bson:"sub_title,omitempty" json:"subTitle,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	HostURL      string             `bson:"host_url,omitempty" json:"hostUrl,omitempty"`
	PhotoURL     string             `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
}
