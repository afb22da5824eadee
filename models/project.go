package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a portfolio project. Highlight only affects display
// ordering, it never filters.
// Collection: projects
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title       string             `bson:"title" json:"title"`
	Subtitle    string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	TechStack   []string           `bson:"tech_stack" json:"techStack"`
	RepoURL     string             `bson:"repo_url,omitempty" json:"repoUrl,omitempty"`
	DemoURL     string             `bson:"demo_url,omitempty" json:"demoUrl,omitempty"`
	FinishDate  time.Time          `bson:"finish_date" json:"finishDate"`
	Highlight   bool               `bson:"highlight" json:"highlight"`
	Hidden      bool               `bson:"hidden" json:"hidden"`
}
