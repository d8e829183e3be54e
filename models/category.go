package models

import "time"

// Category represents a post category
// Collection: categories
type Category struct {
	ID          int64     `bson:"_id" json:"id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	PostCount   int64     `bson:"post_count" json:"post_count"`
}
