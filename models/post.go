package models

import "time"

// Post types: regular authored posts plus imported news items.
const (
	PostTypeArticle = "article"
	PostTypeNews    = "news"
)

// Post represents a blog post document
// Collection: posts
// IDs are numeric sequences from the counters collection so admin table
// state can carry them in URLs.
type Post struct {
	ID           int64     `bson:"_id" json:"id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	Type         string    `bson:"type" json:"type"`
	Title        string    `bson:"title" json:"title"`
	Slug         string    `bson:"slug" json:"slug"`
	Body         string    `bson:"body" json:"body"`
	Excerpt      string    `bson:"excerpt" json:"excerpt"`
	AuthorID     int64     `bson:"author_id" json:"author_id"`
	AuthorName   string    `bson:"author_name" json:"author_name"`
	CategoryID   int64     `bson:"category_id" json:"category_id"`
	CategoryName string    `bson:"category_name" json:"category_name"`
	Published    bool      `bson:"published" json:"published"`
	Featured     bool      `bson:"featured" json:"featured"`
	PublishedAt  time.Time `bson:"published_at" json:"published_at"`
	ViewCount    int64     `bson:"view_count" json:"view_count"`
	CommentCount int64     `bson:"comment_count" json:"comment_count"`

	// News-import provenance, empty for authored posts
	SourceName string `bson:"source_name,omitempty" json:"source_name,omitempty"`
	SourceLink string `bson:"source_link,omitempty" json:"source_link,omitempty"`
}
