package models

import "time"

// Comment moderation statuses. New comments land in pending or spam
// depending on the heuristic score; admins move them from there.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusSpam     = "spam"
)

// Comment represents a reader comment on a post
// Collection: comments
type Comment struct {
	ID          int64     `bson:"_id" json:"id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	PostID      int64     `bson:"post_id" json:"post_id"`
	PostTitle   string    `bson:"post_title" json:"post_title"`
	AuthorName  string    `bson:"author_name" json:"author_name"`
	AuthorEmail string    `bson:"author_email" json:"author_email"`
	Body        string    `bson:"body" json:"body"`
	Status      string    `bson:"status" json:"status"`
	SpamScore   int       `bson:"spam_score" json:"spam_score"`
}
