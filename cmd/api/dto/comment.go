package dto

import (
	"time"

	"blogdeck/models"
)

// AdminCommentDTO is the row shape of the admin comment list.
type AdminCommentDTO struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	PostID      int64     `json:"post_id"`
	PostTitle   string    `json:"post_title"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	SpamScore   int       `json:"spam_score"`
}

func NewAdminCommentDTO(c models.Comment) AdminCommentDTO {
	return AdminCommentDTO{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		PostID:      c.PostID,
		PostTitle:   c.PostTitle,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Body:        c.Body,
		Status:      c.Status,
		SpamScore:   c.SpamScore,
	}
}

// CreateCommentRequestDTO is the public comment intake body. New
// comments are classified by the spam heuristics before they are stored.
type CreateCommentRequestDTO struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required,email"`
	Body        string `json:"body" binding:"required"`
}

// CreateCommentResponseDTO reports where a new comment landed.
type CreateCommentResponseDTO struct {
	CommentID int64  `json:"comment_id"`
	Status    string `json:"status"`
}
