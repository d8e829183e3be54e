package dto

import (
	"time"

	"blogdeck/models"
)

// AdminPostDTO is the row shape of the admin post list.
type AdminPostDTO struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	AuthorID     int64     `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Published    bool      `json:"published"`
	Featured     bool      `json:"featured"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	CommentCount int64     `json:"comment_count"`
	SourceName   string    `json:"source_name,omitempty"`
	SourceLink   string    `json:"source_link,omitempty"`
}

func NewAdminPostDTO(p models.Post) AdminPostDTO {
	return AdminPostDTO{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Type:         p.Type,
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		AuthorID:     p.AuthorID,
		AuthorName:   p.AuthorName,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Published:    p.Published,
		Featured:     p.Featured,
		PublishedAt:  p.PublishedAt,
		ViewCount:    p.ViewCount,
		CommentCount: p.CommentCount,
		SourceName:   p.SourceName,
		SourceLink:   p.SourceLink,
	}
}

// CreatePostRequestDTO is the admin "write a post" request body.
type CreatePostRequestDTO struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	Body       string `json:"body" binding:"required"`
	CategoryID int64  `json:"category_id"`
	Published  bool   `json:"published"`
}

// CreatePostResponseDTO is returned after creating a post.
type CreatePostResponseDTO struct {
	Message string `json:"message"`
	PostID  int64  `json:"post_id"`
}
