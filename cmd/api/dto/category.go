package dto

import (
	"time"

	"blogdeck/models"
)

// AdminCategoryDTO is the row shape of the admin category list.
type AdminCategoryDTO struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PostCount   int64     `json:"post_count"`
}

func NewAdminCategoryDTO(c models.Category) AdminCategoryDTO {
	return AdminCategoryDTO{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		PostCount:   c.PostCount,
	}
}

// CreateCategoryRequestDTO is the admin "add a category" request body.
type CreateCategoryRequestDTO struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}
