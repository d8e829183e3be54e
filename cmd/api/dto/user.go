package dto

import (
	"time"

	"blogdeck/models"
)

// AdminUserDTO is the row shape of the admin user list.
type AdminUserDTO struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	LastLoginAt time.Time `json:"last_login_at"`
}

func NewAdminUserDTO(u models.User) AdminUserDTO {
	return AdminUserDTO{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
}

// LoginRequestDTO is the credential body for admin sign-in.
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the access token and profile of the signed-in
// admin.
type LoginResponseDTO struct {
	AccessToken string       `json:"access_token"`
	User        AdminUserDTO `json:"user"`
}
