package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/services"
)

// @Summary Sign in
// @Description Verify credentials and issue an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 401 {object} dto.ErrorResponseDTO
// @Router /api/v1/auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.LoginResponseDTO{
			AccessToken: token,
			User:        dto.NewAdminUserDTO(*user),
		})
	}
}
