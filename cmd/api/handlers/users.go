package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
)

// @Summary List users for admin
// @Description List accounts with search, sorting, pagination and selection state
// @Tags admin-users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (<=100)"
// @Param q query string false "Search term"
// @Param sort query string false "Sort field (id, name, email, created_at, last_login_at)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Param selected query string false "Comma-separated selected ids"
// @Param role query string false "Filter by role (user, admin)"
// @Success 200 {object} dto.TableResponse[dto.AdminUserDTO]
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/users [get]
func AdminListUsersHandler(svc *services.UserAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.List(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Inline-edit a user field
// @Description Set the active flag to an absolute value. Acting on yourself or another admin is rejected.
// @Tags admin-users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body dto.InlineEditRequestDTO true "Field and target value"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 403 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/users/{id}/inline [patch]
func AdminInlineEditUserHandler(svc *services.UserAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req dto.InlineEditRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		field, err := services.ParseUserEditableField(req.Field)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.InlineEdit(c.Request.Context(), middleware.CurrentUserID(c), id, field, req.Value); err != nil {
			if err.Error() == "unauthorized" {
				c.JSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "unauthorized"})
				return
			}
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "user updated"})
	}
}

// @Summary Run a bulk action on users
// @Description Apply activate/deactivate/delete to the selected ids. Self and admin targets fail per item and stay selected.
// @Tags admin-users
// @Accept json
// @Produce json
// @Param action path string true "Bulk action (activate, deactivate, delete)"
// @Param body body dto.BulkRequestDTO true "Selected ids"
// @Success 200 {object} dto.BulkReportDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/users/bulk/{action} [post]
func AdminBulkUsersHandler(svc *services.UserAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, err := services.ParseUserBulkAction(c.Param("action"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		var req dto.BulkRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		report, err := svc.Bulk(c.Request.Context(), middleware.CurrentUserID(c), action, req.IDs)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
