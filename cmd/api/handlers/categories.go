package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
)

// @Summary List categories for admin
// @Description List categories with search, sorting, pagination and selection state
// @Tags admin-categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (<=100)"
// @Param q query string false "Search term"
// @Param sort query string false "Sort field (id, name, post_count, created_at)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Param selected query string false "Comma-separated selected ids"
// @Success 200 {object} dto.TableResponse[dto.AdminCategoryDTO]
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/categories [get]
func AdminListCategoriesHandler(svc *services.CategoryAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.List(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Create a category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param body body dto.CreateCategoryRequestDTO true "Category creation request"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/categories [post]
func AdminCreateCategoryHandler(svc *services.CategoryAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateCategoryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if _, err := svc.Create(c.Request.Context(), req); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "category created"})
	}
}

// @Summary Run a bulk action on categories
// @Description Delete the selected categories; non-empty categories fail per item
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param action path string true "Bulk action (delete)"
// @Param body body dto.BulkRequestDTO true "Selected ids"
// @Success 200 {object} dto.BulkReportDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/categories/bulk/{action} [post]
func AdminBulkCategoriesHandler(svc *services.CategoryAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, err := services.ParseCategoryBulkAction(c.Param("action"))
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
