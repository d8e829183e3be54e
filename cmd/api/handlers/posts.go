package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
)

// @Summary List posts for admin
// @Description List posts with search, allow-listed sorting, pagination and selection state restored from the query string
// @Tags admin-posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (<=100)"
// @Param q query string false "Search term"
// @Param sort query string false "Sort field (id, title, published_at, created_at, view_count, comment_count)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Param selected query string false "Comma-separated selected ids"
// @Param type query string false "Filter by post type (article, news)"
// @Success 200 {object} dto.TableResponse[dto.AdminPostDTO]
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts [get]
func AdminListPostsHandler(svc *services.PostAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.List(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Create a post
// @Description Create a new authored post
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param body body dto.CreatePostRequestDTO true "Post creation request"
// @Success 200 {object} dto.CreatePostResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts [post]
func AdminCreatePostHandler(svc *services.PostAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePostRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		id, err := svc.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CreatePostResponseDTO{Message: "post created", PostID: id})
	}
}

// @Summary Delete a post
// @Description Delete a post by id
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts/{id} [delete]
func AdminDeletePostHandler(svc *services.PostAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post deleted"})
	}
}

// @Summary Inline-edit a post field
// @Description Set one toggleable field (published, featured) to an absolute value
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body dto.InlineEditRequestDTO true "Field and target value"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts/{id}/inline [patch]
func AdminInlineEditPostHandler(svc *services.PostAdminService) gin.HandlerFunc {
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
		field, err := services.ParsePostEditableField(req.Field)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.InlineEdit(c.Request.Context(), id, field, req.Value); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post updated"})
	}
}

// @Summary Run a bulk action on posts
// @Description Apply publish/unpublish/feature/delete to the selected ids, reporting per-item failures
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param action path string true "Bulk action (publish, unpublish, feature, delete)"
// @Param body body dto.BulkRequestDTO true "Selected ids"
// @Success 200 {object} dto.BulkReportDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts/bulk/{action} [post]
func AdminBulkPostsHandler(svc *services.PostAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, err := services.ParsePostBulkAction(c.Param("action"))
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
