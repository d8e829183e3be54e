package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
)

// @Summary List comments for admin
// @Description List comments with search, sorting, pagination and selection state. The status query narrows to one moderation queue.
// @Tags admin-comments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (<=100)"
// @Param q query string false "Search term"
// @Param sort query string false "Sort field (id, created_at, author_name, spam_score)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Param selected query string false "Comma-separated selected ids"
// @Param status query string false "Filter by status (pending, approved, spam)"
// @Success 200 {object} dto.TableResponse[dto.AdminCommentDTO]
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/comments [get]
func AdminListCommentsHandler(svc *services.CommentAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.List(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Inline-edit a comment field
// @Description Set one moderation toggle (approved, spam) to an absolute value
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param body body dto.InlineEditRequestDTO true "Field and target value"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/comments/{id}/inline [patch]
func AdminInlineEditCommentHandler(svc *services.CommentAdminService) gin.HandlerFunc {
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
		field, err := services.ParseCommentEditableField(req.Field)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.InlineEdit(c.Request.Context(), id, field, req.Value); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "comment updated"})
	}
}

// @Summary Run a bulk action on comments
// @Description Apply approve/mark-spam/delete to the selected ids
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param action path string true "Bulk action (approve, mark-spam, delete)"
// @Param body body dto.BulkRequestDTO true "Selected ids"
// @Success 200 {object} dto.BulkReportDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/comments/bulk/{action} [post]
func AdminBulkCommentsHandler(svc *services.CommentAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, err := services.ParseCommentBulkAction(c.Param("action"))
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

// @Summary Submit a comment
// @Description Public comment intake. New comments are classified by the spam heuristics and land in pending or spam.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body dto.CreateCommentRequestDTO true "Comment body"
// @Success 200 {object} dto.CreateCommentResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/posts/{id}/comments [post]
func CreateCommentHandler(svc *services.CommentAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req dto.CreateCommentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		resp, err := svc.Intake(c.Request.Context(), postID, req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
