package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/services"
)

func exportContentType(format string) string {
	if format == services.ExportFormatJSON {
		return "application/json; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

// @Summary Export posts
// @Description Stream the filtered post rows as CSV or JSON. The list view's query string applies; selected ids narrow the export.
// @Tags admin-posts
// @Produce plain
// @Param format query string false "Export format (csv, json)" default(csv)
// @Param q query string false "Search term"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction"
// @Param selected query string false "Comma-separated selected ids"
// @Success 200 {string} string "exported rows"
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/posts/export [get]
func AdminExportPostsHandler(svc *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		format := c.DefaultQuery("format", services.ExportFormatCSV)
		if format != services.ExportFormatCSV && format != services.ExportFormatJSON {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: fmt.Sprintf("unknown format %q", format)})
			return
		}

		c.Header("Content-Type", exportContentType(format))
		c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename("posts", format))

		if err := svc.ExportPosts(c.Request.Context(), c.Writer, c.Request.URL.Query(), format); err != nil {
			if !errors.Is(err, services.ErrUnknownAction) {
				c.Status(http.StatusInternalServerError)
			}
			return
		}
	}
}

// @Summary Export comments
// @Description Stream the filtered comment rows as CSV or JSON
// @Tags admin-comments
// @Produce plain
// @Param format query string false "Export format (csv, json)" default(csv)
// @Param q query string false "Search term"
// @Param status query string false "Filter by status (pending, approved, spam)"
// @Param selected query string false "Comma-separated selected ids"
// @Success 200 {string} string "exported rows"
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/comments/export [get]
func AdminExportCommentsHandler(svc *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		format := c.DefaultQuery("format", services.ExportFormatCSV)
		if format != services.ExportFormatCSV && format != services.ExportFormatJSON {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: fmt.Sprintf("unknown format %q", format)})
			return
		}

		c.Header("Content-Type", exportContentType(format))
		c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename("comments", format))

		if err := svc.ExportComments(c.Request.Context(), c.Writer, c.Request.URL.Query(), format); err != nil {
			if !errors.Is(err, services.ErrUnknownAction) {
				c.Status(http.StatusInternalServerError)
			}
			return
		}
	}
}
