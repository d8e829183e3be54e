package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
)

// @Summary Import news feeds
// @Description Fetch every configured RSS feed and store the items as unpublished news posts. Re-imports refresh existing items.
// @Tags admin-news
// @Produce json
// @Success 200 {array} services.ImportResultDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/news/import [post]
func AdminImportNewsHandler(svc *services.NewsImportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := svc.ImportAll(c.Request.Context(), middleware.CurrentUserID(c))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
