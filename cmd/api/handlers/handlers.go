package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/api/services"
	"blogdeck/cmd/api/trace"
	"blogdeck/cmd/internal/logger"
	"blogdeck/tablestate"
)

// parseIDParam reads the numeric :id path parameter. Writes the 400
// response itself so handlers can just return on false.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// writeServiceError maps service errors onto HTTP statuses: unknown
// actions and fields are client mistakes, an oversized selection is
// rejected before any work happens, and a missing document is 404.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, tablestate.ErrSelectionLimit):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
	}
}
