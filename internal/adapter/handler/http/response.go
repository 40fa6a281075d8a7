package http

import (
	"net/http"

	"github.com/sperez-mk/miso-backend/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error" example:"Card not found"`
}

type messageResponse struct {
	Message string `json:"message" example:"Payment processed successfully"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Error: message,
	})
}

func newMessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponse{
		Message: message,
	})
}

// handleServiceError maps a service failure onto the wire: expected
// business-rule failures become a 400 carrying the error message, anything
// else a generic 500 without internals.
func handleServiceError(c *gin.Context, err error) {
	if domain.IsBusinessError(err) {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	newErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
