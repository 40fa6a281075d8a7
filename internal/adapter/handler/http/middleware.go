package http

import (
	"net/http"
	"strings"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationType       = "bearer"
	authorizationPayloadKey = "authorization_payload"

	apiKeyHeader = "api_key"
)

// APIKeyMiddleware is the shared-secret gate in front of the payments
// service. The liveness endpoint is registered outside the gated group.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(apiKeyHeader) != apiKey {
			c.String(http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthMiddleware validates the bearer access token and stores the decoded
// payload on the request context.
func AuthMiddleware(token ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Auth header required")
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], authorizationType) {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid auth header")
			return
		}

		accessToken := fields[1]
		payload, err := token.VerifyAccess(accessToken)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(authorizationPayloadKey, &payload)
		c.Next()
	}
}

// authPayload pulls the token payload stored by AuthMiddleware.
func authPayload(c *gin.Context) (*domain.TokenPayload, bool) {
	value, exists := c.Get(authorizationPayloadKey)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}
