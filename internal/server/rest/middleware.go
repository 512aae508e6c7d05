package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/server/auth"
)

// identityKey is the gin context key carrying the verified token claims.
const identityKey = "identity"

// requestLogger tags every request with an id and logs one line when the
// handler chain completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// authRequired verifies the bearer token and attaches the claims to the
// request. The check is linear: no header and a malformed header are one
// failure, a bad signature or expired token another; both end in 401.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader(common.AuthHeaderName))
		if err != nil {
			errorJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, common.ErrTokenExpired) {
				message = "Token has expired"
			}
			errorJSON(c, http.StatusUnauthorized, "Unauthorized", message)
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// identity returns the verified claims attached by authRequired.
func identity(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
