package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorJSON writes the API's error envelope.
func errorJSON(c *gin.Context, status int, name, message string) {
	c.JSON(status, gin.H{
		"error":   name,
		"message": message,
	})
}

// internalError hides the underlying failure in production mode; in
// development the original message is returned to ease debugging.
func (s *Server) internalError(c *gin.Context, publicMessage string, err error) {
	s.logger.Error(c.Request.Context(), publicMessage, "error", err.Error())

	message := publicMessage
	if s.development {
		message = err.Error()
	}
	errorJSON(c, http.StatusInternalServerError, "Internal Server Error", message)
}

// decodeStrict decodes a JSON body into dst, rejecting unknown fields so
// clients cannot smuggle non-updatable columns past the boundary.
func decodeStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
