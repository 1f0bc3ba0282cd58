package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError aborts the request with a JSON error message
func RespondWithError(c *gin.Context, status int, message string) {
	if status >= 500 {
		zap.L().Error(message, zap.String("path", c.Request.URL.Path), zap.Int("status", status))
	} else {
		zap.L().Debug(message, zap.String("path", c.Request.URL.Path), zap.Int("status", status))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
