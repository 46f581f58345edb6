package middleware

import (
	"log/slog"
	"net/http"

	"courtbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				writeMessage(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes in the same error shape as handlers.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeMessage(c, http.StatusNotFound, "Route not found")
	}
}

func writeMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, httperr.NewResponse(status, msg, nil))
}
