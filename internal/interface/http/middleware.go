package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorHandlingMiddleware renders the last error recorded by a handler.
func errorHandlingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		httpErr := asHTTPError(c.Errors.Last().Err)
		args := []any{"code", httpErr.Code, "status", httpErr.Status, "path", c.Request.URL.Path, "error", httpErr.Err}
		if httpErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed", args...)
		} else {
			logger.Warn("request failed", args...)
		}

		c.JSON(httpErr.Status, httpErr.response())
	}
}

// bodyLimitMiddleware caps request bodies; photos travel inline so the cap
// must cover several encoded images.
func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large", "request body is too large", nil))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
