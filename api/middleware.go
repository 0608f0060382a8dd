package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request once the handler chain has run.
func (server *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	attrs := []any{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, "error", c.Errors.String())
	}
	if c.Writer.Status() >= 500 {
		server.logger.Error("request failed", attrs...)
		return
	}
	server.logger.Info("request", attrs...)
}
