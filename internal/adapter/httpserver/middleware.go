package httpserver

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	tokenHeader     = "X-Desktop-Token"
	requestIDHeader = "X-Request-ID"
)

// authMiddleware is only installed when a token is configured.
func authMiddleware(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(tokenHeader)), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{
				Ok:    false,
				Error: "unauthorized",
			})
			return
		}
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		logger.Info("request",
			"id", requestID,
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func requestRecoveryWithLog(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, err any) {
		logger.Error("panic in handler",
			"err", fmt.Sprint(err),
			"method", c.Request.Method,
			"path", c.Request.URL.String(),
			"stack", string(debug.Stack()),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Ok: false, Error: "internal error"})
	}
}
