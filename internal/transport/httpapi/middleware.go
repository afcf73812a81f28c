package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func accessLog(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(started).Milliseconds(),
		})

		if userID := identityFrom(c).UserID; userID != "" {
			entry = entry.WithField("owner_id", userID)
		}

		if c.Writer.Status() >= 500 {
			entry.Warn("request served")
			return
		}

		entry.Debug("request served")
	}
}
