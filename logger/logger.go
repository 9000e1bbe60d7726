// Package logger provides request-scoped structured logging.
package logger

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKeyType struct{}

var contextKey = &contextKeyType{}

// Init sets up the global logrus formatter and level.
func Init(level logrus.Level) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)
}

// Middleware attaches a logger with a fresh request ID to every
// request context and logs the request once it completes.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logrus.WithField("requestID", uuid.NewString())
		ctx := context.WithValue(c.Request.Context(), contextKey, rlog)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		rlog.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Infoln("request")
	}
}

// FromContext returns the request logger, or the default logger if
// the context has none.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if rlog, ok := ctx.Value(contextKey).(*logrus.Entry); ok {
			return rlog
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
