package logging

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

var timeFormat = "02/Jan/2006:15:04:05 -0700"

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Setup initialize the log instance
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Logger is the logrus logger handler
func Logger(log *logrus.Logger) gin.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknow"
	}
	return func(c *gin.Context) {
		// other handler can change c.Path so:
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000000.0))
		statusCode := c.Writer.Status()
		ipAddress := c.ClientIP()
		clientUserAgent := c.Request.UserAgent()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		entry := logrus.NewEntry(log).WithFields(logrus.Fields{
			"hostname":   hostname,
			"statusCode": statusCode,
			"latency":    latency, // time to process
			"clientIP":   ipAddress,
			"method":     c.Request.Method,
			"path":       path,
			"dataLength": dataLength,
			"userAgent":  clientUserAgent,
			"requestID":  c.GetString(RequestIDKey),
		})

		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			entry.Error(private.String())
			return
		}
		msg := fmt.Sprintf("%s - %s [%s] \"%s %s\" %d %d \"%s\" (%dms)", ipAddress, hostname, time.Now().Format(timeFormat), c.Request.Method, path, statusCode, dataLength, clientUserAgent, latency)
		if statusCode > 499 {
			entry.Error(msg)
		} else if statusCode > 399 {
			entry.Warn(msg)
		} else {
			entry.Info(msg)
		}
	}
}
