package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/dwnGnL/paymentService/pkg/logging"
	"github.com/dwnGnL/paymentService/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(logging.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

//CORSMiddleware solve cors problem by adding headers
func CORSMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", RequestIDHeader}
	conf.ExposeHeaders = []string{RequestIDHeader}
	conf.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}

// Metrics counts every request by method, route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.Request(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}

// Recovery turns a panic into a 500 ApiError.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		e.With(fmt.Errorf("panic: %v", recovered)).Write(c)
	})
}
