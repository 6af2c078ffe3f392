package e

import (
	"errors"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ApiError is the body of every failed response.
type ApiError struct {
	ErrorCode  int         `json:"errorCode"`
	Message    string      `json:"message"`
	Path       string      `json:"path"`
	Timestamp  time.Time   `json:"timestamp"`
	Violations []Violation `json:"violations,omitempty"`
}

type Response struct {
	err error
}

func With(err error) *Response {
	return &Response{err: err}
}

// Write aborts the request with the ApiError matching the wrapped error.
// Internal errors are logged and reported to sentry; their text never leaves the process.
func (r *Response) Write(c *gin.Context) {
	body := ApiError{
		Path:      c.Request.URL.Path,
		Timestamp: time.Now(),
	}

	ge := c.Error(r.err)

	var de *Error
	if errors.As(r.err, &de) && de.Kind != KindInternal {
		ge.SetType(gin.ErrorTypePublic)
		body.ErrorCode = de.Kind.Status()
		body.Message = de.Message
		body.Violations = de.Violations
	} else {
		body.ErrorCode = KindInternal.Status()
		body.Message = "Internal server error"
		log.WithFields(log.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error(r.err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(r.err)
		}
	}

	c.AbortWithStatusJSON(body.ErrorCode, body)
}
