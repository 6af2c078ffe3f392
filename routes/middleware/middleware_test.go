package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/dwnGnL/paymentService/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rules(maxRepeat int64) models.CacheStruct {
	return models.CacheStruct{
		LessRequestTime: models.LessReq{MaxRepeat: maxRepeat, Duration: 1},
		CleaningTime:    60,
		CheckingTIme:    60,
		WaitTime:        10,
	}
}

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestThrottleAllow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)}
	th := NewThrottle(rules(3))
	th.now = clock.now

	for i := 0; i < 3; i++ {
		_, ok := th.Allow("10.0.0.1", "POST /api/payments")
		require.True(t, ok, "request %d", i)
	}

	wait, ok := th.Allow("10.0.0.1", "POST /api/payments")
	assert.False(t, ok)
	assert.Equal(t, 10*time.Second, wait)

	// other clients and other routes of a blocked client
	_, ok = th.Allow("10.0.0.2", "POST /api/payments")
	assert.True(t, ok)
	wait, ok = th.Allow("10.0.0.1", "GET /api/payments")
	assert.False(t, ok)
	assert.Equal(t, 10*time.Second, wait)

	clock.t = clock.t.Add(4 * time.Second)
	wait, ok = th.Allow("10.0.0.1", "POST /api/payments")
	assert.False(t, ok)
	assert.Equal(t, 6*time.Second, wait)

	clock.t = clock.t.Add(6 * time.Second)
	_, ok = th.Allow("10.0.0.1", "POST /api/payments")
	assert.True(t, ok)
}

func TestThrottleSlowClientIsNeverBlocked(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)}
	th := NewThrottle(rules(2))
	th.now = clock.now

	for i := 0; i < 10; i++ {
		_, ok := th.Allow("10.0.0.1", "GET /health")
		require.True(t, ok, "request %d", i)
		clock.t = clock.t.Add(2 * time.Second)
	}
}

func TestThrottleDisabled(t *testing.T) {
	th := NewThrottle(rules(0))
	for i := 0; i < 100; i++ {
		_, ok := th.Allow("10.0.0.1", "GET /health")
		require.True(t, ok)
	}
}

func TestThrottleMiddleware(t *testing.T) {
	th := NewThrottle(rules(1))
	r := gin.New()
	r.Use(th.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, do().Code)
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "10", w.Header().Get("Retry-After"))

	var body e.ApiError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.ErrorCode)
	assert.Equal(t, "Too many requests, next attempt possible in 10 sec.", body.Message)
	assert.Equal(t, "/ping", body.Path)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(logging.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("nil map") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body e.ApiError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.POST("/api/payments", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/payments", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
