package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func TestRateLimiter_Allow(t *testing.T) {
	clock := newClock()
	rl := newRateLimiter(2, time.Second, clock.Now)

	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())

	clock.Advance(500 * time.Millisecond)
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestRateLimiter_AccumulatesFractionalTokens(t *testing.T) {
	clock := newClock()
	rl := newRateLimiter(1, time.Second, clock.Now)
	require.True(t, rl.Allow())

	for i := 0; i < 3; i++ {
		clock.Advance(300 * time.Millisecond)
		assert.False(t, rl.Allow())
	}
	clock.Advance(200 * time.Millisecond)
	assert.True(t, rl.Allow())
}

func TestRateLimit_Middleware(t *testing.T) {
	clock := newClock()
	router := gin.New()
	router.Use(rateLimit(newRateLimiter(1, time.Minute, clock.Now), time.Minute))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
}

func TestDeduplication(t *testing.T) {
	clock := newClock()
	router := gin.New()
	router.Use(deduplicate(newDeduplicator(time.Second, clock.Now)))
	router.POST("/generate", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/generate", func(c *gin.Context) { c.Status(http.StatusOK) })

	post := func(body string) int {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body)))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post(`{"a":1}`))
	assert.Equal(t, http.StatusTooManyRequests, post(`{"a":1}`))
	assert.Equal(t, http.StatusOK, post(`{"a":2}`))

	clock.Advance(2 * time.Second)
	assert.Equal(t, http.StatusOK, post(`{"a":1}`))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestDeduplication_SweepsExpired(t *testing.T) {
	clock := newClock()
	d := newDeduplicator(time.Second, clock.Now)

	assert.False(t, d.seen("a"))
	assert.False(t, d.seen("b"))
	clock.Advance(11 * time.Second)
	assert.False(t, d.seen("c"))

	assert.Len(t, d.requests, 1)
}

func TestBodySizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodySizeLimit(8))
	router.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
