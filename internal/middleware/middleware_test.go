package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"travelquote/pkg/logger"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func get(r http.Handler, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := newRouter(rl.Limit())

	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1:1001").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/ping", "10.0.0.1:1002").Code)

	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.2:1000").Code)
	assert.Equal(t, 2, rl.size())
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")
	require.Equal(t, 2, rl.size())

	now = now.Add(visitorTTL + time.Minute)
	rl.getLimiter("10.0.0.3")

	assert.Equal(t, 1, rl.size())
}

func TestTraceLoggerMiddleware_WithSpan(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("test", &buf)

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	// Stand-in for otelgin: start a span before the logger runs.
	withSpan := func(c *gin.Context) {
		ctx, span := tp.Tracer("test").Start(c.Request.Context(), "request")
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}

	var traceID any
	r := newRouter(withSpan, TraceLoggerMiddleware(log), func(c *gin.Context) {
		traceID, _ = c.Get("trace_id")
		c.Next()
	})

	w := get(r, "/ping", "10.0.0.1:1000")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, traceID)
	out := buf.String()
	assert.Contains(t, out, `"trace_id":"`+traceID.(string)+`"`)
	assert.Contains(t, out, `"message":"request completed"`)
	assert.Contains(t, out, `"status":200`)
}

func TestTraceLoggerMiddleware_ServerErrorsLogAtError(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(TraceLoggerMiddleware(logger.NewWithWriter("test", &buf)))

	get(r, "/boom", "10.0.0.1:1000")

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.NotContains(t, buf.String(), "trace_id")
}
