package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"project-planner/config"
	"project-planner/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_Generated(t *testing.T) {
	mw := New(&mockLogger{}, config.RateLimitConfig{})
	r := gin.New()

	var seen string
	r.GET("/", mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected request ID on context")
	}
	if got := w.Header().Get(HeaderRequestID); got != seen {
		t.Errorf("header %q does not match context %q", got, seen)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	mw := New(&mockLogger{}, config.RateLimitConfig{})
	r := gin.New()

	var seen string
	r.GET("/", mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Errorf("expected caller's request ID, got %q", seen)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(&mockLogger{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
	r := gin.New()
	r.POST("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/?user_id=u", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimit_PerUser(t *testing.T) {
	// 6/min gives a burst of 1 and a refill far slower than the test.
	mw := New(&mockLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 6})
	r := gin.New()
	r.POST("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(target string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
		return w.Code
	}

	if code := send("/?user_id=a"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send("/?user_id=a"); code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", code)
	}
	if code := send("/?user_id=b"); code != http.StatusOK {
		t.Errorf("other user: expected 200, got %d", code)
	}
}
