package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/handlers"
	"feedback-backend/internal/metrics"
	mw "feedback-backend/internal/middleware"
	"feedback-backend/internal/models"
	"feedback-backend/internal/notify"
	"feedback-backend/internal/router"
	"feedback-backend/internal/service"
	"feedback-backend/internal/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(limiter *mw.RateLimiter) http.Handler {
	return newRouterWithProxy(limiter, false)
}

func newRouterWithProxy(limiter *mw.RateLimiter, trustProxy bool) http.Handler {
	log := zap.NewNop()
	clock := displaytime.NewClock(nil)

	users := memstore.NewCollection[models.User]()
	userSvc := service.NewUserService(users, clock)
	feedbackSvc := service.NewFeedbackService(memstore.NewCollection[models.Feedback](), users, notify.NewLogNotifier(log), clock, log)
	questionSetSvc := service.NewQuestionSetService(memstore.NewCollection[models.QuestionSet](), clock)

	return router.New(router.Dependencies{
		Log:               log,
		Metrics:           metrics.New(),
		RateLimiter:       limiter,
		AllowedOrigins:    []string{"https://app.example.com"},
		TrustProxyHeaders: trustProxy,
		Users:             handlers.NewUserHandler(userSvc, log),
		Feedbacks:         handlers.NewFeedbackHandler(feedbackSvc, log),
		QuestionSets:      handlers.NewQuestionSetHandler(questionSetSvc, log),
	})
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(mw.RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get(mw.RequestIDHeader))
}

func TestMetricsEndpointReportsRoutePatterns(t *testing.T) {
	h := newRouter(nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/g-404", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `route="/users/{googleUid}"`)
	assert.NotContains(t, body, "g-404")
}

func TestCORSPreflight(t *testing.T) {
	h := newRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/feedbacks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
}

func TestRateLimitAppliesToAPIRoutesOnly(t *testing.T) {
	h := newRouter(mw.NewRateLimiter(1, 1))

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.7:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, get("/question-sets"))
	assert.Equal(t, http.StatusTooManyRequests, get("/question-sets"))

	// liveness stays reachable
	assert.Equal(t, http.StatusOK, get("/health"))
	assert.Equal(t, http.StatusOK, get("/"))
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	h := newRouter(mw.NewRateLimiter(0.001, 1))

	codes := make([]int, 0, 3)
	for _, fwd := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/feedbacks", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		req.Header.Set("X-Forwarded-For", fwd)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRateLimitUsesForwardedForBehindTrustedProxy(t *testing.T) {
	h := newRouterWithProxy(mw.NewRateLimiter(0.001, 1), true)

	get := func(fwd string) int {
		req := httptest.NewRequest(http.MethodGet, "/feedbacks", nil)
		req.RemoteAddr = "10.0.0.1:443"
		req.Header.Set("X-Forwarded-For", fwd)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, get("203.0.113.1"))
	assert.Equal(t, http.StatusOK, get("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, get("203.0.113.1"))
}
