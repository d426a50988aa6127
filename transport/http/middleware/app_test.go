package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelsphere/config"
	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/shared/cache"
	cacheMocks "hotelsphere/shared/cache/mocks"
	"hotelsphere/shared/constant"
	"hotelsphere/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOperator(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header set", header: "night-desk", want: "night-desk"},
		{name: "header blank", header: "  ", want: constant.DefaultOperator},
		{name: "header missing", want: constant.DefaultOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

			var got string
			handler := mw.Operator(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, _ = r.Context().Value(constant.ContextKeyOperator).(string)
			}))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderOperator, tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), request)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimit(t *testing.T) {
	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	redisCache := cache.NewRedisCache(client, otelMocks.NewOtel())

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)
	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)

	for range 3 {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 60*time.Second, server.TTL("limiter:192.0.2.1"))
}

func TestRateLimitPerOperator(t *testing.T) {
	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache.NewRedisCache(client, otelMocks.NewOtel()))
	handler := mw.Operator(mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for _, operator := range []string{"day-desk", "night-desk"} {
		request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		request.Header.Set(constant.RequestHeaderOperator, operator)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code, operator)
		assert.Equal(t, "0", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().
		Hit(gomock.Any(), "limiter:192.0.2.1", time.Minute).
		Return(int64(0), errors.New("connection refused"))

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)
	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}

func TestCORSDisabledPassesThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := mw.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Origin", "http://desk.local")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracingRecordsRoutePattern(t *testing.T) {
	recorder := otelMocks.NewRecorder()

	cfg := &config.Config{}
	cfg.App.Name = "hotelsphere"

	mw := middleware.NewAppMiddleware(recorder, cfg, nil)

	mux := chi.NewRouter()
	mux.Use(mw.Tracing)
	mux.Get("/v1/rooms/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/rooms/r101", nil))

	span, ok := recorder.Find("GET /v1/rooms/r101")
	assert.True(t, ok)
	assert.True(t, span.Ended)
	assert.Equal(t, "/v1/rooms/{id}", span.Attributes["http.route"])
	assert.Equal(t, http.StatusNoContent, span.Attributes["http.status_code"])
	assert.Equal(t, "hotelsphere", span.Attributes["app.name"])
}
