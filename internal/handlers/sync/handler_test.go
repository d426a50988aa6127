package sync_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotelsphere/infras/otel/mocks"
	serviceMocks "hotelsphere/internal/domains/frontdesk/service/mocks"
	syncHandler "hotelsphere/internal/handlers/sync"
	"hotelsphere/internal/syncer"
	syncerMocks "hotelsphere/internal/syncer/mocks"
	gRepo "hotelsphere/shared/repository"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestForceResync(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "resynced", wantCode: http.StatusOK},
		{name: "remote empty", err: syncer.ErrRemoteEmpty, wantCode: http.StatusConflict},
		{name: "remote unreachable", err: gRepo.ErrUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: http.StatusServiceUnavailable},
		{name: "local failure", err: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			coordinator := syncerMocks.NewMockCoordinator(ctrl)

			coordinator.EXPECT().ForceResync(gomock.Any()).Return(tt.err)
			if tt.err == nil {
				coordinator.EXPECT().Health().Return(syncer.Health{Status: syncer.StatusOK})
			}

			handler := syncHandler.New(coordinator, serviceMocks.NewMockFrontDesk(ctrl), otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/sync/resync", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHealthAndWipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := syncerMocks.NewMockCoordinator(ctrl)
	service := serviceMocks.NewMockFrontDesk(ctrl)

	coordinator.EXPECT().Health().Return(syncer.Health{Status: syncer.StatusError, LastError: "connection refused"})
	service.EXPECT().Wipe(gomock.Any()).Return(nil)

	handler := syncHandler.New(coordinator, service, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/sync/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ERROR"`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/sync/wipe", strings.NewReader(`{"confirm": false}`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/sync/wipe", strings.NewReader(`{"confirm": true}`)))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
