package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"
	"hotelsphere/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "failure keeps its code", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"booking not found"}`},
		{name: "remote outage", err: failure.RemoteUnavailable, wantCode: http.StatusServiceUnavailable, wantBody: `{"error":"remote replica unavailable"}`},
		{name: "plain error", err: errors.New("disk full"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"disk full"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSONAndMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithJSON(recorder, http.StatusCreated, map[string]int{"rooms": 2})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"rooms":2}}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}

func TestWithAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithAttachment(recorder, constant.ContentTypeZstd, "hotelsphere_backup.json.zst", []byte{0x28, 0xb5, 0x2f, 0xfd})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeZstd, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="hotelsphere_backup.json.zst"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", recorder.Header().Get("Content-Length"))
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, recorder.Body.Bytes())
}
