package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelsphere/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("stays must not be empty")), code: http.StatusBadRequest, message: "stays must not be empty"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid folio mode"), code: http.StatusBadRequest, message: "invalid folio mode"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "conflict", err: failure.Conflict("room 101 is occupied"), code: http.StatusConflict, message: "room 101 is occupied"},
		{name: "unprocessable", err: failure.Unprocessable("check-out precedes check-in"), code: http.StatusUnprocessableEntity, message: "check-out precedes check-in"},
		{name: "unavailable", err: failure.Unavailable("backup storage is not configured"), code: http.StatusServiceUnavailable, message: "backup storage is not configured"},
		{name: "invalid date", err: failure.InvalidDateParam, code: http.StatusBadRequest, message: "invalid date parameter, expected YYYY-MM-DD"},
		{name: "remote unavailable", err: failure.RemoteUnavailable, code: http.StatusServiceUnavailable, message: "remote replica unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("disk full"), want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("checkout: %w", failure.NotFound("booking not found")), want: http.StatusNotFound},
		{name: "joined failure", err: errors.Join(errors.New("push failed"), failure.RemoteUnavailable), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("reserve: %w", failure.Conflict("room 101 is occupied"))

	assert.True(t, failure.Is(err, http.StatusConflict))
	assert.False(t, failure.Is(err, http.StatusNotFound))
	assert.False(t, failure.Is(errors.New("plain"), http.StatusConflict))
}
