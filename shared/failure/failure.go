// Package failure carries the HTTP status a service error should surface as.
// Errors without a Failure in their chain map to 500.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidDateParam  = &Failure{Code: http.StatusBadRequest, Message: "invalid date parameter, expected YYYY-MM-DD"}
	RemoteUnavailable = &Failure{Code: http.StatusServiceUnavailable, Message: "remote replica unavailable"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest wraps a validation error. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func NotFound(message string) error {
	return newFailure(http.StatusNotFound, message)
}

// Conflict reports a request that clashes with current state, such as a room
// that is already occupied.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

// Unprocessable reports a well formed request that violates a business rule.
func Unprocessable(message string) error {
	return newFailure(http.StatusUnprocessableEntity, message)
}

// Unavailable reports a dependency that cannot be reached.
func Unavailable(message string) error {
	return newFailure(http.StatusServiceUnavailable, message)
}

func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
