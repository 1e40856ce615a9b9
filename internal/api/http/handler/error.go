package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

// handleError writes the client-facing response for err. Internal details
// never reach the body.
func handleError(w http.ResponseWriter, err error) {
	status, message := errorResponse(err)
	writeMessage(w, status, message)
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict, "username or email already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, model.ErrUpstream):
		return http.StatusInternalServerError, "restaurant search failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// logFailure records a failed request. Client errors are expected traffic
// and go to Info; only 5xx outcomes are logged at Error.
func logFailure(l *logger.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err.Error())
	if status, _ := errorResponse(err); status < http.StatusInternalServerError {
		l.Info(msg, args...)
		return
	}
	l.Error(msg, args...)
}
