package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError indicates missing or malformed input the caller must correct.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// ConflictError indicates a uniqueness violation, e.g. a duplicate email.
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string { return e.Msg }

// AuthError indicates bad credentials. It is deliberately generic: callers
// must not be able to tell an unknown email from a wrong password.
type AuthError struct {
	Msg string
}

func (e AuthError) Error() string { return e.Msg }

// ForbiddenError indicates an authenticated caller acting on a resource it does not own.
type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string { return e.Msg }

// NotFoundError indicates a referenced id that does not exist.
type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string { return e.Msg }

// UpstreamError indicates a failure in an external collaborator
// (payment gateway, mailer, image store) that the operation could not absorb.
type UpstreamError struct {
	Msg string
	Err error
}

func (e UpstreamError) Error() string { return e.Msg }
func (e UpstreamError) Unwrap() error { return e.Err }

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "Internal server error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// HTTPStatus maps a domain error to its response status code.
func HTTPStatus(err error) int {
	var (
		validationErr ValidationError
		conflictErr   ConflictError
		authErr       AuthError
		forbiddenErr  ForbiddenError
		notFoundErr   NotFoundError
		upstreamErr   UpstreamError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes a standardized JSON error response for a domain error.
// Internal faults are masked with a generic message.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		GetLogger().Error("Internal error", zap.Error(err))
		msg = "Internal server error"
	} else {
		GetLogger().Warn("Request failed", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}
