package errors

import (
	"fmt"
	"net/http"

	"github.com/FitFinder/fitfinder-backend/logger"
)

type ErrorType string

const (
	ValidationError        ErrorType = "VALIDATION_ERROR"
	NotFoundError          ErrorType = "NOT_FOUND"
	DanglingReferenceError ErrorType = "DANGLING_REFERENCE"
	ConflictError          ErrorType = "CONFLICT"
	DatabaseError          ErrorType = "DATABASE_ERROR"
	ServerError            ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// DanglingReference reports a feedback record referencing a customer or
// product that does not exist at write time.
func DanglingReference(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       DanglingReferenceError,
		Message:    fmt.Sprintf("referenced %s does not exist", entity),
		Detail:     fmt.Sprintf("%s ID: %v", entity, id),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewConflictError(message string, detail string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

func NewDatabaseError(err error) *AppError {
	// Log original error but return sanitized message
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, DanglingReferenceError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	case DatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
