package errors

import (
	"errors"
	"net/http"
)

// ErrRecommendationNotFound is returned when a recommendation does not
// exist or has been soft-deleted.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError creates a validation error from a field error map.
func NewValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope without field errors.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// FailFields builds a failure envelope carrying field errors.
func FailFields(message string, fields map[string][]string) Envelope {
	return Envelope{Success: false, Message: message, Errors: fields}
}

// HTTPError represents an HTTP error with status code and response body.
type HTTPError struct {
	StatusCode int
	Body       Envelope
}

func (e *HTTPError) Error() string {
	return e.Body.Message
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Body:       FailFields("validation failed", valErr.Fields),
		}
	case errors.Is(err, ErrRecommendationNotFound):
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Body:       Fail(err.Error()),
		}
	default:
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Body:       Fail("internal server error"),
		}
	}
}
