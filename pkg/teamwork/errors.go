package teamwork

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/teamwork/internal/constants"
)

// Sentinels matched by the typed errors below, plus static errors for err113 compliance.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnknownResource    = errors.New("unknown resource")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrRequestFailed      = errors.New("request failed")
	ErrMissingEnvelopeKey = errors.New("response is missing envelope key")
	ErrTooManyIDs         = errors.New("too many identifiers")
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrBaseURLRequired    = errors.New("base URL or domain is required")
	ErrInvalidBaseURL     = errors.New("base URL must be an absolute http or https URL")
	ErrNegativeTimeout    = errors.New("HTTP timeout cannot be negative")
	ErrNegativeRateLimit  = errors.New("requests per minute cannot be negative")
)

// ValidationError is returned when input fails a client-side check. No request is sent.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// UnknownResourceError is returned when a resource name is not registered.
type UnknownResourceError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("resource `%s` does not exist", e.Name)
}

// Is reports whether target is ErrUnknownResource.
func (e *UnknownResourceError) Is(target error) bool {
	return target == ErrUnknownResource
}

// NotAuthorizedError is returned when the API answers 401 for the configured key.
type NotAuthorizedError struct {
	APIKey   string
	Endpoint string
}

// Error implements the error interface. The key is masked.
func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("Teamwork API key `%s` does not have permission for this request.", MaskAPIKey(e.APIKey))
}

// Is reports whether target is ErrNotAuthorized.
func (e *NotAuthorizedError) Is(target error) bool {
	return target == ErrNotAuthorized
}

// RequestFailedError is returned for every other failed call. StatusCode is 0
// when no HTTP response was received.
type RequestFailedError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request to %s failed: %s", e.Endpoint, e.Message)
	}

	return fmt.Sprintf("request to %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// StatusError lets a Transport report an HTTP failure without a full Response.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// MaskAPIKey keeps the first few characters of a key and hides the rest.
func MaskAPIKey(key string) string {
	if len(key) <= constants.APIKeyVisiblePrefix {
		return constants.MaskedSecret
	}

	return key[:constants.APIKeyVisiblePrefix] + constants.MaskedSecret
}

// IsValidation checks if the error is a client-side validation failure.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr) || errors.Is(err, ErrInvalidRequest)
}

// IsUnknownResource checks if the error is an unknown resource error.
func IsUnknownResource(err error) bool {
	unknownErr := &UnknownResourceError{}

	return errors.As(err, &unknownErr)
}

// IsNotAuthorized checks if the error is a rejected API key.
func IsNotAuthorized(err error) bool {
	authErr := &NotAuthorizedError{}

	return errors.As(err, &authErr)
}

// IsRequestFailed checks if the error is a failed request.
func IsRequestFailed(err error) bool {
	failedErr := &RequestFailedError{}

	return errors.As(err, &failedErr)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	failedErr := &RequestFailedError{}
	if errors.As(err, &failedErr) {
		return failedErr.StatusCode
	}

	if IsNotAuthorized(err) {
		return constants.HTTPStatusUnauthorized
	}

	return 0
}
