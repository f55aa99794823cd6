// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// BookNotFoundError is returned when a reference names a book that the
// resolved bible does not contain. Its message is user-facing.
type BookNotFoundError struct {
	Bible string
	Book  string
}

// Error implements the error interface
func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("Bible, %s, does not contain %s.", e.Bible, e.Book)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamAPIError represents an error from the upstream content API:
// a non-2xx status, a non-JSON body, or a JSON body carrying an error field.
type UpstreamAPIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

// Error implements the error interface
func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("upstream API error from %s: %d - %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNotFound checks if an error is a NotFoundError or BookNotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return true
	}
	var bookErr *BookNotFoundError
	return errors.As(err, &bookErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstreamAPI checks if an error is an UpstreamAPIError
func IsUpstreamAPI(err error) bool {
	var apiErr *UpstreamAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
