package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError means the server has no model credential.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message == "" {
		return "API key is not configured on the server."
	}
	return e.Message
}

// InvalidOperationError means the requested operation name is not registered.
type InvalidOperationError struct {
	Operation string
}

func (e *InvalidOperationError) Error() string {
	return "Invalid analysis type"
}

// PayloadError means the operation payload could not be decoded or is missing inputs.
type PayloadError struct {
	Message string
	Cause   error
}

func (e *PayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid payload: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid payload: %s", e.Message)
}

func (e *PayloadError) Unwrap() error {
	return e.Cause
}

// ParseError means the model output was not valid JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

type FieldError struct {
	Field   string
	Message string
}

// SchemaViolationError means the model output parsed but does not match the operation schema.
type SchemaViolationError struct {
	Operation string
	Errors    []FieldError
}

func (e *SchemaViolationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("model output for %s violates schema: %s", e.Operation, strings.Join(parts, "; "))
}

// TransportError wraps a failed call to the model service.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to generate content: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code the HTTP surface uses for err.
func HTTPStatus(err error) int {
	var invalidOp *InvalidOperationError
	var payloadErr *PayloadError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &invalidOp), errors.As(err, &payloadErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
