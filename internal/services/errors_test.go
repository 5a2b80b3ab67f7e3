package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid operation", err: &InvalidOperationError{Operation: "x"}, want: http.StatusBadRequest},
		{name: "payload", err: &PayloadError{Message: "payload is required"}, want: http.StatusBadRequest},
		{name: "wrapped payload", err: fmt.Errorf("dispatch: %w", &PayloadError{Message: "m"}), want: http.StatusBadRequest},
		{name: "configuration", err: &ConfigurationError{}, want: http.StatusInternalServerError},
		{name: "parse", err: &ParseError{Message: "bad json"}, want: http.StatusInternalServerError},
		{name: "schema violation", err: &SchemaViolationError{Operation: "x"}, want: http.StatusInternalServerError},
		{name: "transport", err: &TransportError{Cause: errors.New("timeout")}, want: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "API key is not configured on the server.", (&ConfigurationError{}).Error())
	assert.Equal(t, "Invalid analysis type", (&InvalidOperationError{Operation: "x"}).Error())
	assert.Equal(t, "parse error: bad json: eof", (&ParseError{Message: "bad json", Cause: errors.New("eof")}).Error())

	violation := &SchemaViolationError{
		Operation: "rewriteResumeForJob",
		Errors: []FieldError{
			{Field: "(root)", Message: "rewrittenResume is required"},
		},
	}
	assert.Equal(t, "model output for rewriteResumeForJob violates schema: (root): rewrittenResume is required", violation.Error())
}
