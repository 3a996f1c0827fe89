package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports bad local input. It is raised before any network
// call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConfigurationError reports a missing required setting, such as the
// completion API credential.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// AuthError reports rejected credentials or an absent session. Redirect, when
// set, is the auth entry point the caller should be sent to.
type AuthError struct {
	Message  string
	Redirect string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RemoteError reports a non-success response from the identity gateway, the
// store or the completion endpoint. Body carries the response body verbatim.
type RemoteError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s request failed with status %d", e.Service, e.StatusCode)
	}
	return body
}

// NotFoundError reports an expected row that is absent or not visible to the
// caller.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports a write that would break an invariant: a duplicate
// row or a transition out of a terminal state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
