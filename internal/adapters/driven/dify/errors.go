package dify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// Transport failures are wrapped around the domain sentinels so core code
// can phrase them for users (a timed-out write may still be processing
// remotely) without depending on this adapter.

// APIError is a non-success response from the remote service, with the
// message extracted best-effort from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dify: API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes the matching domain sentinel so callers outside this
// package can test with errors.Is instead of the predicate helpers.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

// newAPIError builds an APIError from a response body, preferring the
// message, error, then detail fields, falling back to the raw body and
// finally the bare status code.
func newAPIError(statusCode int, body []byte) *APIError {
	message := ""

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := parsed[key].(string); ok && v != "" {
				message = v
				break
			}
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &APIError{StatusCode: statusCode, Message: message}
}

// classifyTransportError maps an http.Client error to the domain timeout
// or connection sentinel. Credential lookup failures raised by the token
// source pass through untouched.
func classifyTransportError(err error) error {
	if errors.Is(err, domain.ErrMissingParameter) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("dify: %w: %v", domain.ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("dify: %w: %v", domain.ErrTimeout, err)
	}
	return fmt.Errorf("dify: %w: %v", domain.ErrConnectionFailure, err)
}

// IsTimeout checks if the error indicates an elapsed request deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, domain.ErrTimeout)
}

// IsConnectionFailure checks if the error indicates a transport failure.
func IsConnectionFailure(err error) bool {
	return errors.Is(err, domain.ErrConnectionFailure)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 403
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
