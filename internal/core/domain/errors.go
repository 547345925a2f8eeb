package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors raised by the HTTP adapter.
var (
	// ErrMissingParameter indicates a required tool parameter is absent or empty.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrMalformedInput indicates a string-encoded structured field is not valid JSON.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidConfiguration indicates well-formed JSON that fails schema validation.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTimeout indicates the deadline on an outbound call elapsed.
	ErrTimeout = errors.New("request timed out")

	// ErrConnectionFailure indicates a transport-level failure, typically
	// a bad base URL or unreachable host.
	ErrConnectionFailure = errors.New("connection failed")
)
