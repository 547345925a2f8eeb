package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/logger"
)

const (
	// DefaultTimeout is the timeout for reads and small writes.
	DefaultTimeout = 60 * time.Second

	// WriteTimeout is the longer timeout for document ingestion calls,
	// which can legitimately take a while on large texts.
	WriteTimeout = 120 * time.Second

	// ValidateTimeout bounds the credential validation probe.
	ValidateTimeout = 30 * time.Second
)

// Ensure Client implements the driven port.
var _ driven.KnowledgeStore = (*Client)(nil)

// Client talks to a Dify-compatible knowledge-base API. Credentials are
// read through the source on every call, so a rotated key or base URL
// (config reload, changed environment) takes effect without a rebuild.
type Client struct {
	creds driven.CredentialSource
	// Separate clients because document writes get a longer deadline.
	httpClient  *http.Client
	writeClient *http.Client
	limiter     *RateLimiter
}

// credentialTokenSource resolves the bearer token from the credential
// source per request instead of capturing it once.
type credentialTokenSource struct {
	creds driven.CredentialSource
}

func (s credentialTokenSource) Token() (*oauth2.Token, error) {
	apiKey, ok := s.creds.Get(driven.CredentialAPIKey)
	if !ok {
		return nil, fmt.Errorf("%w: api_key", domain.ErrMissingParameter)
	}
	return &oauth2.Token{AccessToken: apiKey}, nil
}

// NewClient creates a client from a credential source. Both api_key and
// base_url must be present and non-empty at construction time.
func NewClient(ctx context.Context, creds driven.CredentialSource) (*Client, error) {
	if _, ok := creds.Get(driven.CredentialAPIKey); !ok {
		return nil, fmt.Errorf("%w: api_key", domain.ErrMissingParameter)
	}
	if _, ok := creds.Get(driven.CredentialBaseURL); !ok {
		return nil, fmt.Errorf("%w: base_url", domain.ErrMissingParameter)
	}

	ts := credentialTokenSource{creds: creds}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = DefaultTimeout

	writeClient := oauth2.NewClient(ctx, ts)
	writeClient.Timeout = WriteTimeout

	return &Client{
		creds:       creds,
		httpClient:  httpClient,
		writeClient: writeClient,
		limiter:     NewRateLimiter(),
	}, nil
}

// BaseURL returns the current normalised base URL.
func (c *Client) BaseURL() string {
	baseURL, _ := c.creds.Get(driven.CredentialBaseURL)
	return strings.TrimRight(baseURL, "/")
}

// RateLimiter returns the client's limiter for external inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}

// get issues a GET request with query parameters.
func (c *Client) get(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	return c.do(ctx, c.httpClient, http.MethodGet, path, params, nil)
}

// post issues a POST request with a JSON body on the default deadline.
func (c *Client) post(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, c.httpClient, http.MethodPost, path, nil, body)
}

// postWrite issues a POST on the extended document-write deadline.
func (c *Client) postWrite(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, c.writeClient, http.MethodPost, path, nil, body)
}

// patch issues a PATCH request with a JSON body.
func (c *Client) patch(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, c.httpClient, http.MethodPatch, path, nil, body)
}

// delete issues a DELETE request.
func (c *Client) delete(ctx context.Context, path string) (map[string]any, error) {
	return c.do(ctx, c.httpClient, http.MethodDelete, path, nil, nil)
}

// do performs one outbound call: rate-limit wait, request, status mapping.
// A 204 becomes a synthetic success payload; other 2xx bodies are decoded;
// everything else becomes an *APIError.
func (c *Client) do(
	ctx context.Context,
	hc *http.Client,
	method, path string,
	params url.Values,
	body any,
) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	baseURL, ok := c.creds.Get(driven.CredentialBaseURL)
	if !ok {
		return nil, fmt.Errorf("%w: base_url", domain.ErrMissingParameter)
	}
	endpoint := strings.TrimRight(baseURL, "/") + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("dify: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("dify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	logger.Debug("dify: %s %s request_id=%s", method, path, requestID)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.limiter.UpdateFromResponse(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dify: read response: %w", err)
	}

	logger.Debug("dify: %s %s -> %d request_id=%s", method, path, resp.StatusCode, requestID)

	if resp.StatusCode == http.StatusNoContent {
		return map[string]any{
			"success": true,
			"message": "Operation completed successfully",
		}, nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(bytes.TrimSpace(data)) == 0 {
			return map[string]any{}, nil
		}
		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("dify: undecodable response body: %w", err)
		}
		return payload, nil
	}

	return nil, newAPIError(resp.StatusCode, data)
}

// ValidateCredentials checks the configured key and base URL with a
// lightweight authenticated read (list one dataset).
func (c *Client) ValidateCredentials(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ValidateTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("page", "1")
	params.Set("limit", "1")

	_, err := c.get(ctx, "/datasets", params)
	switch {
	case err == nil:
		return nil
	case IsUnauthorized(err):
		return fmt.Errorf("invalid API key, please check your credentials: %w", err)
	case IsForbidden(err):
		return fmt.Errorf("access forbidden, please check your API key permissions: %w", err)
	case IsConnectionFailure(err):
		return fmt.Errorf("failed to connect to the knowledge API, please check your base URL: %w", err)
	case IsTimeout(err):
		return fmt.Errorf("connection to the knowledge API timed out, please try again: %w", err)
	default:
		return fmt.Errorf("failed to validate credentials: %w", err)
	}
}
