// Package webapi talks to the Spotify Web API with a pre-issued bearer
// token: a generic JSON Fetcher plus the fixed top-list queries.
package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the API host every endpoint is appended to
const DefaultBaseURL = "https://api.spotify.com/"

var allowedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodConnect: true,
	http.MethodTrace:   true,
}

// Fetcher issues bearer-authenticated JSON requests against the Web API
type Fetcher struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

type settings struct {
	baseURL   string
	transport http.RoundTripper
	logger    *zap.Logger
}

// Option customises a Fetcher
type Option func(*settings)

// WithBaseURL points the Fetcher at another host, e.g. an httptest server
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		s.baseURL = baseURL
	}
}

// WithTransport sets the round tripper underneath the bearer transport
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) {
		s.transport = rt
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// NewFetcher creates a Fetcher that sends token on every request
func NewFetcher(token string, opts ...Option) (*Fetcher, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	s := settings{
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Fetcher{
		baseURL: s.baseURL,
		client:  BearerClient(token, s.transport),
		logger:  s.logger,
	}, nil
}

// Fetch calls endpoint and returns the decoded JSON body as generic
// values (maps, slices, strings, float64, bool or nil).
func (f *Fetcher) Fetch(ctx context.Context, endpoint, method string, body any) (any, error) {
	var out any
	if err := f.Do(ctx, endpoint, method, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchJSON calls endpoint and decodes the JSON body into a T
func FetchJSON[T any](ctx context.Context, f *Fetcher, endpoint, method string, body any) (T, error) {
	var out T
	err := f.Do(ctx, endpoint, method, body, &out)
	return out, err
}

// Do sends one request and decodes the response into out. A non-nil
// body is sent as JSON. Transport failures, non-2xx statuses and
// malformed JSON are all returned as errors. An empty 2xx body leaves
// out untouched.
func (f *Fetcher) Do(ctx context.Context, endpoint, method string, body, out any) error {
	req, err := f.newRequest(ctx, endpoint, method, body)
	if err != nil {
		return err
	}

	f.logger.Debug("Sending Web API request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()))

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, endpoint, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	f.logger.Debug("Received Web API response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %w", req.Method, endpoint, newAPIError(resp.StatusCode, data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	return nil
}

func (f *Fetcher) newRequest(ctx context.Context, endpoint, method string, body any) (*http.Request, error) {
	endpoint = strings.TrimPrefix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodGet
	}
	if !allowedMethods[method] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
