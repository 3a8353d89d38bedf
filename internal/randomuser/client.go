// Package randomuser is a small client for the randomuser.me profile generator.
//
// One call, FetchProfiles, asks the endpoint for N profiles and returns them in
// response order. Every failure (transport, status, body) comes back as a
// *FetchError; nothing is retried.
package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public endpoint used when no base URL is configured.
const DefaultBaseURL = "https://randomuser.me/api"

// DefaultUserAgent identifies the client to the endpoint.
const DefaultUserAgent = "userdeck/1.0"

// maxBodyBytes bounds a response body. The endpoint caps a single request at
// 5000 results, which fits comfortably.
const maxBodyBytes = 16 << 20

// Fetcher is the behaviour the browser needs from a profile source.
type Fetcher interface {
	FetchProfiles(ctx context.Context, count int) ([]Profile, error)
}

// Info is the endpoint's metadata block.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

type response struct {
	Results []Profile `json:"results"`
	Info    *Info     `json:"info,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Client fetches profiles from a single base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client for baseURL. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		MaxIdleConns:           4,
		MaxIdleConnsPerHost:    4,
		IdleConnTimeout:        30 * time.Second,
		ForceAttemptHTTP2:      true,
		MaxResponseHeaderBytes: 1 << 20,
		ExpectContinueTimeout:  1 * time.Second,
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Transport: transport},
		userAgent:  DefaultUserAgent,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured endpoint base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the client's transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FetchProfiles requests count profiles. The count is sent as-is; zero,
// negative and very large values are left for the endpoint to interpret.
// A body without a results field yields an empty, non-nil slice.
func (c *Client) FetchProfiles(ctx context.Context, count int) ([]Profile, error) {
	requestID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", requestID), zap.Int("count", count))

	endpoint, err := c.endpointURL(count)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, RequestID: requestID, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, RequestID: requestID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	log.Debug("requesting profiles", zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{
			Kind:       FailureStatus,
			RequestID:  requestID,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &FetchError{Kind: FailureDecode, RequestID: requestID, StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) > maxBodyBytes {
		return nil, &FetchError{
			Kind:       FailureDecode,
			RequestID:  requestID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", maxBodyBytes),
		}
	}

	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &FetchError{Kind: FailureDecode, RequestID: requestID, StatusCode: resp.StatusCode, Err: err}
	}
	if decoded.Error != "" {
		return nil, &FetchError{Kind: FailureAPI, RequestID: requestID, StatusCode: resp.StatusCode, Err: errors.New(decoded.Error)}
	}

	profiles := decoded.Results
	if profiles == nil {
		profiles = []Profile{}
	}

	fields := []zap.Field{
		zap.Int("received", len(profiles)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if decoded.Info != nil {
		fields = append(fields, zap.String("seed", decoded.Info.Seed), zap.String("api_version", decoded.Info.Version))
	}
	log.Debug("profiles received", fields...)

	return profiles, nil
}

// endpointURL builds "<base>/?results=<count>", keeping any query already
// present on the base URL.
func (c *Client) endpointURL(count int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", c.baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", c.baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/"

	q := u.Query()
	q.Set("results", strconv.Itoa(count))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
