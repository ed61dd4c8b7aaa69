// Package dhan implements an authenticated client for the Dhan v2 REST API.
// Every method performs exactly one HTTP round trip; there is no retry,
// backoff or caching layer.
package dhan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Dhan v2 API endpoint.
const DefaultBaseURL = "https://api.dhan.co/v2"

// Config holds the immutable settings for a Client. Credentials are resolved
// once at process start and never mutated afterwards.
type Config struct {
	BaseURL     string
	ClientID    string
	AccessToken string
	Timeout     time.Duration
	// HTTPClient overrides the transport, used by tests.
	HTTPClient *http.Client
}

// Client issues authenticated requests against the Dhan API.
type Client struct {
	baseURL     string
	clientID    string
	accessToken string
	http        *http.Client
	log         zerolog.Logger
}

// NewClient builds a Client from the given configuration.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.AccessToken == "" {
		return nil, &APIError{Kind: KindConfig, Message: "client id and access token are required"}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:     baseURL,
		clientID:    cfg.ClientID,
		accessToken: cfg.AccessToken,
		http:        httpClient,
		log:         log,
	}, nil
}

// ClientID returns the account identifier the client injects into requests.
func (c *Client) ClientID() string { return c.clientID }

type requestOpts struct {
	query        url.Values
	clientIDHead bool // market feed endpoints want a client-id header
}

// do performs one round trip and decodes the response body into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}, opts requestOpts) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Message: fmt.Sprintf("encoding request: %v", err), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	fullURL := c.baseURL + endpoint
	if len(opts.query) > 0 {
		fullURL += "?" + opts.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access-token", c.accessToken)
	if opts.clientIDHead {
		req.Header.Set("client-id", c.clientID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("method", method).Str("endpoint", endpoint).Err(err).Msg("request failed")
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Kind: KindHTTP, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope errorEnvelope
		if json.Unmarshal(raw, &envelope) == nil && envelope.ErrorMessage != "" {
			apiErr.ErrorCode = envelope.ErrorCode
			apiErr.Message = envelope.ErrorMessage
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindDecode, Message: err.Error(), Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, requestOpts{query: query})
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, requestOpts{})
}

func (c *Client) put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, requestOpts{})
}

func (c *Client) delete(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out, requestOpts{})
}

// postFeed is post with the extra client-id header market feed endpoints need.
func (c *Client) postFeed(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, requestOpts{clientIDHead: true})
}
