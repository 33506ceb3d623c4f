// Package gemini talks to the generateContent endpoint of the Gemini API,
// directly over REST or through Vertex AI.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

var (
	ErrNoAPIKey    = errors.New("apiKey required")
	ErrNoCandidate = errors.New("upstream response has no candidate text")
)

// Client calls models/{model}:generateContent with an API key
type Client struct {
	http    *http.Client
	baseURL *url.URL
	apiKey  string
	model   string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil && raw != "" {
			c.baseURL = u
		}
	}
}
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// New returns a client for apiKey. An empty key is an error so callers
// never reach the network without a credential.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http:    http.DefaultClient,
		baseURL: u,
		apiKey:  apiKey,
		model:   DefaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) endpoint() string {
	u := *c.baseURL
	u.Path = path.Join("/", u.Path, "v1beta", "models", c.model+":generateContent")
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// GenerateContent sends system and contents and returns the first
// candidate's first text part. A non-2xx reply becomes an error carrying
// the raw response body.
func (c *Client) GenerateContent(ctx context.Context, system string, contents []Content) (string, error) {
	body, err := json.Marshal(Request{
		SystemInstruction: &Content{Parts: []Part{{Text: system}}},
		Contents:          contents,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// the url carries the key; report the failure without it
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return "", fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	text, ok := out.FirstText()
	if !ok {
		return "", ErrNoCandidate
	}
	return text, nil
}

// APIError is a non-2xx reply from the upstream
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return "API 연동 오류: " + e.Body
}
