package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client is a thin JSON client over net/http. Every call takes a context;
// no timeout is applied beyond what the context carries.
type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   http.DefaultClient,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the response body into out.
// Pass nil out to discard the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	return c.do(req, out)
}

// Post encodes body as JSON and decodes the response into out (nil to discard).
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	u := c.base + path

	buf, err := json.Marshal(body)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(buf))
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Delete issues a DELETE and discards the response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	u := c.base + path

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	return c.do(req, nil)
}

// GetRaw issues a GET and returns the raw body for callers that need to
// inspect the shape before decoding.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) do(req *http.Request, out any) error {
	u := req.URL.String()

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("request failed", slog.String("url", u), slog.Any("err", err))
		return &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: u, Code: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{URL: u, Err: err}
	}
	return nil
}
