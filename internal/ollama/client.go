// Package ollama talks to the Ollama daemon's HTTP API.
package ollama

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mwiater/ollamatool/internal/appconfig"
	"github.com/mwiater/ollamatool/internal/logging"
)

// Paths served by the daemon.
const (
	PathStatus        = ""
	PathRunningModels = "/models/running"
	PathTags          = "/api/tags"
)

// maxDrainBytes caps how much of a discarded error body is read so the
// connection can be reused.
const maxDrainBytes = 64 << 10

// Outcome is a successful (2xx) response. The caller must close Body.
type Outcome struct {
	URL        string
	StatusCode int
	Body       io.ReadCloser
}

// Close releases the response body.
func (o *Outcome) Close() error {
	if o == nil || o.Body == nil {
		return nil
	}
	return o.Body.Close()
}

// Client issues single GET requests against one daemon.
type Client struct {
	baseURL        string
	client         *http.Client
	requestTimeout time.Duration
}

// NewClient builds a client for the daemon described by cfg.
func NewClient(cfg appconfig.Config) *Client {
	timeout := cfg.RequestTimeout()
	return &Client{
		baseURL:        cfg.BaseURL(),
		client:         &http.Client{Timeout: timeout},
		requestTimeout: timeout,
	}
}

// Fetch performs exactly one GET of baseURL+path. Transport failures yield a
// *ConnectionError and non-2xx responses a *HTTPStatusError; in both cases
// nothing is left open.
func (c *Client) Fetch(ctx context.Context, path string) (*Outcome, error) {
	url := c.baseURL + path
	cancel := context.CancelFunc(func() {})
	if c.requestTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, &ConnectionError{URL: url, Err: err}
	}
	outcome, err := c.do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	// the timeout also bounds the body read, so it is released on Close
	outcome.Body = &cancelOnClose{ReadCloser: outcome.Body, cancel: cancel}
	return outcome, nil
}

func (c *Client) do(req *http.Request) (*Outcome, error) {
	url := req.URL.String()
	logging.Debug("GET %s", url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: url, Err: err}
	}
	logging.Debug("GET %s -> %s", url, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		resp.Body.Close()
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return &Outcome{URL: url, StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
