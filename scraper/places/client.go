package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client issues GET requests against the Places API host.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client rooted at baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Endpoint builds the URL for an API path such as "nearbysearch/json".
func (c *Client) Endpoint(path string, params url.Values) string {
	return c.baseURL + "/" + path + "?" + params.Encode()
}

// Get performs a single blocking GET and returns the full body. Failures to
// get a response are *TransportError; a non-2xx status is *APIError.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: redact(rawURL), Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: redact(rawURL), Err: fmt.Errorf("reading response body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{HTTPStatus: resp.StatusCode, Message: truncate(string(data), 200)}
	}
	return data, nil
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// full URL including the API key.
func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}

// redact hides the key query parameter so URLs are safe to log.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
