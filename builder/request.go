// Package builder implements the builder pattern for assembling HTTP
// request descriptions. A RequestBuilder accumulates fields step by step;
// Director captures common recipes (GET/POST/PUT) so callers don't repeat
// the sequence. The built Request is a value object and is never sent
// anywhere by this package, though it can materialize a *http.Request.
package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Request is an assembled HTTP request description.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    map[string]any
	Timeout time.Duration
}

// String renders the request for demo output.
func (r *Request) String() string {
	return fmt.Sprintf("Request(url=%s, method=%s, headers=%v, body=%v, timeout=%s)",
		r.URL, r.Method, r.Headers, r.Body, r.Timeout)
}

// HTTPRequest materializes the description as a *http.Request with the body
// JSON-encoded. The request is built, not sent.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body *bytes.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("builder: encoding body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("builder: building request: %w", err)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
