package builder

import "time"

// Builder assembles a Request field by field. Reset starts a fresh request;
// the other steps may be called in any order.
type Builder interface {
	Reset()
	SetURL(url string)
	SetMethod(method string)
	SetBody(body map[string]any)
	SetTimeout(timeout time.Duration)
	AddHeader(key, value string)
}

// RequestBuilder is the concrete Builder producing Request values.
type RequestBuilder struct {
	request *Request
}

// NewRequestBuilder creates a builder holding a fresh request.
func NewRequestBuilder() *RequestBuilder {
	b := &RequestBuilder{}
	b.Reset()
	return b
}

// Reset discards the request under construction and starts a new one.
func (b *RequestBuilder) Reset() {
	b.request = &Request{Headers: make(map[string]string)}
}

// SetURL sets the target URL.
func (b *RequestBuilder) SetURL(url string) { b.request.URL = url }

// SetMethod sets the HTTP method.
func (b *RequestBuilder) SetMethod(method string) { b.request.Method = method }

// SetBody sets the request body.
func (b *RequestBuilder) SetBody(body map[string]any) { b.request.Body = body }

// SetTimeout sets the request timeout.
func (b *RequestBuilder) SetTimeout(timeout time.Duration) { b.request.Timeout = timeout }

// AddHeader adds one header to the request.
func (b *RequestBuilder) AddHeader(key, value string) { b.request.Headers[key] = value }

// Request returns the request assembled so far.
func (b *RequestBuilder) Request() *Request { return b.request }

var _ Builder = (*RequestBuilder)(nil)
