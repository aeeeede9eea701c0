package builder

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAccumulatesFields(t *testing.T) {
	b := NewRequestBuilder()
	b.SetURL("https://example.com")
	b.SetMethod(http.MethodGet)
	b.SetTimeout(10 * time.Second)
	b.AddHeader("Authorization", "Bearer 1234567890")

	req := b.Request()
	assert.Equal(t, "https://example.com", req.URL)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, 10*time.Second, req.Timeout)
	assert.Equal(t, "Bearer 1234567890", req.Headers["Authorization"])
	assert.Nil(t, req.Body)
}

func TestResetStartsFresh(t *testing.T) {
	b := NewRequestBuilder()
	b.SetURL("https://example.com")
	b.AddHeader("X-Trace", "abc")
	stale := b.Request()

	b.Reset()
	fresh := b.Request()

	assert.NotSame(t, stale, fresh)
	assert.Empty(t, fresh.URL)
	assert.Empty(t, fresh.Headers)
	// The previously returned request is untouched by the reset.
	assert.Equal(t, "https://example.com", stale.URL)
}

func TestDirectorRecipes(t *testing.T) {
	b := NewRequestBuilder()
	d := NewDirector(b)

	d.BuildGet()
	get := b.Request()
	assert.Equal(t, http.MethodGet, get.Method)
	assert.Equal(t, "https://example.com", get.URL)
	assert.Nil(t, get.Body)
	assert.Equal(t, 10*time.Second, get.Timeout)

	d.BuildPost()
	post := b.Request()
	assert.Equal(t, http.MethodPost, post.Method)
	assert.Equal(t, map[string]any{"key": "value"}, post.Body)
	assert.Equal(t, "Bearer 1234567890", post.Headers["Authorization"])

	d.BuildPut()
	put := b.Request()
	assert.Equal(t, http.MethodPut, put.Method)
	assert.Equal(t, map[string]any{"key": "value"}, put.Body)
}

func TestChangeBuilder(t *testing.T) {
	first := NewRequestBuilder()
	second := NewRequestBuilder()
	d := NewDirector(first)

	d.BuildGet()
	d.ChangeBuilder(second)
	d.BuildPost()

	assert.Equal(t, http.MethodGet, first.Request().Method)
	assert.Equal(t, http.MethodPost, second.Request().Method)
}

func TestHTTPRequestMaterialization(t *testing.T) {
	b := NewRequestBuilder()
	NewDirector(b).BuildPost()

	req, err := b.Request().HTTPRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://example.com", req.URL.String())
	assert.Equal(t, "Bearer 1234567890", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, string(body))
}

func TestHTTPRequestInvalidMethod(t *testing.T) {
	b := NewRequestBuilder()
	b.SetURL("https://example.com")
	b.SetMethod("B A D")

	_, err := b.Request().HTTPRequest(context.Background())
	assert.Error(t, err)
}
