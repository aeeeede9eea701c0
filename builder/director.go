package builder

import (
	"net/http"
	"time"
)

// Director drives a Builder through the standard request recipes.
type Director struct {
	builder Builder
}

// NewDirector creates a director for the given builder.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// ChangeBuilder swaps the builder the director drives.
func (d *Director) ChangeBuilder(b Builder) {
	d.builder = b
}

// BuildGet assembles a plain GET against example.com.
func (d *Director) BuildGet() {
	d.builder.Reset()
	d.builder.SetURL("https://example.com")
	d.builder.SetMethod(http.MethodGet)
	d.builder.SetTimeout(10 * time.Second)
}

// BuildPost assembles an authorized POST with a sample body.
func (d *Director) BuildPost() {
	d.builder.Reset()
	d.builder.SetURL("https://example.com")
	d.builder.SetMethod(http.MethodPost)
	d.builder.SetBody(map[string]any{"key": "value"})
	d.builder.SetTimeout(10 * time.Second)
	d.builder.AddHeader("Authorization", "Bearer 1234567890")
}

// BuildPut assembles an authorized PUT with a sample body.
func (d *Director) BuildPut() {
	d.builder.Reset()
	d.builder.SetURL("https://example.com")
	d.builder.SetMethod(http.MethodPut)
	d.builder.SetBody(map[string]any{"key": "value"})
	d.builder.SetTimeout(10 * time.Second)
	d.builder.AddHeader("Authorization", "Bearer 1234567890")
}
