package prototype

import (
	"fmt"
	"time"
)

// Cloner is the prototype contract: any template that can produce a deep,
// storage-independent copy of itself.
type Cloner interface {
	Clone() *JobConfig
}

// JobConfig is a reusable job configuration template.
//
// Name identifies the job and is set at construction; callers treat it as
// immutable. Metadata is a free-form bag of values (scalars, nested maps,
// slices) that callers are expected to mutate on their own copies.
type JobConfig struct {
	Name     string         `json:"name" yaml:"name"`
	Retries  int            `json:"retries" yaml:"retries"`
	Timeout  time.Duration  `json:"timeout" yaml:"timeout"`
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
}

// NewJobConfig creates a fully-specified job configuration template.
func NewJobConfig(name string, retries int, timeout time.Duration, metadata map[string]any) *JobConfig {
	return &JobConfig{
		Name:     name,
		Retries:  retries,
		Timeout:  timeout,
		Metadata: metadata,
	}
}

// Clone returns a deep copy of the configuration. The copy's Metadata is
// backed by freshly allocated storage, recursively, so mutating the clone
// never alters the source and vice versa.
func (c *JobConfig) Clone() *JobConfig {
	if c == nil {
		return nil
	}
	return &JobConfig{
		Name:     c.Name,
		Retries:  c.Retries,
		Timeout:  c.Timeout,
		Metadata: cloneMetadata(c.Metadata),
	}
}

// String renders the configuration for demo output.
func (c *JobConfig) String() string {
	return fmt.Sprintf("JobConfig(name=%q, retries=%d, timeout=%s, metadata=%v)",
		c.Name, c.Retries, c.Timeout, c.Metadata)
}

var _ Cloner = (*JobConfig)(nil)
