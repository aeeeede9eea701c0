package prototype

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// manifest is the on-disk template catalogue:
//
//	templates:
//	  fast:
//	    name: fast-job
//	    retries: 1
//	    timeout: 5
//	    metadata:
//	      priority: high
//
// Timeouts are given in whole seconds.
type manifest struct {
	Templates map[string]manifestTemplate `yaml:"templates"`
}

type manifestTemplate struct {
	Name     string         `yaml:"name"`
	Retries  int            `yaml:"retries"`
	Timeout  int            `yaml:"timeout"`
	Metadata map[string]any `yaml:"metadata"`
}

// ParseManifest reads a YAML template manifest and returns the templates it
// declares, keyed the way they would be registered.
func ParseManifest(r io.Reader) (map[string]*JobConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("prototype: reading manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	out := make(map[string]*JobConfig, len(m.Templates))
	for key, t := range m.Templates {
		out[key] = NewJobConfig(t.Name, t.Retries, time.Duration(t.Timeout)*time.Second, normalizeMetadata(t.Metadata))
	}
	return out, nil
}

// LoadManifest parses the manifest at path and registers every template it
// declares, overwriting existing entries with the same keys.
func (r *Registry) LoadManifest(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("prototype: opening manifest: %w", err)
	}
	defer f.Close()

	templates, err := ParseManifest(f)
	if err != nil {
		return err
	}
	for key, template := range templates {
		r.Register(key, template)
	}
	return nil
}

// normalizeMetadata rewrites the map[any]any nodes yaml can produce for
// nested mappings into map[string]any, so manifest-loaded metadata clones
// and compares like hand-built metadata.
func normalizeMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return normalizeMetadata(tv)
	case map[any]any:
		out := make(map[string]any, len(tv))
		for k, val := range tv {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}
