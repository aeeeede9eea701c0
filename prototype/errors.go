package prototype

import "errors"

// Sentinel errors for registry and manifest operations. Callers should
// match with errors.Is.
var (
	// ErrNotFound is returned by Get when no template is registered under
	// the requested key. The registry never substitutes a default or
	// partially-initialized template on a miss.
	ErrNotFound = errors.New("prototype: template not found")

	// ErrInvalidManifest is returned when a template manifest cannot be
	// parsed.
	ErrInvalidManifest = errors.New("prototype: manifest is malformed")
)
