// Package prototype implements the prototype pattern as a template registry
// for job configurations.
//
// A Registry maps string keys to canonical JobConfig templates. Callers
// register fully-specified templates once and retrieve independent copies by
// key. Get always returns a deep clone of the canonical instance, never the
// stored original, so mutations made by one caller can never leak into the
// stored template or into copies handed to other callers.
//
// Core behavior:
//   - Register stores a template under a key, silently replacing any
//     previous template for that key
//   - Get returns a deep clone of the stored template, or ErrNotFound
//   - JobConfig.Clone produces a storage-independent copy; nested maps and
//     slices inside Metadata are copied recursively
//
// Templates can also be loaded in bulk from a YAML manifest, and the
// registry records hit/miss counters through OpenTelemetry.
package prototype
