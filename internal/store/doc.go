// Package store provides the in-memory entity collections for inkwell.
//
// # Architecture
//
// The store owns three ordered collections, one per entity kind:
//
//   - Author: blog authors with a unique email
//   - Post: posts referencing an author
//   - Comment: comments referencing an author and a post
//
// Each collection is keyed by identifier and preserves insertion order, so
// listing is deterministic. The store performs no validation and no locking;
// business rules and mutual exclusion belong to the blog service, which is
// the single logical owner of a Store instance.
//
// # Error Handling
//
// The package defines the closed set of failure kinds surfaced by mutations:
//
//   - NotFoundError: the target id does not exist
//   - ConflictError: a uniqueness constraint would be violated
//   - ValidationError: a foreign-key or business precondition failed
//
// All three carry structured context (entity kind, id, field) and are
// matchable with errors.As.
//
// # Seeding
//
// Seed files (YAML or TOML, selected by extension) describe a fixed starting
// data set. Load parses the file; the blog service applies it with the same
// integrity checks as regular creates.
package store
