// Package blog implements the mutation service and relationship resolver
// over the entity store.
//
// # Architecture
//
// Service is the single owner of a store.Store. It exposes:
//
//   - Mutations: Create/Update/Delete for authors, posts, and comments,
//     with integrity validation and delete cascades
//   - Reads: singleton lookups plus substring queries over authors and posts
//   - Relationship resolution: related entities computed from current store
//     state on every call, never cached
//
// # Integrity Rules
//
// Before committing, each mutation checks the relevant subset of:
//
//   - email uniqueness across authors
//   - author existence for post and comment references
//   - the publish gate: a comment may only be created against a post that is
//     published at creation time
//
// A failed check returns a typed error from the store package and leaves the
// store completely unchanged.
//
// # Cascades
//
// Deleting an author removes the author's posts, all comments on those
// posts, and all comments written by the author. Deleting a post removes its
// comments. Deleting a comment removes only that comment.
//
// # Concurrency
//
// One RWMutex serializes access: every mutation holds the write lock for the
// whole operation including its cascade, and every read holds the read lock.
// No reader can observe a half-applied cascade.
package blog
