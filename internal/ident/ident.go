// ABOUTME: Process-unique identifier generation for all entity kinds
// ABOUTME: Authors, posts, and comments share a single identifier namespace

package ident

import "github.com/google/uuid"

// Generator produces identifiers that are unique across all entity kinds
// for the lifetime of the process. Identifiers are never reused.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns a fresh identifier. It always succeeds.
func (g *Generator) Next() string {
	return uuid.NewString()
}
