// ABOUTME: Tests for the identifier generator
// ABOUTME: Verifies uniqueness and non-empty output across many draws

package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Next_Unique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := gen.Next()
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "identifier %q issued twice", id)
		seen[id] = true
	}
}
