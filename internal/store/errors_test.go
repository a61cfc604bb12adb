// ABOUTME: Tests for the typed failure values
// ABOUTME: Verifies messages and errors.As matching through wrapping

package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "author a1 not found", (&NotFoundError{Kind: KindAuthor, ID: "a1"}).Error())
	assert.Equal(t, "author email taken", (&ConflictError{Kind: KindAuthor, Field: "email", Value: "ann@x.io"}).Error())
	assert.Equal(t, "invalid author", (&ValidationError{Kind: KindPost, Field: "author", Reason: "invalid author"}).Error())
}

func TestErrors_MatchThroughWrapping(t *testing.T) {
	nf := fmt.Errorf("deleting: %w", &NotFoundError{Kind: KindPost, ID: "p1"})
	require.True(t, IsNotFound(nf))
	assert.False(t, IsConflict(nf))
	assert.False(t, IsValidation(nf))

	conflict := fmt.Errorf("creating: %w", &ConflictError{Kind: KindAuthor, Field: "email"})
	require.True(t, IsConflict(conflict))

	invalid := fmt.Errorf("creating: %w", &ValidationError{Kind: KindComment, Field: "post", Reason: "invalid or unpublished post"})
	require.True(t, IsValidation(invalid))
}
