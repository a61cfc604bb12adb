// ABOUTME: Tests for delete cascades across authors, posts, and comments
// ABOUTME: Covers completeness, minimality, and referential integrity afterwards

package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/internal/store"
)

// requireIntegrity asserts that every committed post and comment still
// resolves to existing entities.
func requireIntegrity(t *testing.T, s *Service) {
	t.Helper()
	ctx := context.Background()
	for _, p := range s.QueryPosts(ctx, "") {
		_, err := s.AuthorOfPost(ctx, p)
		require.NoError(t, err, "post %s has a dangling author", p.ID)
	}
	for _, c := range s.Comments(ctx) {
		_, err := s.AuthorOfComment(ctx, c)
		require.NoError(t, err, "comment %s has a dangling author", c.ID)
		_, err = s.PostOfComment(ctx, c)
		require.NoError(t, err, "comment %s has a dangling post", c.ID)
	}
}

func TestService_DeleteAuthor_CascadeCompleteness(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ann := createTestAuthor(t, s, "Ann", "ann@x.io")
	ben := createTestAuthor(t, s, "Ben", "ben@x.io")

	p1 := createTestPost(t, s, ann.ID, true)
	p2 := createTestPost(t, s, ann.ID, true)
	benPost := createTestPost(t, s, ben.ID, true)

	createTestComment(t, s, ben.ID, p1.ID) // on Ann's post, by Ben
	createTestComment(t, s, ann.ID, p2.ID) // on Ann's post, by Ann
	createTestComment(t, s, ann.ID, benPost.ID) // by Ann, on Ben's post

	removed, err := s.DeleteAuthor(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, removed.ID)
	assert.Equal(t, "ann@x.io", removed.Email)

	// No post by Ann and no comment referencing Ann, p1, or p2 remains.
	for _, p := range s.QueryPosts(ctx, "") {
		assert.NotEqual(t, ann.ID, p.AuthorID)
	}
	for _, c := range s.Comments(ctx) {
		assert.NotEqual(t, ann.ID, c.AuthorID)
		assert.NotEqual(t, p1.ID, c.PostID)
		assert.NotEqual(t, p2.ID, c.PostID)
	}
	requireIntegrity(t, s)
}

func TestService_DeleteAuthor_CascadeMinimality(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ann := createTestAuthor(t, s, "Ann", "ann@x.io")
	ben := createTestAuthor(t, s, "Ben", "ben@x.io")

	createTestPost(t, s, ann.ID, true)
	benPost := createTestPost(t, s, ben.ID, true)
	benComment := createTestComment(t, s, ben.ID, benPost.ID)

	_, err := s.DeleteAuthor(ctx, ann.ID)
	require.NoError(t, err)

	// Ben's world is intact.
	_, err = s.Author(ctx, ben.ID)
	require.NoError(t, err)
	_, err = s.Post(ctx, benPost.ID)
	require.NoError(t, err)
	_, err = s.Comment(ctx, benComment.ID)
	require.NoError(t, err)
	requireIntegrity(t, s)
}

func TestService_DeletePost_CascadeComments(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ann := createTestAuthor(t, s, "Ann", "ann@x.io")
	p1 := createTestPost(t, s, ann.ID, true)
	p2 := createTestPost(t, s, ann.ID, true)

	createTestComment(t, s, ann.ID, p1.ID)
	createTestComment(t, s, ann.ID, p1.ID)
	keep := createTestComment(t, s, ann.ID, p2.ID)

	removed, err := s.DeletePost(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, removed.ID)

	comments := s.Comments(ctx)
	require.Len(t, comments, 1)
	assert.Equal(t, keep.ID, comments[0].ID)
	requireIntegrity(t, s)
}

// The scenario from the drawing board: create, conflict, comment, unpublish,
// gate, cascade.
func TestService_EndToEndScenario(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ann, err := s.CreateAuthor(ctx, NewAuthor{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)
	require.NotEmpty(t, ann.ID)

	_, err = s.CreateAuthor(ctx, NewAuthor{Name: "Ann Again", Email: "ann@x.io"})
	require.True(t, store.IsConflict(err))

	post, err := s.CreatePost(ctx, NewPost{Title: "T", Body: "B", Published: true, AuthorID: ann.ID})
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, NewComment{Text: "hi", AuthorID: ann.ID, PostID: post.ID})
	require.NoError(t, err)

	_, err = s.UpdatePost(ctx, post.ID, PostPatch{Published: boolPtr(false)})
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, NewComment{Text: "again", AuthorID: ann.ID, PostID: post.ID})
	require.True(t, store.IsValidation(err))

	_, err = s.DeleteAuthor(ctx, ann.ID)
	require.NoError(t, err)

	assert.Empty(t, s.QueryAuthors(ctx, ""))
	assert.Empty(t, s.QueryPosts(ctx, ""))
	assert.Empty(t, s.Comments(ctx))
}
