// ABOUTME: Read surface and relationship resolution over current store state
// ABOUTME: Related entities are recomputed on every call, never cached

package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkwellhq/inkwell/internal/store"
)

// ErrBrokenReference reports a dangling foreign key observed at read time.
// It cannot occur while the integrity invariants hold, so it is an internal
// consistency failure, not a normal not-found.
var ErrBrokenReference = errors.New("broken entity reference")

// Author returns a single author by id.
func (s *Service) Author(ctx context.Context, id string) (store.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.store.GetAuthor(id)
	if !ok {
		return store.Author{}, &store.NotFoundError{Kind: store.KindAuthor, ID: id}
	}
	return a, nil
}

// Post returns a single post by id.
func (s *Service) Post(ctx context.Context, id string) (store.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.store.GetPost(id)
	if !ok {
		return store.Post{}, &store.NotFoundError{Kind: store.KindPost, ID: id}
	}
	return p, nil
}

// Comment returns a single comment by id.
func (s *Service) Comment(ctx context.Context, id string) (store.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.store.GetComment(id)
	if !ok {
		return store.Comment{}, &store.NotFoundError{Kind: store.KindComment, ID: id}
	}
	return c, nil
}

// QueryAuthors returns authors whose name contains the substring,
// case-insensitively. An empty substring returns all authors.
func (s *Service) QueryAuthors(ctx context.Context, substring string) []store.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := s.store.ListAuthors()
	if substring == "" {
		return authors
	}

	needle := strings.ToLower(substring)
	matched := authors[:0]
	for _, a := range authors {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			matched = append(matched, a)
		}
	}
	return matched
}

// QueryPosts returns posts whose title or body contains the substring,
// case-insensitively. An empty substring returns all posts.
func (s *Service) QueryPosts(ctx context.Context, substring string) []store.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := s.store.ListPosts()
	if substring == "" {
		return posts
	}

	needle := strings.ToLower(substring)
	matched := posts[:0]
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Body), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Comments returns all comments in insertion order.
func (s *Service) Comments(ctx context.Context) []store.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.ListComments()
}

// AuthorOfPost resolves a post's author.
func (s *Service) AuthorOfPost(ctx context.Context, p store.Post) (store.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.store.GetAuthor(p.AuthorID)
	if !ok {
		return store.Author{}, fmt.Errorf("%w: post %s references author %s", ErrBrokenReference, p.ID, p.AuthorID)
	}
	return a, nil
}

// AuthorOfComment resolves a comment's author.
func (s *Service) AuthorOfComment(ctx context.Context, c store.Comment) (store.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.store.GetAuthor(c.AuthorID)
	if !ok {
		return store.Author{}, fmt.Errorf("%w: comment %s references author %s", ErrBrokenReference, c.ID, c.AuthorID)
	}
	return a, nil
}

// PostOfComment resolves the post a comment is attached to.
func (s *Service) PostOfComment(ctx context.Context, c store.Comment) (store.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.store.GetPost(c.PostID)
	if !ok {
		return store.Post{}, fmt.Errorf("%w: comment %s references post %s", ErrBrokenReference, c.ID, c.PostID)
	}
	return p, nil
}

// PostsOfAuthor returns the author's posts in store listing order.
func (s *Service) PostsOfAuthor(ctx context.Context, authorID string) []store.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []store.Post
	for _, p := range s.store.ListPosts() {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	return posts
}

// CommentsOfAuthor returns the author's comments in store listing order.
func (s *Service) CommentsOfAuthor(ctx context.Context, authorID string) []store.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []store.Comment
	for _, c := range s.store.ListComments() {
		if c.AuthorID == authorID {
			comments = append(comments, c)
		}
	}
	return comments
}

// CommentsOfPost returns a post's comments in store listing order.
func (s *Service) CommentsOfPost(ctx context.Context, postID string) []store.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []store.Comment
	for _, c := range s.store.ListComments() {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments
}
