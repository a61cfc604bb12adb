// ABOUTME: Mutation service orchestrating validation, cascades, and commits
// ABOUTME: One write lock covers each whole operation so mutations are atomic

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/inkwellhq/inkwell/internal/ident"
	"github.com/inkwellhq/inkwell/internal/store"
)

// Service owns a Store and applies all mutations to it. It is safe for
// concurrent use; reads and mutations are serialized by a single lock.
type Service struct {
	mu     sync.RWMutex
	store  *store.Store
	ids    *ident.Generator
	logger *slog.Logger
}

// NewService creates a Service over the given store. A nil logger falls back
// to slog.Default().
func NewService(st *store.Store, ids *ident.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		ids:    ids,
		logger: logger,
	}
}

// CreateAuthor creates a new author. Fails with a ConflictError if the email
// is already in use.
func (s *Service) CreateAuthor(ctx context.Context, in NewAuthor) (store.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.emailAvailable(in.Email, "") {
		return store.Author{}, &store.ConflictError{Kind: store.KindAuthor, Field: "email", Value: in.Email}
	}

	author := store.Author{
		ID:    s.ids.Next(),
		Name:  in.Name,
		Age:   in.Age,
		Email: in.Email,
	}
	if err := s.store.InsertAuthor(author); err != nil {
		return store.Author{}, fmt.Errorf("inserting author: %w", err)
	}

	s.logger.Debug("author created", "id", author.ID, "email", author.Email)
	return author, nil
}

// UpdateAuthor applies a partial update to an author. A new email is checked
// for uniqueness against every other author.
func (s *Service) UpdateAuthor(ctx context.Context, id string, patch AuthorPatch) (store.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.GetAuthor(id); !ok {
		return store.Author{}, &store.NotFoundError{Kind: store.KindAuthor, ID: id}
	}
	if patch.Email != nil && !s.emailAvailable(*patch.Email, id) {
		return store.Author{}, &store.ConflictError{Kind: store.KindAuthor, Field: "email", Value: *patch.Email}
	}

	updated, _ := s.store.UpdateAuthor(id, func(a *store.Author) {
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.Email != nil {
			a.Email = *patch.Email
		}
		switch {
		case patch.ClearAge:
			a.Age = nil
		case patch.Age != nil:
			age := *patch.Age
			a.Age = &age
		}
	})

	s.logger.Debug("author updated", "id", id)
	return updated, nil
}

// DeleteAuthor removes an author together with every post they wrote, every
// comment on those posts, and every comment they wrote elsewhere. Returns
// the author as it was before removal.
func (s *Service) DeleteAuthor(ctx context.Context, id string) (store.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.store.GetAuthor(id)
	if !ok {
		return store.Author{}, &store.NotFoundError{Kind: store.KindAuthor, ID: id}
	}

	ownPosts := make(map[string]bool)
	for _, p := range s.store.ListPosts() {
		if p.AuthorID == id {
			ownPosts[p.ID] = true
		}
	}

	var removedComments, removedPosts int
	for _, c := range s.store.ListComments() {
		if c.AuthorID == id || ownPosts[c.PostID] {
			s.store.RemoveComment(c.ID)
			removedComments++
		}
	}
	for postID := range ownPosts {
		s.store.RemovePost(postID)
		removedPosts++
	}
	s.store.RemoveAuthor(id)

	s.logger.Info("author deleted",
		"id", id,
		"cascaded_posts", removedPosts,
		"cascaded_comments", removedComments,
	)
	return author, nil
}

// CreatePost creates a new post. Fails with a ValidationError unless the
// referenced author exists.
func (s *Service) CreatePost(ctx context.Context, in NewPost) (store.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authorExists(in.AuthorID) {
		return store.Post{}, &store.ValidationError{Kind: store.KindPost, Field: "author", Reason: "invalid author"}
	}

	post := store.Post{
		ID:        s.ids.Next(),
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		AuthorID:  in.AuthorID,
	}
	if err := s.store.InsertPost(post); err != nil {
		return store.Post{}, fmt.Errorf("inserting post: %w", err)
	}

	s.logger.Debug("post created", "id", post.ID, "author", post.AuthorID, "published", post.Published)
	return post, nil
}

// UpdatePost applies a partial update to a post. Reassigning the author
// re-validates the reference.
func (s *Service) UpdatePost(ctx context.Context, id string, patch PostPatch) (store.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.GetPost(id); !ok {
		return store.Post{}, &store.NotFoundError{Kind: store.KindPost, ID: id}
	}
	if patch.AuthorID != nil && !s.authorExists(*patch.AuthorID) {
		return store.Post{}, &store.ValidationError{Kind: store.KindPost, Field: "author", Reason: "invalid author"}
	}

	updated, _ := s.store.UpdatePost(id, func(p *store.Post) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Body != nil {
			p.Body = *patch.Body
		}
		if patch.Published != nil {
			p.Published = *patch.Published
		}
		if patch.AuthorID != nil {
			p.AuthorID = *patch.AuthorID
		}
	})

	s.logger.Debug("post updated", "id", id)
	return updated, nil
}

// DeletePost removes a post and every comment attached to it. Returns the
// post as it was before removal.
func (s *Service) DeletePost(ctx context.Context, id string) (store.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.store.GetPost(id)
	if !ok {
		return store.Post{}, &store.NotFoundError{Kind: store.KindPost, ID: id}
	}

	var removedComments int
	for _, c := range s.store.ListComments() {
		if c.PostID == id {
			s.store.RemoveComment(c.ID)
			removedComments++
		}
	}
	s.store.RemovePost(id)

	s.logger.Info("post deleted", "id", id, "cascaded_comments", removedComments)
	return post, nil
}

// CreateComment creates a new comment. The author reference is checked
// first, then the publish gate on the post.
func (s *Service) CreateComment(ctx context.Context, in NewComment) (store.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authorExists(in.AuthorID) {
		return store.Comment{}, &store.ValidationError{Kind: store.KindComment, Field: "author", Reason: "invalid author"}
	}
	if !s.postPublished(in.PostID) {
		return store.Comment{}, &store.ValidationError{Kind: store.KindComment, Field: "post", Reason: "invalid or unpublished post"}
	}

	comment := store.Comment{
		ID:       s.ids.Next(),
		Text:     in.Text,
		AuthorID: in.AuthorID,
		PostID:   in.PostID,
	}
	if err := s.store.InsertComment(comment); err != nil {
		return store.Comment{}, fmt.Errorf("inserting comment: %w", err)
	}

	s.logger.Debug("comment created", "id", comment.ID, "author", comment.AuthorID, "post", comment.PostID)
	return comment, nil
}

// UpdateComment applies a partial update to a comment. Only the text can
// change; the author and post references are immutable.
func (s *Service) UpdateComment(ctx context.Context, id string, patch CommentPatch) (store.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.GetComment(id); !ok {
		return store.Comment{}, &store.NotFoundError{Kind: store.KindComment, ID: id}
	}

	updated, _ := s.store.UpdateComment(id, func(c *store.Comment) {
		if patch.Text != nil {
			c.Text = *patch.Text
		}
	})

	s.logger.Debug("comment updated", "id", id)
	return updated, nil
}

// DeleteComment removes a single comment. No cascade.
func (s *Service) DeleteComment(ctx context.Context, id string) (store.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.store.RemoveComment(id)
	if !ok {
		return store.Comment{}, &store.NotFoundError{Kind: store.KindComment, ID: id}
	}

	s.logger.Debug("comment deleted", "id", id)
	return comment, nil
}

// ApplySeed loads a fixed starting data set, enforcing the same integrity
// rules as regular creates. Entries without an id get one assigned. Meant
// for startup on an empty store; a failure aborts with the store left in
// whatever state the earlier seed entries produced, so callers should treat
// any error as fatal.
func (s *Service) ApplySeed(ctx context.Context, seed *store.Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range seed.Authors {
		if a.ID == "" {
			a.ID = s.ids.Next()
		}
		if !s.emailAvailable(a.Email, a.ID) {
			return &store.ConflictError{Kind: store.KindAuthor, Field: "email", Value: a.Email}
		}
		if err := s.store.InsertAuthor(a); err != nil {
			return fmt.Errorf("seeding author %s: %w", a.ID, err)
		}
	}
	for _, p := range seed.Posts {
		if p.ID == "" {
			p.ID = s.ids.Next()
		}
		if !s.authorExists(p.AuthorID) {
			return &store.ValidationError{Kind: store.KindPost, Field: "author", Reason: "invalid author"}
		}
		if err := s.store.InsertPost(p); err != nil {
			return fmt.Errorf("seeding post %s: %w", p.ID, err)
		}
	}
	for _, c := range seed.Comments {
		if c.ID == "" {
			c.ID = s.ids.Next()
		}
		if !s.authorExists(c.AuthorID) {
			return &store.ValidationError{Kind: store.KindComment, Field: "author", Reason: "invalid author"}
		}
		if !s.postPublished(c.PostID) {
			return &store.ValidationError{Kind: store.KindComment, Field: "post", Reason: "invalid or unpublished post"}
		}
		if err := s.store.InsertComment(c); err != nil {
			return fmt.Errorf("seeding comment %s: %w", c.ID, err)
		}
	}

	s.logger.Info("seed applied",
		"authors", len(seed.Authors),
		"posts", len(seed.Posts),
		"comments", len(seed.Comments),
	)
	return nil
}
