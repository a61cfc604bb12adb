// ABOUTME: Ordered in-memory collections keyed by entity id
// ABOUTME: Pure data layer; validation and locking live in the blog service

package store

// collection is an id-keyed map that preserves insertion order for listing.
// One instance serves any entity kind.
type collection[E any] struct {
	order []string
	items map[string]E
}

func newCollection[E any]() collection[E] {
	return collection[E]{items: make(map[string]E)}
}

func (c *collection[E]) list() []E {
	out := make([]E, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[E]) get(id string) (E, bool) {
	e, ok := c.items[id]
	return e, ok
}

func (c *collection[E]) insert(id string, e E) error {
	if _, exists := c.items[id]; exists {
		return ErrDuplicateID
	}
	c.items[id] = e
	c.order = append(c.order, id)
	return nil
}

func (c *collection[E]) remove(id string) (E, bool) {
	e, ok := c.items[id]
	if !ok {
		var zero E
		return zero, false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return e, true
}

func (c *collection[E]) update(id string, mutate func(*E)) (E, bool) {
	e, ok := c.items[id]
	if !ok {
		var zero E
		return zero, false
	}
	mutate(&e)
	c.items[id] = e
	return e, true
}

// Store holds the three entity collections. It performs no validation and is
// not safe for concurrent use on its own; the owning service serializes
// access so that every mutation, including its cascade, is atomic.
type Store struct {
	authors  collection[Author]
	posts    collection[Post]
	comments collection[Comment]
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		authors:  newCollection[Author](),
		posts:    newCollection[Post](),
		comments: newCollection[Comment](),
	}
}

// ListAuthors returns all authors in insertion order.
func (s *Store) ListAuthors() []Author { return s.authors.list() }

// ListPosts returns all posts in insertion order.
func (s *Store) ListPosts() []Post { return s.posts.list() }

// ListComments returns all comments in insertion order.
func (s *Store) ListComments() []Comment { return s.comments.list() }

// GetAuthor returns the author with the given id.
func (s *Store) GetAuthor(id string) (Author, bool) { return s.authors.get(id) }

// GetPost returns the post with the given id.
func (s *Store) GetPost(id string) (Post, bool) { return s.posts.get(id) }

// GetComment returns the comment with the given id.
func (s *Store) GetComment(id string) (Comment, bool) { return s.comments.get(id) }

// InsertAuthor adds a new author. Fails with ErrDuplicateID if the id exists.
func (s *Store) InsertAuthor(a Author) error { return s.authors.insert(a.ID, a) }

// InsertPost adds a new post. Fails with ErrDuplicateID if the id exists.
func (s *Store) InsertPost(p Post) error { return s.posts.insert(p.ID, p) }

// InsertComment adds a new comment. Fails with ErrDuplicateID if the id exists.
func (s *Store) InsertComment(c Comment) error { return s.comments.insert(c.ID, c) }

// RemoveAuthor removes and returns the author with the given id.
func (s *Store) RemoveAuthor(id string) (Author, bool) { return s.authors.remove(id) }

// RemovePost removes and returns the post with the given id.
func (s *Store) RemovePost(id string) (Post, bool) { return s.posts.remove(id) }

// RemoveComment removes and returns the comment with the given id.
func (s *Store) RemoveComment(id string) (Comment, bool) { return s.comments.remove(id) }

// UpdateAuthor applies mutate to the stored author and returns the result.
func (s *Store) UpdateAuthor(id string, mutate func(*Author)) (Author, bool) {
	return s.authors.update(id, mutate)
}

// UpdatePost applies mutate to the stored post and returns the result.
func (s *Store) UpdatePost(id string, mutate func(*Post)) (Post, bool) {
	return s.posts.update(id, mutate)
}

// UpdateComment applies mutate to the stored comment and returns the result.
func (s *Store) UpdateComment(id string, mutate func(*Comment)) (Comment, bool) {
	return s.comments.update(id, mutate)
}
