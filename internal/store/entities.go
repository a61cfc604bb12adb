// ABOUTME: Entity kinds and record types for authors, posts, and comments
// ABOUTME: Records are plain values; relationships are derived, never stored

package store

// Kind identifies one of the three entity collections.
type Kind string

// Entity kinds.
const (
	KindAuthor  Kind = "author"
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Author is a blog author. Email is unique across the author collection.
type Author struct {
	ID    string `yaml:"id" toml:"id" json:"id"`
	Name  string `yaml:"name" toml:"name" json:"name"`
	Age   *int   `yaml:"age" toml:"age" json:"age,omitempty"`
	Email string `yaml:"email" toml:"email" json:"email"`
}

// Post is a blog post. AuthorID must reference an existing author.
type Post struct {
	ID        string `yaml:"id" toml:"id" json:"id"`
	Title     string `yaml:"title" toml:"title" json:"title"`
	Body      string `yaml:"body" toml:"body" json:"body"`
	Published bool   `yaml:"published" toml:"published" json:"published"`
	AuthorID  string `yaml:"author" toml:"author" json:"authorId"`
}

// Comment is a comment on a post. AuthorID must reference an existing author
// and PostID must reference a post that was published when the comment was
// created. Unpublishing a post later does not invalidate its comments.
type Comment struct {
	ID       string `yaml:"id" toml:"id" json:"id"`
	Text     string `yaml:"text" toml:"text" json:"text"`
	AuthorID string `yaml:"author" toml:"author" json:"authorId"`
	PostID   string `yaml:"post" toml:"post" json:"postId"`
}
