// ABOUTME: Create inputs and patch types for the mutation service
// ABOUTME: Patch fields are pointers so absent and zero-valued are distinct

package blog

// NewAuthor is the input for CreateAuthor.
type NewAuthor struct {
	Name  string
	Email string
	Age   *int
}

// NewPost is the input for CreatePost.
type NewPost struct {
	Title     string
	Body      string
	Published bool
	AuthorID  string
}

// NewComment is the input for CreateComment.
type NewComment struct {
	Text     string
	AuthorID string
	PostID   string
}

// AuthorPatch is a partial update for an author. Nil fields are left
// untouched. ClearAge removes the optional age and wins over Age.
type AuthorPatch struct {
	Name     *string
	Email    *string
	Age      *int
	ClearAge bool
}

// PostPatch is a partial update for a post. Nil fields are left untouched.
// A non-nil AuthorID is re-validated against the author collection.
type PostPatch struct {
	Title     *string
	Body      *string
	Published *bool
	AuthorID  *string
}

// CommentPatch is a partial update for a comment. Only the text is mutable.
type CommentPatch struct {
	Text *string
}
