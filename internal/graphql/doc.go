// Package graphql exposes the blog core as a GraphQL API.
//
// # Schema
//
// Queries:
//
//   - authors(query): authors, optionally filtered by a case-insensitive
//     name substring
//   - posts(query): posts, optionally filtered by a substring over title
//     or body
//   - comments: all comments
//   - greeting(name, position), add(a, b): playground demo fields
//
// Mutations mirror the blog service one to one: createAuthor, updateAuthor,
// deleteAuthor, createPost, updatePost, deletePost, createComment,
// updateComment, deleteComment. Update inputs are patches: only the fields
// present in the request change. UpdateAuthorInput carries an explicit
// clearAge flag for removing the optional age, since an absent field means
// "leave untouched".
//
// Relationship fields (Author.posts, Author.comments, Post.author,
// Post.comments, Comment.author, Comment.post) resolve through the blog
// service per field access, so they always reflect current store state.
//
// # Serving
//
// NewHandler wraps the schema in an HTTP handler with GraphiQL enabled.
package graphql
