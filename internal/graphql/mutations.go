// ABOUTME: GraphQL mutation fields mapping inputs and patches to service calls
// ABOUTME: Patch builders distinguish absent arguments from explicit nulls

package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/inkwellhq/inkwell/internal/blog"
)

func mutationFields(svc *blog.Service, authorType, postType, commentType *graphql.Object) graphql.Fields {
	createAuthorInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateAuthorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"age":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	updateAuthorInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateAuthorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"age":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			// clearAge removes the optional age; age and clearAge together
			// favor clearing.
			"clearAge": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
	createPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"body":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"published": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			"author":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})
	updatePostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"body":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"published": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"author":    &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})
	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"text":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"author": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"post":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})
	updateCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"text": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
	dataArgs := func(input *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
		}
	}
	idAndDataArgs := func(input *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
		}
	}

	return graphql.Fields{
		"createAuthor": &graphql.Field{
			Type: graphql.NewNonNull(authorType),
			Args: dataArgs(createAuthorInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				in := blog.NewAuthor{
					Name:  data["name"].(string),
					Email: data["email"].(string),
				}
				if age, ok := data["age"].(int); ok {
					in.Age = &age
				}
				return svc.CreateAuthor(p.Context, in)
			},
		},
		"updateAuthor": &graphql.Field{
			Type: graphql.NewNonNull(authorType),
			Args: idAndDataArgs(updateAuthorInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				var patch blog.AuthorPatch
				if v, ok := data["name"].(string); ok {
					patch.Name = &v
				}
				if v, ok := data["email"].(string); ok {
					patch.Email = &v
				}
				if v, ok := data["age"].(int); ok {
					patch.Age = &v
				}
				if v, ok := data["clearAge"].(bool); ok && v {
					patch.ClearAge = true
				}
				return svc.UpdateAuthor(p.Context, p.Args["id"].(string), patch)
			},
		},
		"deleteAuthor": &graphql.Field{
			Type: graphql.NewNonNull(authorType),
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svc.DeleteAuthor(p.Context, p.Args["id"].(string))
			},
		},
		"createPost": &graphql.Field{
			Type: graphql.NewNonNull(postType),
			Args: dataArgs(createPostInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				return svc.CreatePost(p.Context, blog.NewPost{
					Title:     data["title"].(string),
					Body:      data["body"].(string),
					Published: data["published"].(bool),
					AuthorID:  data["author"].(string),
				})
			},
		},
		"updatePost": &graphql.Field{
			Type: graphql.NewNonNull(postType),
			Args: idAndDataArgs(updatePostInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				var patch blog.PostPatch
				if v, ok := data["title"].(string); ok {
					patch.Title = &v
				}
				if v, ok := data["body"].(string); ok {
					patch.Body = &v
				}
				if v, ok := data["published"].(bool); ok {
					patch.Published = &v
				}
				if v, ok := data["author"].(string); ok {
					patch.AuthorID = &v
				}
				return svc.UpdatePost(p.Context, p.Args["id"].(string), patch)
			},
		},
		"deletePost": &graphql.Field{
			Type: graphql.NewNonNull(postType),
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svc.DeletePost(p.Context, p.Args["id"].(string))
			},
		},
		"createComment": &graphql.Field{
			Type: graphql.NewNonNull(commentType),
			Args: dataArgs(createCommentInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				return svc.CreateComment(p.Context, blog.NewComment{
					Text:     data["text"].(string),
					AuthorID: data["author"].(string),
					PostID:   data["post"].(string),
				})
			},
		},
		"updateComment": &graphql.Field{
			Type: graphql.NewNonNull(commentType),
			Args: idAndDataArgs(updateCommentInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				data := p.Args["data"].(map[string]any)
				var patch blog.CommentPatch
				if v, ok := data["text"].(string); ok {
					patch.Text = &v
				}
				return svc.UpdateComment(p.Context, p.Args["id"].(string), patch)
			},
		},
		"deleteComment": &graphql.Field{
			Type: graphql.NewNonNull(commentType),
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svc.DeleteComment(p.Context, p.Args["id"].(string))
			},
		},
	}
}
