// ABOUTME: GraphQL schema declaration wiring queries and mutations to the blog service
// ABOUTME: Relationship fields resolve through the service on each access

package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/inkwellhq/inkwell/internal/blog"
	"github.com/inkwellhq/inkwell/internal/store"
)

// NewSchema builds the GraphQL schema bound to the given service.
func NewSchema(svc *blog.Service) (graphql.Schema, error) {
	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Author).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Author).Name, nil
				},
			},
			"age": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					a := p.Source.(store.Author)
					if a.Age == nil {
						return nil, nil
					}
					return *a.Age, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Author).Email, nil
				},
			},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Post).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Post).Title, nil
				},
			},
			"body": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Post).Body, nil
				},
			},
			"published": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Post).Published, nil
				},
			},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Comment).ID, nil
				},
			},
			"text": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(store.Comment).Text, nil
				},
			},
		},
	})

	// Relationship fields are added after all three object types exist
	// because the references are circular.
	authorType.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.PostsOfAuthor(p.Context, p.Source.(store.Author).ID), nil
		},
	})
	authorType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.CommentsOfAuthor(p.Context, p.Source.(store.Author).ID), nil
		},
	})
	postType.AddFieldConfig("author", &graphql.Field{
		Type: graphql.NewNonNull(authorType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.AuthorOfPost(p.Context, p.Source.(store.Post))
		},
	})
	postType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.CommentsOfPost(p.Context, p.Source.(store.Post).ID), nil
		},
	})
	commentType.AddFieldConfig("author", &graphql.Field{
		Type: graphql.NewNonNull(authorType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.AuthorOfComment(p.Context, p.Source.(store.Comment))
		},
	})
	commentType.AddFieldConfig("post", &graphql.Field{
		Type: graphql.NewNonNull(postType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return svc.PostOfComment(p.Context, p.Source.(store.Comment))
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"authors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(authorType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					q, _ := p.Args["query"].(string)
					return svc.QueryAuthors(p.Context, q), nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					q, _ := p.Args["query"].(string)
					return svc.QueryPosts(p.Context, q), nil
				},
			},
			"comments": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.Comments(p.Context), nil
				},
			},
			"greeting": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"position": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					name, hasName := p.Args["name"].(string)
					position, hasPosition := p.Args["position"].(string)
					if hasName && hasPosition {
						return fmt.Sprintf("Hello, %s. You are my favorite %s", name, position), nil
					}
					return "Hello", nil
				},
			},
			"add": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Args: graphql.FieldConfigArgument{
					"a": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"b": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Args["a"].(float64) + p.Args["b"].(float64), nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(svc, authorType, postType, commentType),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
