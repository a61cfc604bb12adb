// ABOUTME: HTTP handler wrapping the schema with GraphiQL enabled
// ABOUTME: Thin shim over graphql-go/handler

package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns an http.Handler serving the GraphQL API and the
// GraphiQL playground on the same endpoint.
func NewHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
