package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema composes the query and mutation roots over the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	b := newSchemaBuilder(r)
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.buildQueryType(),
		Mutation: b.buildMutationType(),
	})
}
