package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

const dateLayout = "2006-01-02"

// dateScalar carries calendar dates (project due dates) as "YYYY-MM-DD"
// strings, distinct from the RFC 3339 DateTime used for task due timestamps.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "A calendar date in YYYY-MM-DD form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil
		}
		return t
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, s.Value)
		if err != nil {
			return nil
		}
		return t
	},
})
