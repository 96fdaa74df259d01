package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

var v = validator.New()

// Email reports whether addr is a syntactically valid email address.
func Email(addr string) bool {
	return v.Var(addr, "required,email") == nil
}

// Slugify derives the canonical URL slug for a name: lowercased, ASCII,
// words joined with hyphens.
func Slugify(name string) string {
	return slug.Make(name)
}
