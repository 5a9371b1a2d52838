// Package history describes paginated listings of past command responses.
package history

import (
	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/domain/commit"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Page is a generic page of items with an optional cursor to the next one.
var Page = shape.Declare("Page", []string{"T"},
	shape.NewField("items", shape.List(shape.Param("T"))),
	shape.NewField("cursor", shape.Optional(shape.String)).WithDefault(nil),
)

// Commits is a page of commit responses.
func Commits() *shape.Type {
	return Page.Of(codec.TypeOf[commit.CommandResponse]())
}

// Items returns the decoded items of a page.
func Items(page shape.Object) []any {
	items, _ := page.Get("items")
	list, _ := items.([]any)

	return list
}

// Cursor returns the cursor of a page, if any.
func Cursor(page shape.Object) (string, bool) {
	cursor, _ := page.Get("cursor")
	s, ok := cursor.(string)

	return s, ok
}
