package types

import (
	"fmt"
	"strings"
)

// SearchField selects the book attribute a search matches against.
type SearchField string

// Searchable fields.
const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
)

// SearchFields lists the valid search fields for help and error output.
var SearchFields = []SearchField{FieldTitle, FieldAuthor}

// Valid reports whether f is one of the searchable fields.
func (f SearchField) Valid() bool {
	return f == FieldTitle || f == FieldAuthor
}

// Value returns the attribute of b selected by f. It returns an empty
// string for an invalid field.
func (f SearchField) Value(b Book) string {
	switch f {
	case FieldTitle:
		return b.Title
	case FieldAuthor:
		return b.Author
	default:
		return ""
	}
}

// ParseSearchField trims and lowercases raw and returns the matching field,
// or ErrInvalidField.
func ParseSearchField(raw string) (SearchField, error) {
	f := SearchField(strings.ToLower(strings.TrimSpace(raw)))
	if !f.Valid() {
		names := make([]string, len(SearchFields))
		for i, sf := range SearchFields {
			names[i] = string(sf)
		}
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidField, raw, strings.Join(names, ", "))
	}
	return f, nil
}
