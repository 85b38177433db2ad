package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Book is one catalog entry. The JSON keys are the on-disk format of the
// store file and must not change.
type Book struct {
	Title           string `json:"title" yaml:"title" jsonschema:"description=Title of the book"`
	Author          string `json:"author" yaml:"author" jsonschema:"description=Author of the book"`
	PublicationYear int    `json:"publication_year" yaml:"publication_year" jsonschema:"description=Year of publication"`
	Genre           string `json:"genre" yaml:"genre" jsonschema:"description=Genre of the book"`
	Read            bool   `json:"read" yaml:"read" jsonschema:"description=Whether the book has been read"`
}

// Catalog is the ordered sequence of books held by a store.
// Insertion order is the storage order.
type Catalog []Book

// Clone returns a copy of the catalog that shares no backing array with c.
// A nil catalog clones to an empty, non-nil one.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Status returns the read status label used in listings.
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// String formats the book on one line.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%d) - %s - %s", b.Title, b.Author, b.PublicationYear, b.Genre, b.Status())
}

// ParseYear converts raw text into a publication year.
// Surrounding whitespace is ignored. Returns ErrInvalidYear wrapped with the
// offending input when the text is not an integer.
func ParseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, raw)
	}
	return year, nil
}

// ParseReadFlag collapses a yes/no answer to a boolean. Only "yes", in any
// case and with surrounding whitespace, is true.
func ParseReadFlag(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "yes")
}

// NewBook builds a Book from raw text fields as entered by a user.
// Title, author and genre are trimmed; the year must parse as an integer.
func NewBook(title, author, year, genre string, read bool) (Book, error) {
	y, err := ParseYear(year)
	if err != nil {
		return Book{}, err
	}
	return Book{
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		PublicationYear: y,
		Genre:           strings.TrimSpace(genre),
		Read:            read,
	}, nil
}
