package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// fold maps s to its case-folded form for case-insensitive comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// TitleMatches reports whether b's title equals title ignoring case and
// surrounding whitespace on title.
func TitleMatches(b types.Book, title string) bool {
	return fold(b.Title) == fold(strings.TrimSpace(title))
}

// Without returns c minus every book whose title matches title, and the
// number of books dropped. c is not modified.
func Without(c types.Catalog, title string) (types.Catalog, int) {
	kept := make(types.Catalog, 0, len(c))
	for _, b := range c {
		if TitleMatches(b, title) {
			continue
		}
		kept = append(kept, b)
	}
	return kept, len(c) - len(kept)
}

// Search returns, in catalog order, the books whose field contains term
// ignoring case. An empty term matches every book. The result is never nil.
func Search(c types.Catalog, field types.SearchField, term string) ([]types.Book, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidField, string(field))
	}
	needle := fold(strings.TrimSpace(term))
	return Filter(c, func(b types.Book) bool {
		return strings.Contains(fold(field.Value(b)), needle)
	}), nil
}

// Filter returns the books for which keep returns true, in catalog order.
func Filter(c types.Catalog, keep func(types.Book) bool) []types.Book {
	out := make([]types.Book, 0)
	for _, b := range c {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// SortByYear returns a copy of c ordered by ascending publication year.
// Books sharing a year keep their catalog order.
func SortByYear(c types.Catalog) []types.Book {
	out := c.Clone()
	slices.SortStableFunc(out, func(a, b types.Book) int {
		return cmp.Compare(a.PublicationYear, b.PublicationYear)
	})
	return out
}

// Summarize counts books and read books. PercentRead is 0 for an empty
// catalog.
func Summarize(c types.Catalog) types.Stats {
	st := types.Stats{Total: len(c)}
	for _, b := range c {
		if b.Read {
			st.ReadCount++
		}
	}
	if st.Total > 0 {
		st.PercentRead = float64(st.ReadCount) / float64(st.Total) * 100
	}
	return st
}
