package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func titles(books []types.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	c := types.Catalog{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien"},
		{Title: "The Silmarillion", Author: "J.R.R. Tolkien"},
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Straße der Ölsardinen", Author: "John Steinbeck"},
	}

	tests := []struct {
		name  string
		field types.SearchField
		term  string
		want  []string
	}{
		{name: "author lowercase query", field: types.FieldAuthor, term: "tolkien", want: []string{"The Hobbit", "The Silmarillion"}},
		{name: "author mixed case query", field: types.FieldAuthor, term: "ToLkIeN", want: []string{"The Hobbit", "The Silmarillion"}},
		{name: "title substring", field: types.FieldTitle, term: "hob", want: []string{"The Hobbit"}},
		{name: "title query is trimmed", field: types.FieldTitle, term: "  dune ", want: []string{"Dune"}},
		{name: "no results", field: types.FieldTitle, term: "zzz", want: []string{}},
		{name: "empty term matches all", field: types.FieldTitle, term: "", want: []string{"The Hobbit", "The Silmarillion", "Dune", "Straße der Ölsardinen"}},
		{name: "unicode folding", field: types.FieldTitle, term: "ÖLSARDINEN", want: []string{"Straße der Ölsardinen"}},
		{name: "title does not match author", field: types.FieldTitle, term: "herbert", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(c, tt.field, tt.term)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSearchInvalidField(t *testing.T) {
	_, err := Search(types.Catalog{{Title: "Dune"}}, types.SearchField("genre"), "x")
	assert.ErrorIs(t, err, types.ErrInvalidField)
}

func TestWithout(t *testing.T) {
	c := types.Catalog{{Title: "Dune"}, {Title: "Emma"}, {Title: "dune"}}

	kept, removed := Without(c, "DUNE")
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"Emma"}, titles(kept))
	assert.Len(t, c, 3, "input is not modified")
	assert.Equal(t, "Dune", c[0].Title)
}

func TestSortByYearIsStable(t *testing.T) {
	c := types.Catalog{
		{Title: "first 2000", PublicationYear: 2000},
		{Title: "1990", PublicationYear: 1990},
		{Title: "second 2000", PublicationYear: 2000},
		{Title: "-50", PublicationYear: -50},
		{Title: "third 2000", PublicationYear: 2000},
	}

	got := SortByYear(c)
	assert.Equal(t, []string{"-50", "1990", "first 2000", "second 2000", "third 2000"}, titles(got))
	assert.Equal(t, "first 2000", c[0].Title, "input order unchanged")
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		c    types.Catalog
		want types.Stats
	}{
		{name: "empty", c: nil, want: types.Stats{}},
		{name: "one of four read", c: types.Catalog{{Read: true}, {}, {}, {}}, want: types.Stats{Total: 4, ReadCount: 1, PercentRead: 25}},
		{name: "all read", c: types.Catalog{{Read: true}, {Read: true}}, want: types.Stats{Total: 2, ReadCount: 2, PercentRead: 100}},
		{name: "none read", c: types.Catalog{{}, {}, {}}, want: types.Stats{Total: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.c))
		})
	}
}

func TestSummarizeThirds(t *testing.T) {
	st := Summarize(types.Catalog{{Read: true}, {}, {}})
	assert.InDelta(t, 33.333, st.PercentRead, 0.001)
}
