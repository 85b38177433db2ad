package shell

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// session runs the shell over a fresh store with the given input lines and
// returns the store and everything the shell printed.
func session(t *testing.T, seed types.Catalog, lines ...string) (*catalog.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), types.DefaultLibraryFile)
	store := catalog.NewStore(path)
	if seed != nil {
		require.NoError(t, store.Save(seed))
	}
	_, err := store.Load()
	require.NoError(t, err)

	var out bytes.Buffer
	in := NewScriptReader(strings.NewReader(strings.Join(lines, "\n")+"\n"), nil)
	require.NoError(t, New(store, in, &out).Run(context.Background()))
	return store, out.String()
}

func TestAddBookPersists(t *testing.T) {
	store, out := session(t, nil,
		"1", "Dune", "Frank Herbert", "1965", "Sci-Fi", "yes",
		"6",
	)

	assert.Contains(t, out, `Book "Dune" added successfully!`)
	assert.Contains(t, out, "Goodbye!")

	reloaded, err := catalog.NewStore(store.Path()).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, types.Book{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Sci-Fi", Read: true}, reloaded[0])
}

func TestScriptReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	r := NewScriptReader(strings.NewReader(long+"\nnext\n"), nil)

	line, err := r.Prompt("> ")
	require.NoError(t, err)
	assert.Len(t, line, len(long))

	line, err = r.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestAddBookLongTitle(t *testing.T) {
	title := strings.Repeat("a", 80*1024)
	store, out := session(t, nil,
		"1", title, "Anon", "2000", "Misc", "no",
		"6",
	)

	assert.Contains(t, out, "Goodbye!")
	require.Len(t, store.Books(), 1)
	assert.Equal(t, title, store.Books()[0].Title)
}

func TestAddBookRetriesYear(t *testing.T) {
	store, out := session(t, nil,
		"1", "  Emma ", "Jane Austen", "eighteen fifteen", "18.15", "1815", "Classic", "no",
		"6",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid input! Please enter a valid year."))
	books := store.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "Emma", books[0].Title)
	assert.Equal(t, 1815, books[0].PublicationYear)
	assert.False(t, books[0].Read)
}

func TestReadFlagOnlyYesIsTrue(t *testing.T) {
	store, _ := session(t, nil,
		"1", "A", "X", "2000", "G", "YES",
		"1", "B", "X", "2000", "G", "y",
		"1", "C", "X", "2000", "G", "true",
		"6",
	)

	books := store.Books()
	require.Len(t, books, 3)
	assert.True(t, books[0].Read)
	assert.False(t, books[1].Read)
	assert.False(t, books[2].Read)
}

func TestRemoveBook(t *testing.T) {
	seed := types.Catalog{
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Sci-Fi"},
		{Title: "dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Sci-Fi"},
		{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, Genre: "Classic"},
	}
	store, out := session(t, seed,
		"2", "DUNE",
		"2", "Emma",
		"2", "Missing",
		"6",
	)

	assert.Contains(t, out, `Removed 2 books titled "DUNE".`)
	assert.Contains(t, out, `Book "Emma" removed successfully.`)
	assert.Contains(t, out, `Book "Missing" not found.`)
	assert.Empty(t, store.Books())
}

func TestSearch(t *testing.T) {
	seed := types.Catalog{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", PublicationYear: 1937, Genre: "Fantasy", Read: true},
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Sci-Fi"},
	}
	_, out := session(t, seed,
		"3", "Author", "tolkien",
		"3", "title", "zzz",
		"3", "genre",
		"6",
	)

	assert.Contains(t, out, "Search Results:")
	assert.Contains(t, out, "- The Hobbit by J.R.R. Tolkien (1937) - Fantasy - Read")
	assert.NotContains(t, out, "- Dune by")
	assert.Contains(t, out, `No books found for "zzz" in title.`)
	assert.Contains(t, out, "Invalid choice! Please search by 'title' or 'author'.")
}

func TestDisplayAllSortedByYear(t *testing.T) {
	seed := types.Catalog{
		{Title: "B", Author: "x", PublicationYear: 2005, Genre: "g"},
		{Title: "A", Author: "x", PublicationYear: 1999, Genre: "g"},
		{Title: "C", Author: "x", PublicationYear: 2010, Genre: "g"},
	}
	store, out := session(t, seed, "4", "6")

	a := strings.Index(out, "- A by")
	b := strings.Index(out, "- B by")
	c := strings.Index(out, "- C by")
	require.True(t, a >= 0 && b >= 0 && c >= 0, out)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Equal(t, seed, store.Books(), "display does not reorder storage")
}

func TestDisplayAllEmpty(t *testing.T) {
	_, out := session(t, nil, "4", "6")
	assert.Contains(t, out, "The library is empty.")
}

func TestStatistics(t *testing.T) {
	seed := types.Catalog{
		{Title: "A", Read: true}, {Title: "B"}, {Title: "C"}, {Title: "D"},
	}
	_, out := session(t, seed, "5", "6")

	assert.Contains(t, out, "Total books: 4")
	assert.Contains(t, out, "Books read: 1 (25.00%)")
}

func TestStatisticsEmpty(t *testing.T) {
	_, out := session(t, nil, "5", "6")
	assert.Contains(t, out, "Books read: 0 (0.00%)")
}

func TestInvalidChoice(t *testing.T) {
	_, out := session(t, nil, "9", "", "6")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please enter a number from 1 to 6."))
}

func TestEndOfInputExits(t *testing.T) {
	_, out := session(t, nil, "1", "Half entered")
	assert.Contains(t, out, "Goodbye!")
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := catalog.NewStore(filepath.Join(t.TempDir(), types.DefaultLibraryFile))
	err := New(store, NewScriptReader(strings.NewReader("6\n"), nil), &bytes.Buffer{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// failingShelf wraps a store and fails every save.
type failingShelf struct {
	*catalog.Store
}

var errDiskFull = errors.New("disk full")

func (f failingShelf) AddBook(types.Book) (types.Catalog, error) {
	return f.Books(), errDiskFull
}

func (f failingShelf) RemoveBook(string) (types.Catalog, int, error) {
	return f.Books(), 0, errDiskFull
}

func TestSaveFailureIsReportedAndLoopContinues(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), types.DefaultLibraryFile))
	script := strings.Join([]string{
		"1", "Dune", "Herbert", "1965", "Sci-Fi", "no",
		"2", "Dune",
		"5",
		"6",
	}, "\n")

	var out bytes.Buffer
	err := New(failingShelf{store}, NewScriptReader(strings.NewReader(script), nil), &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "Error: could not save the library: disk full"))
	assert.Contains(t, out.String(), "Total books: 0")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestScriptReaderEchoesPrompts(t *testing.T) {
	var echo bytes.Buffer
	r := NewScriptReader(strings.NewReader("one\r\ntwo\n"), &echo)

	line, err := r.Prompt("first: ")
	require.NoError(t, err)
	assert.Equal(t, "one", line)
	line, err = r.Prompt("second: ")
	require.NoError(t, err)
	assert.Equal(t, "two", line)
	_, err = r.Prompt("third: ")
	assert.Error(t, err)

	assert.Equal(t, "first: one\nsecond: two\nthird: \n", echo.String())
}
