package shelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(types.Config{DataDir: t.TempDir(), LibraryFile: types.DefaultLibraryFile})
	require.NoError(t, err)
	assert.Empty(t, s.Books())
}

func TestOpenInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrLibraryFileEmpty)
}

func TestOpenCorruptedFileIsUsable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte("{"), 0o644))

	s, err := Open(types.Config{DataDir: dir, LibraryFile: "books.json"})
	require.ErrorIs(t, err, types.ErrCorrupted)
	require.NotNil(t, s)

	_, err = s.AddBook(types.Book{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Sci-Fi"})
	require.NoError(t, err)

	reopened, err := Open(types.Config{DataDir: dir, LibraryFile: "books.json"})
	require.NoError(t, err)
	assert.Len(t, reopened.Books(), 1)
}

func TestNewStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), types.DefaultLibraryFile)
	s := NewStore(path)
	want := types.Catalog{{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, Genre: "Classic", Read: true}}
	require.NoError(t, s.Save(want))

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
