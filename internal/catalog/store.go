// Package catalog implements the catalog store: an in-memory book list backed
// by a single JSON file that is rewritten after every mutation.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Store owns a catalog and the path of the file it persists to.
// It implements types.Shelf. A Store is not safe for concurrent use.
type Store struct {
	path  string
	log   zerolog.Logger
	books types.Catalog
}

var _ types.Shelf = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l.With().Str("component", "catalog").Logger()
	}
}

// NewStore creates a Store for the file at path. The catalog starts empty;
// call Load to read the file.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		log:   zerolog.Nop(),
		books: types.Catalog{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory catalog with the contents of the store file.
//
// A missing file yields an empty catalog and nil error. A file that is not a
// well-formed catalog yields an empty catalog and a *types.CorruptError; the
// file itself is not touched until the next successful Save. Other read
// failures are returned as is, also with an empty catalog.
func (s *Store) Load() (types.Catalog, error) {
	s.books = types.Catalog{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("library file not found, starting empty")
		return s.Books(), nil
	}
	if err != nil {
		return s.Books(), fmt.Errorf("reading %s: %w", s.path, err)
	}

	books, err := decodeCatalog(data)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("library file is corrupted, starting with an empty library")
		return s.Books(), &types.CorruptError{Path: s.path, Err: err}
	}

	s.books = books
	s.log.Debug().Str("path", s.path).Int("books", len(books)).Msg("library loaded")
	return s.Books(), nil
}

// Save overwrites the store file with c and makes c the current catalog.
// The write goes through a temporary file in the same directory so a failed
// save never truncates the old file; on failure the catalog is unchanged.
func (s *Store) Save(c types.Catalog) error {
	data, err := encodeCatalog(c)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("saving %s: %w", s.path, err)
	}
	s.books = c.Clone()
	s.log.Debug().Str("path", s.path).Int("books", len(c)).Msg("library saved")
	return nil
}

// AddBook appends b to the end of the catalog and persists it. If the save
// fails the in-memory catalog is left as it was.
func (s *Store) AddBook(b types.Book) (types.Catalog, error) {
	next := append(s.books.Clone(), b)
	if err := s.Save(next); err != nil {
		return s.Books(), err
	}
	s.log.Info().Str("title", b.Title).Msg("book added")
	return s.Books(), nil
}

// RemoveBook drops every book whose title matches title ignoring case and
// surrounding whitespace. Nothing is written when no book matches.
func (s *Store) RemoveBook(title string) (types.Catalog, int, error) {
	next, removed := Without(s.books, title)
	if removed == 0 {
		return s.Books(), 0, nil
	}
	if err := s.Save(next); err != nil {
		return s.Books(), 0, err
	}
	s.log.Info().Str("title", title).Int("removed", removed).Msg("books removed")
	return s.Books(), removed, nil
}

// SearchBooks returns the books whose field contains term, ignoring case.
func (s *Store) SearchBooks(field types.SearchField, term string) ([]types.Book, error) {
	return Search(s.books, field, term)
}

// ListAllSorted returns the books ordered by publication year without
// changing storage order. ok is false for an empty catalog.
func (s *Store) ListAllSorted() ([]types.Book, bool) {
	if len(s.books) == 0 {
		return nil, false
	}
	return SortByYear(s.books), true
}

// Statistics returns reading totals for the catalog.
func (s *Store) Statistics() types.Stats {
	return Summarize(s.books)
}

// Books returns a copy of the current catalog.
func (s *Store) Books() types.Catalog {
	return s.books.Clone()
}
