// Package shelf provides the public API for opening a book catalog store.
// This package exposes the factory functions while keeping the store
// implementation internal.
package shelf

import (
	"errors"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Version is the shelf release version.
const Version = "0.1.0"

// NewStore creates an unloaded store for the library file at path.
//
// Example:
//
//	s := shelf.NewStore("library.txt")
//	if _, err := s.Load(); err != nil && !errors.Is(err, types.ErrCorrupted) {
//	    return err
//	}
//	s.AddBook(types.Book{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965})
func NewStore(path string) types.Shelf {
	return catalog.NewStore(path)
}

// Open validates cfg, creates a store for cfg.Path and loads it.
//
// A corrupted library file still yields a usable, empty Shelf together with
// an error matching types.ErrCorrupted. Any other error yields a nil Shelf.
func Open(cfg types.Config) (types.Shelf, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := catalog.NewStore(cfg.Path())
	if _, err := s.Load(); err != nil {
		if errors.Is(err, types.ErrCorrupted) {
			return s, err
		}
		return nil, err
	}
	return s, nil
}
