package types

// Shelf is the catalog store contract consumed by the shell and the CLI.
// A Shelf owns its catalog; Load replaces it from storage and every
// successful mutation persists the whole catalog before returning.
type Shelf interface {
	// Load reads the store. A missing store yields an empty catalog and nil
	// error. A store that cannot be parsed yields an empty catalog and an
	// error matching ErrCorrupted; the file is left untouched.
	Load() (Catalog, error)

	// Save overwrites the store with c and makes c the current catalog.
	Save(c Catalog) error

	// AddBook appends b and persists. On persist failure the catalog is
	// unchanged.
	AddBook(b Book) (Catalog, error)

	// RemoveBook removes every book whose title equals title ignoring case.
	// It persists only when at least one book was removed and returns the
	// number removed.
	RemoveBook(title string) (Catalog, int, error)

	// SearchBooks returns books whose field contains term ignoring case.
	// Returns ErrInvalidField for a field other than title or author.
	SearchBooks(field SearchField, term string) ([]Book, error)

	// ListAllSorted returns the books ordered by publication year. ok is
	// false when the catalog is empty.
	ListAllSorted() (books []Book, ok bool)

	// Statistics returns reading totals.
	Statistics() Stats

	// Books returns a copy of the current catalog.
	Books() Catalog
}
