// Package shell implements the interactive menu over a catalog store.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/shelf/internal/output"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Menu choices.
const (
	choiceAdd    = "1"
	choiceRemove = "2"
	choiceSearch = "3"
	choiceList   = "4"
	choiceStats  = "5"
	choiceExit   = "6"
)

const menu = `
Welcome to Library Manager!
1. Add a book
2. Remove a book
3. Search for a book
4. Display all books
5. Display statistics
6. Exit`

// errInputClosed ends the loop when the reader runs out of input mid-command.
var errInputClosed = errors.New("input closed")

// Shell drives a types.Shelf from a line-oriented menu.
type Shell struct {
	shelf types.Shelf
	in    LineReader
	out   io.Writer
	log   zerolog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger for failures the user sees as messages.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) {
		s.log = l.With().Str("component", "shell").Logger()
	}
}

// New creates a Shell. The shelf must already be loaded.
func New(shelf types.Shelf, in LineReader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		shelf: shelf,
		in:    in,
		out:   out,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits, input ends, or ctx is done.
// Every mutation is persisted by the shelf as it happens, so exit does not
// save. A failed command is reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, menu)
		choice, err := s.prompt("Enter your choice: ")
		if errors.Is(err, errInputClosed) {
			s.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			err = s.addBook()
		case choiceRemove:
			err = s.removeBook()
		case choiceSearch:
			err = s.search()
		case choiceList:
			s.displayAll()
		case choiceStats:
			s.displayStatistics()
		case choiceExit:
			s.goodbye()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number from 1 to 6.")
		}

		if errors.Is(err, errInputClosed) {
			s.goodbye()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "Library saved to file. Goodbye!")
}

// prompt reads one line, mapping end of input to errInputClosed.
func (s *Shell) prompt(p string) (string, error) {
	line, err := s.in.Prompt(p)
	if errors.Is(err, io.EOF) {
		return "", errInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// promptYear asks until the answer parses as an integer.
func (s *Shell) promptYear() (int, error) {
	for {
		raw, err := s.prompt("Enter the publication year of the book: ")
		if err != nil {
			return 0, err
		}
		year, err := types.ParseYear(raw)
		if err == nil {
			return year, nil
		}
		fmt.Fprintln(s.out, "Invalid input! Please enter a valid year.")
	}
}

func (s *Shell) addBook() error {
	title, err := s.prompt("Enter the title of the book: ")
	if err != nil {
		return err
	}
	author, err := s.prompt("Enter the author of the book: ")
	if err != nil {
		return err
	}
	year, err := s.promptYear()
	if err != nil {
		return err
	}
	genre, err := s.prompt("Enter the genre of the book: ")
	if err != nil {
		return err
	}
	read, err := s.prompt("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}

	book := types.Book{
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		PublicationYear: year,
		Genre:           strings.TrimSpace(genre),
		Read:            types.ParseReadFlag(read),
	}
	if _, err := s.shelf.AddBook(book); err != nil {
		s.log.Error().Err(err).Str("title", book.Title).Msg("add failed")
		fmt.Fprintf(s.out, "Error: could not save the library: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Book %q added successfully!\n", book.Title)
	return nil
}

func (s *Shell) removeBook() error {
	raw, err := s.prompt("Enter the book title to remove: ")
	if err != nil {
		return err
	}
	title := strings.TrimSpace(raw)

	_, removed, err := s.shelf.RemoveBook(title)
	switch {
	case err != nil:
		s.log.Error().Err(err).Str("title", title).Msg("remove failed")
		fmt.Fprintf(s.out, "Error: could not save the library: %v\n", err)
	case removed == 0:
		fmt.Fprintf(s.out, "Book %q not found.\n", title)
	case removed == 1:
		fmt.Fprintf(s.out, "Book %q removed successfully.\n", title)
	default:
		fmt.Fprintf(s.out, "Removed %d books titled %q.\n", removed, title)
	}
	return nil
}

func (s *Shell) search() error {
	raw, err := s.prompt("Search by title or author: ")
	if err != nil {
		return err
	}
	field, err := types.ParseSearchField(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid choice! Please search by 'title' or 'author'.")
		return nil
	}

	term, err := s.prompt(fmt.Sprintf("Enter the %s: ", field))
	if err != nil {
		return err
	}
	term = strings.TrimSpace(term)

	results, err := s.shelf.SearchBooks(field, term)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	if len(results) == 0 {
		fmt.Fprintf(s.out, "No books found for %q in %s.\n", term, field)
		return nil
	}
	fmt.Fprintln(s.out, "\nSearch Results:")
	s.printBooks(results)
	return nil
}

func (s *Shell) displayAll() {
	books, ok := s.shelf.ListAllSorted()
	if !ok {
		fmt.Fprintln(s.out, "The library is empty.")
		return
	}
	fmt.Fprintln(s.out, "\nYour Library Collection:")
	s.printBooks(books)
}

func (s *Shell) displayStatistics() {
	st := s.shelf.Statistics()
	fmt.Fprintln(s.out, "\nLibrary Statistics:")
	fmt.Fprintf(s.out, "Total books: %d\n", st.Total)
	fmt.Fprintf(s.out, "Books read: %d (%s)\n", st.ReadCount, output.Percent(st.PercentRead))
}

func (s *Shell) printBooks(books []types.Book) {
	for _, b := range books {
		fmt.Fprintf(s.out, "- %s\n", b)
	}
}
