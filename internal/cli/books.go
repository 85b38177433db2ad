package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// addFlags holds the flag values of the add command.
type addFlags struct {
	title  string
	author string
	year   string
	genre  string
	read   bool
}

func newAddCmd(a *app) *cobra.Command {
	var f addFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the library",
		Example: `  shelf add --title "Dune" --author "Frank Herbert" --year 1965 --genre "Science Fiction" --read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&f.author, "author", "", "author name")
	cmd.Flags().StringVar(&f.year, "year", "", "publication year (required)")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre")
	cmd.Flags().BoolVar(&f.read, "read", false, "mark the book as read")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, f addFlags) error {
	book, err := types.NewBook(f.title, f.author, f.year, f.genre, f.read)
	if err != nil {
		return userError(err)
	}

	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}
	if _, err := store.AddBook(book); err != nil {
		return sysError(fmt.Errorf("could not save the library: %w", err))
	}

	out := cmd.OutOrStdout()
	if a.humanOutput(out) {
		fmt.Fprintf(out, "Book %q added successfully!\n", book.Title)
		return nil
	}
	return a.render(out, book)
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove every book with the given title",
		Long: `Remove every book whose title matches, ignoring case and surrounding
whitespace. Multiple words are joined with single spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runRemove,
	}
}

func (a *app) runRemove(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}
	_, removed, err := store.RemoveBook(title)
	if err != nil {
		return sysError(fmt.Errorf("could not save the library: %w", err))
	}
	if removed == 0 {
		return userError(fmt.Errorf("book %q not found", title))
	}

	out := cmd.OutOrStdout()
	if !a.humanOutput(out) {
		return a.render(out, map[string]any{"title": title, "removed": removed})
	}
	if removed == 1 {
		fmt.Fprintf(out, "Book %q removed successfully.\n", title)
	} else {
		fmt.Fprintf(out, "Removed %d books titled %q.\n", removed, title)
	}
	return nil
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <title|author> <term>",
		Short: "Search books by title or author",
		Long: `List the books whose title or author contains term, ignoring case.
Multiple words after the field are joined with single spaces.`,
		Example: `  shelf search author tolkien`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    a.runSearch,
	}
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	field, err := types.ParseSearchField(args[0])
	if err != nil {
		return userError(err)
	}
	term := strings.Join(args[1:], " ")

	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}
	books, err := store.SearchBooks(field, term)
	if err != nil {
		if errors.Is(err, types.ErrInvalidField) {
			return userError(err)
		}
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	if a.humanOutput(out) && len(books) == 0 {
		fmt.Fprintf(out, "No books found for %q in %s.\n", term, field)
		return nil
	}
	return a.render(out, books)
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all books sorted by publication year",
		Args:    cobra.NoArgs,
		RunE:    a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	books, ok := store.ListAllSorted()
	if !ok {
		if a.humanOutput(out) {
			fmt.Fprintln(out, "The library is empty.")
			return nil
		}
		books = []types.Book{}
	}
	return a.render(out, books)
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), store.Statistics())
		},
	}
}
