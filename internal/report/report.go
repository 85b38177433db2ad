package report

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// DefaultTopAuthors is the number of authors listed when no limit is given.
const DefaultTopAuthors = 5

// Options tunes a report.
type Options struct {
	// TopAuthors limits the author ranking. Zero or less means DefaultTopAuthors.
	TopAuthors int
}

// Build loads c into a private in-memory database and computes the report.
func Build(ctx context.Context, c types.Catalog, opts Options) (*types.Report, error) {
	if opts.TopAuthors <= 0 {
		opts.TopAuthors = DefaultTopAuthors
	}

	db, err := openMemory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := insertBooks(ctx, db, c); err != nil {
		return nil, err
	}

	r := &types.Report{Stats: catalog.Summarize(c)}

	if r.Genres, err = groupCounts(ctx, db, queryGenres); err != nil {
		return nil, fmt.Errorf("grouping genres: %w", err)
	}
	if r.Decades, err = groupCounts(ctx, db, queryDecades); err != nil {
		return nil, fmt.Errorf("grouping decades: %w", err)
	}
	for i := range r.Decades {
		r.Decades[i].Key += "s"
	}
	if r.Authors, err = groupCounts(ctx, db, queryAuthors, opts.TopAuthors); err != nil {
		return nil, fmt.Errorf("ranking authors: %w", err)
	}
	return r, nil
}

// openMemory opens an in-memory SQLite database and creates the schema.
// Each pooled connection would see its own empty memory database, so the
// pool is pinned to one connection.
func openMemory(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening report database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating report schema: %w", err)
		}
	}
	return db, nil
}

// insertBooks loads every book in one transaction.
func insertBooks(ctx context.Context, db *sql.DB, c types.Catalog) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO books (position, title, author, publication_year, genre, read) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range c {
		read := 0
		if b.Read {
			read = 1
		}
		if _, err := stmt.ExecContext(ctx, i, b.Title, b.Author, b.PublicationYear, b.Genre, read); err != nil {
			return fmt.Errorf("inserting %q: %w", b.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// groupCounts runs a (key, total, read) query. Keys are scanned as any since
// decades come back as integers and genres as text.
func groupCounts(ctx context.Context, db *sql.DB, query string, args ...any) ([]types.GroupCount, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]types.GroupCount, 0)
	for rows.Next() {
		var (
			key   any
			group types.GroupCount
		)
		if err := rows.Scan(&key, &group.Total, &group.Read); err != nil {
			return nil, err
		}
		group.Key = keyString(key)
		out = append(out, group)
	}
	return out, rows.Err()
}

func keyString(v any) string {
	switch k := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(k, 10)
	case []byte:
		return string(k)
	case string:
		return k
	default:
		return fmt.Sprint(k)
	}
}
