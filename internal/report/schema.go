// Package report computes grouped aggregates over a catalog by loading it
// into an in-memory SQLite database. The library file stays the only
// persistent copy; the database lives for one Build call.
package report

// Schema DDL for the report database.
const (
	createBooks = `CREATE TABLE books (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    publication_year INTEGER NOT NULL,
    genre TEXT NOT NULL,
    read INTEGER NOT NULL CHECK (read IN (0, 1))
);`

	idxBooksGenre  = `CREATE INDEX idx_books_genre ON books(genre COLLATE NOCASE);`
	idxBooksAuthor = `CREATE INDEX idx_books_author ON books(author COLLATE NOCASE);`
)

// schemaDDL lists the statements run on a fresh database, in order.
var schemaDDL = []string{
	createBooks,
	idxBooksGenre,
	idxBooksAuthor,
}

// Aggregate queries. Each returns (key, total, read) rows.
const (
	// Genres are grouped ignoring ASCII case; the lowest spelling in byte order
	// names the group.
	queryGenres = `SELECT MIN(genre), COUNT(*), SUM(read)
FROM books
GROUP BY genre COLLATE NOCASE
ORDER BY COUNT(*) DESC, MIN(genre) COLLATE NOCASE`

	// Decades floor toward minus infinity so that year -5 lands in -10.
	queryDecades = `SELECT decade, COUNT(*), SUM(read)
FROM (
    SELECT CASE
        WHEN publication_year >= 0 THEN (publication_year / 10) * 10
        ELSE ((publication_year - 9) / 10) * 10
    END AS decade, read
    FROM books
)
GROUP BY decade
ORDER BY decade`

	queryAuthors = `SELECT MIN(author), COUNT(*), SUM(read)
FROM books
GROUP BY author COLLATE NOCASE
ORDER BY COUNT(*) DESC, MIN(author) COLLATE NOCASE
LIMIT ?`
)
