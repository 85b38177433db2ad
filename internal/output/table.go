package output

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Align is a column alignment.
type Align int

// Column alignments.
const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
)

// Data is a table ready for rendering.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// BooksTable lays out books one per row in the given order.
func BooksTable(books []types.Book) Data {
	data := Data{
		Headers:         []string{"Title", "Author", "Year", "Genre", "Status"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignLeft},
	}
	for _, b := range books {
		data.Rows = append(data.Rows, []string{
			b.Title,
			b.Author,
			strconv.Itoa(b.PublicationYear),
			b.Genre,
			b.Status(),
		})
	}
	return data
}

// StatsTable lays out reading totals.
func StatsTable(st types.Stats) Data {
	return Data{
		Headers:         []string{"Total", "Read", "Percent Read"},
		ColumnAlignment: []Align{AlignRight, AlignRight, AlignRight},
		Rows: [][]string{{
			strconv.Itoa(st.Total),
			strconv.Itoa(st.ReadCount),
			Percent(st.PercentRead),
		}},
	}
}

// GroupTable lays out grouped counts under a key column named key.
func GroupTable(key string, rows []types.GroupCount) Data {
	data := Data{
		Headers:         []string{Heading(key), "Books", "Read"},
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{r.Key, strconv.Itoa(r.Total), strconv.Itoa(r.Read)})
	}
	return data
}

// Percent formats p with two decimals and a percent sign.
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// Heading title-cases s for section and column headings.
func Heading(s string) string {
	return cases.Title(language.English).String(s)
}
