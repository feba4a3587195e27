package index

import "strings"

// Books is the number of reference books an index row tracks.
const Books = 6

// Header is the CSV header row written ahead of the parsed rows.
var Header = []string{"Subject", "Book 1", "Book 2", "Book 3", "Book 4", "Book 5", "Book 6"}

// Pages is an ordered list of page references for one book, duplicates kept.
type Pages []string

// Row is one subject of the index, or a single-letter divider.
type Row struct {
	Subject string
	Books   [Books]Pages
}

// Divider returns the section header row for letter.
func Divider(letter string) Row {
	return Row{Subject: letter}
}

// IsDivider reports whether r has no page data at all.
func (r Row) IsDivider() bool {
	for _, p := range r.Books {
		if len(p) > 0 {
			return false
		}
	}
	return isDividerLine(r.Subject)
}

// Record flattens r into the seven CSV fields.
func (r Row) Record() []string {
	rec := make([]string, 0, Books+1)
	rec = append(rec, r.Subject)
	for _, p := range r.Books {
		rec = append(rec, FormatPages(p))
	}
	return rec
}

// FormatPages joins pages with ", " and wraps them in one pair of quotes so
// the list stays inside a single spreadsheet cell. An empty list is "".
func FormatPages(p Pages) string {
	if len(p) == 0 {
		return ""
	}
	return `"` + strings.Join(p, ", ") + `"`
}
