package index

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// refPattern matches a "book:page" reference at the start of a token.
var refPattern = regexp.MustCompile(`^(\d+)\s*:\s*(\S+)`)

// accumulator holds the subject being assembled and its pages per book.
type accumulator struct {
	subject string
	books   [Books]Pages
}

// add files page under book, ignoring books outside 1..Books.
func (a *accumulator) add(book int, page string) {
	if book < 1 || book > Books {
		return
	}
	a.books[book-1] = append(a.books[book-1], page)
}

// flush empties the accumulator and returns the finished row, if a subject
// was in progress.
func (a *accumulator) flush() (Row, bool) {
	row := Row{Subject: a.subject, Books: a.books}
	*a = accumulator{}
	return row, row.Subject != ""
}

// Parse turns the lines of an index body into rows. Every subject yields one
// row once its reference list ends, and every single-letter line yields a
// divider row. References that do not match the book:page form, or that name
// a book outside 1..6, are dropped. Parse keeps no state between calls.
func Parse(lines []string) []Row {
	var (
		rows []Row
		acc  accumulator
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isDividerLine(line) {
			if row, ok := acc.flush(); ok {
				rows = append(rows, row)
			}
			rows = append(rows, Divider(line))
			continue
		}

		continued := strings.HasSuffix(line, ",")
		if head, refs, ok := splitEntry(line); ok {
			// A line ending in a comma never names a subject, even when none
			// is in progress; its references go to the next subject.
			if acc.subject == "" && !continued {
				acc.subject = strings.TrimSpace(head)
			}
			for _, tok := range strings.Split(strings.TrimSuffix(refs, ","), ",") {
				if book, page, ok := parseRef(tok); ok {
					acc.add(book, page)
				}
			}
		}

		if !continued && acc.subject != "" {
			row, _ := acc.flush()
			rows = append(rows, row)
		}
	}
	if row, ok := acc.flush(); ok {
		rows = append(rows, row)
	}
	return rows
}

// splitEntry separates the subject column from the reference column. A tab
// wins over spaces; otherwise the first run of whitespace splits the line.
func splitEntry(line string) (head, refs string, ok bool) {
	if head, refs, ok = strings.Cut(line, "\t"); ok {
		return head, refs, true
	}
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", false
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace), true
}

// parseRef reads a "book:page" token. The page is kept verbatim.
func parseRef(tok string) (book int, page string, ok bool) {
	m := refPattern.FindStringSubmatch(strings.TrimSpace(tok))
	if m == nil {
		return 0, "", false
	}
	book, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return book, m[2], true
}

func isDividerLine(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && r != utf8.RuneError && unicode.IsLetter(r)
}
