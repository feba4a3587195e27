package index

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Marker is the heading that introduces the index body in every source file.
const Marker = "Index\nNote: The numbers indicate the book number, followed by the page number."

// ErrNoIndexMarker is reported when a document has no index body to parse.
var ErrNoIndexMarker = errors.New("no index data found after marker")

// SplitAtMarker returns the lines that follow the first occurrence of Marker
// in text, with the body trimmed of surrounding whitespace. It returns nil
// when the marker is missing or nothing follows it.
func SplitAtMarker(text string) []string {
	_, body, ok := strings.Cut(text, Marker)
	if !ok {
		return nil
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	return splitLines(body)
}

// splitLines breaks s on every line boundary, treating \r\n as one break.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
