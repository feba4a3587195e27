package extract

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TXT reads UTF-8 text files. A leading byte order mark is dropped and line
// endings are normalized to \n.
type TXT struct{}

func (TXT) Text(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", err
	}
	return normalizeNewlines(string(b)), nil
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(s string) string {
	return newlines.Replace(s)
}
