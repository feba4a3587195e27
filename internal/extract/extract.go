// Package extract pulls plain text out of the document formats the index
// converter accepts.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for files whose extension has no extractor.
var ErrUnsupported = errors.New("unsupported file type")

// Kind is a supported source format, named by its file extension.
type Kind string

const (
	KindDOCX Kind = "docx"
	KindPDF  Kind = "pdf"
	KindTXT  Kind = "txt"
)

// Kinds lists the supported formats in menu order.
var Kinds = []Kind{KindDOCX, KindPDF, KindTXT}

// KindOf returns the format of path based on its extension.
func KindOf(path string) (Kind, bool) {
	ext := Kind(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	for _, k := range Kinds {
		if k == ext {
			return k, true
		}
	}
	return "", false
}

// ParseKind validates a user supplied format name such as "pdf" or ".PDF".
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Extractor produces the full text content of a document.
type Extractor interface {
	Text(ctx context.Context, path string) (string, error)
}

// Registry maps each format to the extractor that reads it.
type Registry map[Kind]Extractor

// Default returns the local extractors for every supported format.
func Default() Registry {
	return Registry{
		KindDOCX: DOCX{},
		KindPDF:  PDF{},
		KindTXT:  TXT{},
	}
}

// Text picks the extractor for path and runs it.
func (r Registry) Text(ctx context.Context, path string) (string, error) {
	kind, ok := KindOf(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
	e, ok := r[kind]
	if !ok || e == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
	return e.Text(ctx, path)
}
