// Package workspace manages the converter's folder layout:
//
//	<base>/Input/              source documents waiting for conversion
//	<base>/Completed/<kind>/   converted sources, moved on request
//	<base>/CSV/                generated spreadsheets
//	<base>/conversion_log.txt  conversion log
//	<base>/README.txt          usage instructions
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thywilljoshua/index-converter/internal/extract"
)

const readme = `
Index Converter Instructions:
1. Place source files (.docx, .pdf, .txt) in the 'Input' folder.
2. Run 'indexconv menu' (or 'indexconv batch --type pdf').
3. Select file type (1-3), file number (1-N, 0 for all), or quit (4).
4. After conversion, optionally move files to 'Completed/[file_type]'.
5. Import .csv files from 'CSV' into a spreadsheet and adjust formatting (e.g., 'Wrap Text') as needed.
`

// Workspace is a converter folder tree rooted at Base.
type Workspace struct {
	Base string
}

func New(base string) Workspace {
	return Workspace{Base: base}
}

func (w Workspace) InputDir() string { return filepath.Join(w.Base, "Input") }
func (w Workspace) CSVDir() string { return filepath.Join(w.Base, "CSV") }
func (w Workspace) LogPath() string { return filepath.Join(w.Base, "conversion_log.txt") }
func (w Workspace) ReadmePath() string { return filepath.Join(w.Base, "README.txt") }

// CompletedDir is where converted sources of kind are moved.
func (w Workspace) CompletedDir(kind extract.Kind) string {
	return filepath.Join(w.Base, "Completed", string(kind))
}

// Ensure creates every folder and writes the README if it is missing.
func (w Workspace) Ensure() error {
	dirs := []string{w.Base, w.InputDir(), w.CSVDir()}
	for _, k := range extract.Kinds {
		dirs = append(dirs, w.CompletedDir(k))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}
	if _, err := os.Stat(w.ReadmePath()); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(w.ReadmePath(), []byte(readme), 0o644); err != nil {
			return fmt.Errorf("writing README: %w", err)
		}
	}
	return nil
}

// List returns the input files of kind, sorted by name.
func (w Workspace) List(kind extract.Kind) ([]string, error) {
	entries, err := os.ReadDir(w.InputDir())
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if k, ok := extract.KindOf(e.Name()); ok && k == kind {
			files = append(files, filepath.Join(w.InputDir(), e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// CSVPath is the spreadsheet written for input.
func (w Workspace) CSVPath(input string) string {
	name := filepath.Base(input)
	return filepath.Join(w.CSVDir(), strings.TrimSuffix(name, filepath.Ext(name))+".csv")
}

// Complete moves input into its Completed folder and returns the new path.
func (w Workspace) Complete(input string) (string, error) {
	kind, ok := extract.KindOf(input)
	if !ok {
		return "", fmt.Errorf("%w: %s", extract.ErrUnsupported, filepath.Base(input))
	}
	dst := filepath.Join(w.CompletedDir(kind), filepath.Base(input))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := os.Rename(input, dst); err != nil {
		return "", err
	}
	return dst, nil
}
