// Package convert runs the document -> index rows -> CSV pipeline for a
// single source file.
package convert

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thywilljoshua/index-converter/internal/extract"
	"github.com/thywilljoshua/index-converter/internal/index"
	"github.com/thywilljoshua/index-converter/internal/logger"
)

// Run converts the document at path into a CSV at cfg.OutPath. It returns
// index.ErrNoIndexMarker when the document has no index body; the CSV is not
// written in that case.
func Run(ctx context.Context, path string, cfg Config) (Result, error) {
	if cfg.OutPath == "" {
		return Result{}, errors.New("convert: no output path")
	}
	if cfg.Extractors == nil {
		cfg.Extractors = extract.Default()
	}
	log := logger.WithComponent("convert").With("file", filepath.Base(path))

	text, err := cfg.Extractors.Text(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("extracting %s: %w", filepath.Base(path), err)
	}
	log.Debug("extracted text", "bytes", len(text))

	lines := index.SplitAtMarker(text)
	if len(lines) == 0 {
		return Result{}, index.ErrNoIndexMarker
	}
	rows := index.Parse(lines)
	log.Debug("parsed index", "lines", len(lines), "rows", len(rows))

	if err := writeFile(cfg.OutPath, rows); err != nil {
		return Result{}, err
	}

	res := Result{Input: path, Output: cfg.OutPath, Rows: len(rows), Lines: len(lines)}
	for _, r := range rows {
		if r.IsDivider() {
			res.Dividers++
		} else {
			res.Subjects++
		}
	}
	log.Info("converted", "rows", res.Rows, "output", cfg.OutPath)
	return res, nil
}

// RunWithRetry calls Run up to attempts times, stopping at the first success.
// onFail, if set, sees every failed attempt. Cancellation of ctx ends the
// retries early.
func RunWithRetry(ctx context.Context, path string, cfg Config, attempts int, onFail func(attempt int, err error)) (Result, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, err := Run(ctx, path, cfg)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if onFail != nil {
			onFail(attempt, err)
		}
	}
	return Result{}, lastErr
}

// WriteCSV writes the header and one record per row.
func WriteCSV(w io.Writer, rows []index.Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(index.Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path string, rows []index.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
