// Package menu implements the interactive conversion session: pick a file
// type, pick one file or all of them, convert, then optionally move the
// source into its Completed folder.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/thywilljoshua/index-converter/internal/convert"
	"github.com/thywilljoshua/index-converter/internal/extract"
	"github.com/thywilljoshua/index-converter/internal/journal"
	"github.com/thywilljoshua/index-converter/internal/ui"
	"github.com/thywilljoshua/index-converter/internal/workspace"
)

var errQuit = errors.New("quit")

// Session holds everything one interactive run needs.
type Session struct {
	Workspace   workspace.Workspace
	Journal     *journal.Journal
	Prompt      *ui.Prompter
	Out         io.Writer
	Extractors  extract.Registry
	MaxAttempts int
}

// Run loops over the menus until the user quits or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.step(ctx)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) step(ctx context.Context) error {
	ui.Menu(s.Out, "Select file type or action:", []string{"1. .docx", "2. .pdf", "3. .txt", "4. Quit"})
	choice, err := s.Prompt.Ask("Enter number (1-3) or '4' to quit: ")
	if err != nil {
		return err
	}
	if choice == "4" {
		ui.Info(s.Out, "Exiting...")
		s.log("User quit from file type menu")
		return errQuit
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(extract.Kinds) {
		ui.Failure(s.Out, "Invalid selection. Try again.")
		s.log("Invalid file type selection")
		return nil
	}
	kind := extract.Kinds[n-1]

	files, err := s.Workspace.List(kind)
	if err != nil {
		return fmt.Errorf("listing input files: %w", err)
	}
	if len(files) == 0 {
		ui.Info(s.Out, "No .%s files found in %s", kind, s.Workspace.InputDir())
		return nil
	}

	opts := make([]string, 0, len(files)+2)
	for i, f := range files {
		opts = append(opts, fmt.Sprintf("%d. %s", i+1, filepath.Base(f)))
	}
	opts = append(opts, "0. Convert All", "q. Quit")
	ui.Menu(s.Out, "Available files:", opts)

	choice, err = s.Prompt.Choose("Select file number, '0' for all, or 'q' to quit: ")
	if err != nil {
		return err
	}
	switch choice {
	case "q":
		ui.Info(s.Out, "Exiting...")
		s.log("User quit from file selection")
		return errQuit
	case "0":
		return s.convertAll(ctx, files)
	}
	n, err = strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(files) {
		ui.Failure(s.Out, "Invalid selection. Try again.")
		s.log("Invalid file selection")
		return nil
	}
	return s.convertOne(ctx, files[n-1])
}

func (s *Session) convertAll(ctx context.Context, files []string) error {
	for _, f := range files {
		name := filepath.Base(f)
		res, err := convert.RunWithRetry(ctx, f, s.config(f), s.MaxAttempts, func(attempt int, err error) {
			s.log(fmt.Sprintf("Attempt %d/%d failed for %s: %v", attempt, s.MaxAttempts, name, err))
			ui.Failure(s.Out, "Error processing %s (Attempt %d/%d): %v", name, attempt, s.MaxAttempts, err)
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			ui.Failure(s.Out, "Max retries reached for %s. Skipping.", name)
			continue
		}
		if err := s.finish(ctx, f, res); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) convertOne(ctx context.Context, f string) error {
	name := filepath.Base(f)
	res, err := convert.Run(ctx, f, s.config(f))
	if err == nil {
		return s.finish(ctx, f, res)
	}
	s.log(fmt.Sprintf("Error processing %s: %v", name, err))
	ui.Failure(s.Out, "Error processing %s: %v", name, err)

	ans, err := s.Prompt.Choose("Retry conversion? (y/n): ")
	if err != nil || ans != "y" {
		return err
	}
	return s.retry(ctx, f)
}

// finish reports a converted file and offers to move it, or to convert it
// again.
func (s *Session) finish(ctx context.Context, f string, res convert.Result) error {
	name := filepath.Base(f)
	ui.FormatSummary(s.Out, ui.Summary{Input: f, Output: res.Output, Subjects: res.Subjects, Dividers: res.Dividers})
	s.log("Processed " + name)
	ui.Info(s.Out, "Import the CSV into a spreadsheet and adjust formatting (e.g., 'Wrap Text') as needed.")

	kind, _ := extract.KindOf(f)
	ans, err := s.Prompt.Choose(fmt.Sprintf("Move %s to Completed/%s? (y/n/r for retry): ", name, kind))
	if err != nil {
		return err
	}
	switch ans {
	case "y":
		if _, err := s.Workspace.Complete(f); err != nil {
			s.log(fmt.Sprintf("Failed to move %s: %v", name, err))
			ui.Failure(s.Out, "Failed to move file: %v", err)
			return nil
		}
		s.log(fmt.Sprintf("Moved %s to Completed/%s", name, kind))
		ui.Success(s.Out, "Moved %s to Completed/%s", name, kind)
	case "r":
		ui.Info(s.Out, "Retrying conversion...")
		return s.retry(ctx, f)
	}
	return nil
}

func (s *Session) retry(ctx context.Context, f string) error {
	res, err := convert.Run(ctx, f, s.config(f))
	if err != nil {
		s.log(fmt.Sprintf("Retry failed for %s: %v", filepath.Base(f), err))
		ui.Failure(s.Out, "Retry failed: %v", err)
		return nil
	}
	return s.finish(ctx, f, res)
}

func (s *Session) config(f string) convert.Config {
	return convert.Config{OutPath: s.Workspace.CSVPath(f), Extractors: s.Extractors}
}

func (s *Session) log(msg string) {
	if s.Journal == nil {
		return
	}
	if err := s.Journal.Log(msg); err != nil {
		ui.Failure(s.Out, "%v", err)
	}
}
