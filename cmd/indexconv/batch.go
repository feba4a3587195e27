package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/convert"
	"github.com/thywilljoshua/index-converter/internal/extract"
	"github.com/thywilljoshua/index-converter/internal/ui"
)

func batchCmd(opts *globalOptions) *cobra.Command {
	var kindName string
	var move bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every Input file of one type, retrying failures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := extract.ParseKind(kindName)
			if err != nil {
				return err
			}
			e, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			j, err := e.openJournal()
			if err != nil {
				return err
			}
			files, err := e.ws.List(kind)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(files) == 0 {
				ui.Info(w, "No .%s files found in %s", kind, e.ws.InputDir())
				return nil
			}

			attempts := e.cfg.MaxAttempts
			var skipped int
			for _, f := range files {
				name := filepath.Base(f)
				res, err := convert.RunWithRetry(cmd.Context(), f,
					convert.Config{OutPath: e.ws.CSVPath(f), Extractors: e.extractors},
					attempts,
					func(attempt int, err error) {
						_ = j.Logf("Attempt %d/%d failed for %s: %v", attempt, attempts, name, err)
						ui.Failure(w, "Error processing %s (Attempt %d/%d): %v", name, attempt, attempts, err)
					})
				if err != nil {
					if cmd.Context().Err() != nil {
						return cmd.Context().Err()
					}
					skipped++
					ui.Failure(w, "Max retries reached for %s. Skipping.", name)
					continue
				}
				_ = j.Logf("Processed %s", name)
				ui.FormatSummary(w, ui.Summary{Input: res.Input, Output: res.Output, Subjects: res.Subjects, Dividers: res.Dividers})

				if move {
					if _, err := e.ws.Complete(f); err != nil {
						_ = j.Logf("Failed to move %s: %v", name, err)
						ui.Failure(w, "Failed to move file: %v", err)
						continue
					}
					_ = j.Logf("Moved %s to Completed/%s", name, kind)
					ui.Success(w, "Moved %s to Completed/%s", name, kind)
				}
			}
			if skipped > 0 {
				return fmt.Errorf("%d of %d files skipped", skipped, len(files))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "type", "t", "", "file type to convert: docx|pdf|txt")
	cmd.Flags().BoolVar(&move, "move", false, "move converted sources to Completed/<type>")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
