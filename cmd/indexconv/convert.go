package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/convert"
	"github.com/thywilljoshua/index-converter/internal/ui"
)

func convertCmd(opts *globalOptions) *cobra.Command {
	var out string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert documents to CSV next to each source (or to --out)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" && len(args) > 1 {
				return errors.New("--out needs exactly one input file")
			}
			e, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			var results []convert.Result
			var failed int
			for _, src := range args {
				dst := out
				if dst == "" {
					dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".csv"
				}
				res, err := convert.Run(cmd.Context(), src, convert.Config{OutPath: dst, Extractors: e.extractors})
				if err != nil {
					failed++
					ui.Failure(cmd.ErrOrStderr(), "Error processing %s: %v", filepath.Base(src), err)
					continue
				}
				results = append(results, res)
				if !asJSON {
					ui.FormatSummary(cmd.OutOrStdout(), ui.Summary{Input: res.Input, Output: res.Output, Subjects: res.Subjects, Dividers: res.Dividers})
				}
			}

			if asJSON {
				b, _ := json.MarshalIndent(results, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV path (single input only)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}
