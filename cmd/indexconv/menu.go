package main

import (
	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/menu"
	"github.com/thywilljoshua/index-converter/internal/ui"
)

func menuCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick files to convert interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			j, err := e.openJournal()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			ui.Title(w, "Welcome to Index Converter!")
			s := &menu.Session{
				Workspace:   e.ws,
				Journal:     j,
				Prompt:      ui.NewPrompter(cmd.InOrStdin(), w),
				Out:         w,
				Extractors:  e.extractors,
				MaxAttempts: e.cfg.MaxAttempts,
			}
			return s.Run(cmd.Context())
		},
	}
}
