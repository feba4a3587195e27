package main

import (
	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/ui"
)

func initCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the workspace folders and README",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			if err := e.ws.Ensure(); err != nil {
				return err
			}
			ui.Success(cmd.OutOrStdout(), "Workspace ready at %s", e.ws.Base)
			ui.Info(cmd.OutOrStdout(), "Put .docx, .pdf or .txt files in %s", e.ws.InputDir())
			return nil
		},
	}
}
