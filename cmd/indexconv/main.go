package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "indexconv",
		Short: "Convert book index text into per-book CSV spreadsheets",
		Long: `indexconv reads the index at the back of a .docx, .pdf or .txt document
(everything after the "Index / Note: The numbers indicate the book number,
followed by the page number." heading) and writes one CSV row per subject with
the page references of books 1 to 6 in separate columns.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("indexconv %s\n", version.String()))
	opts.bind(root)

	root.AddCommand(convertCmd(opts))
	root.AddCommand(batchCmd(opts))
	root.AddCommand(menuCmd(opts))
	root.AddCommand(initCmd(opts))
	return root
}
