package main

import (
	"fmt"

	"github.com/dhamidi/combi/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long:  "Start a language server on stdio that checks one expression per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := lsp.NewAnalyzer(mode(), conf.GetInt64("cache-size"))
			if err != nil {
				return fmt.Errorf("lsp: %w", err)
			}
			defer analyzer.Close()

			server := lsp.NewServer(version, analyzer)
			return server.RunStdio()
		},
	}

	addModeFlag(cmd)
	cmd.Flags().Int64("cache-size", 10000, "number of evaluated lines to cache")

	return cmd
}
