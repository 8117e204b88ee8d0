package cmd

import (
	"fmt"
	"path/filepath"

	"codebundle/pkg/rsp"

	"github.com/spf13/cobra"
)

func newCreateRspCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-rsp",
		Short: "Interactively create a response file for bundle",
		Long: `Prompt for each bundle option and save the answers as a response file.
Empty answers leave the option unset. Replay the file with "codebundle bundle @<file>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return reportError(cmd, fmt.Errorf("error reading flags: %w", err))
			}

			prompter := rsp.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			if _, err := rsp.Create(output, responseOptions.Names(), prompter, a.logger); err != nil {
				return reportError(cmd, err)
			}

			if abs, err := filepath.Abs(output); err == nil {
				output = abs
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Response file written to %s\n", output)
			return nil
		},
	}

	if err := createRspOptions.Bind(cmd.Flags()); err != nil {
		panic(fmt.Sprintf("failed to bind create-rsp options: %v", err))
	}
	return cmd
}
