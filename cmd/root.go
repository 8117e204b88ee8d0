package cmd

import (
	"fmt"
	"os"

	"codebundle/pkg/logging"
	"codebundle/pkg/rsp"
	"codebundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the commands of one invocation.
type app struct {
	logger *zap.Logger
	debug  bool
}

// NewRootCmd builds the command tree. A fresh tree is built per invocation so
// flag values never leak between runs.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   version.AppName,
		Short: "Bundle source files of a directory tree into a single file",
		Long: `codebundle concatenates the source files below the current directory into one
text file, optionally annotated with an author header and per-file source lines.
Saved option sets can be created with create-rsp and replayed with @file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.debug {
				return nil
			}
			if err := logging.Setup(true, version.AppName, version.Version); err != nil {
				return fmt.Errorf("failed to initialize debug logger: %w", err)
			}
			a.logger = logging.Logger
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable development logging")

	root.AddCommand(
		newBundleCmd(a),
		newCreateRspCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against the process arguments.
func Execute(logger *zap.Logger) error {
	return ExecuteArgs(NewRootCmd(logger), os.Args[1:])
}

// ExecuteArgs expands "@file" response files in args and runs root.
func ExecuteArgs(root *cobra.Command, args []string) error {
	expanded, err := rsp.Expand(args, bundleOptions())
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	root.SetArgs(expanded)
	return root.Execute()
}

// reportError prints a handler error on stdout. Usage is not printed because
// the arguments parsed fine.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return err
}
