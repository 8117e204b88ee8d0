package cmd

import (
	"fmt"
	"os"

	"codebundle/pkg/bundle"
	"codebundle/pkg/exclude"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBundleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Concatenate source files below the current directory",
		Long: `Scan the current directory recursively, keep the files of the requested
languages and write them, in sorted order, into a single output file.
Paths containing "bin" or "debug" are skipped.`,
		Example: `  codebundle bundle -l cs,py -o out.txt -s type -n
  codebundle bundle -l all -o out.txt -a "Jane Doe" -r
  codebundle bundle @bundle.rsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := bundleRequest(cmd, a.logger)
			if err != nil {
				return reportError(cmd, err)
			}

			res, err := bundle.Run(req, a.logger)
			if err != nil {
				return reportError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bundle written to %s\n", res.Output)
			return nil
		},
	}

	if err := bundleOptions().Bind(cmd.Flags()); err != nil {
		panic(fmt.Sprintf("failed to bind bundle options: %v", err))
	}
	return cmd
}

// bundleRequest builds the request from parsed flags. The scan root is the
// process working directory.
func bundleRequest(cmd *cobra.Command, logger *zap.Logger) (bundle.Request, error) {
	flags := cmd.Flags()

	langs, err := flags.GetStringSlice("language")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	note, err := flags.GetBool("note")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	sortBy, err := flags.GetString("sort")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	strip, err := flags.GetBool("remove-empty-lines")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	author, err := flags.GetString("author")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	patterns, err := flags.GetStringSlice("exclude")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}
	mode, err := flags.GetString("exclude-mode")
	if err != nil {
		return bundle.Request{}, fmt.Errorf("error reading flags: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return bundle.Request{}, fmt.Errorf("%w: %v", bundle.ErrMissingWorkingDirectory, err)
	}

	excluded, err := exclude.ByMode(mode)
	if err != nil {
		return bundle.Request{}, err
	}
	if len(patterns) > 0 {
		excluded = exclude.Any(excluded, exclude.Compile(patterns, logger).Predicate(root))
	}

	return bundle.Request{
		Root:               root,
		Languages:          langs,
		Output:             output,
		IncludeSourceNotes: note,
		Sort:               bundle.ParseSortMode(sortBy),
		StripEmptyLines:    strip,
		Author:             author,
		Exclude:            excluded,
	}, nil
}
