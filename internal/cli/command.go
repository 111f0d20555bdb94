package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/godu/internal/du"
)

// NewCommand builds the root command for the given version string.
func NewCommand(version string) *cobra.Command {
	var (
		options    du.Options
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "godu [flags] [path]",
		Short: "Report disk-space usage for a file or directory tree",
		Long: heredoc.Doc(`
			godu reports disk-space usage for a path.

			For a file it prints the file's size. For a directory it recursively
			sums the sizes of everything beneath it and prints one line per file
			and directory visited, each directory showing the aggregate size of
			its subtree. Unreadable entries are skipped with a warning and leave
			the surrounding totals undercounted rather than failing the run.

			Sizes print as raw byte counts aligned to a common width, or with
			-H as unit-scaled values (B/K/M/G).

			Positional Arguments:
			  path    File or directory to report on. Defaults to the current
			          directory.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.MaxDepth < 0 {
				return errors.New("max-depth cannot be negative")
			}

			size, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options.MinSize = size

			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(options)
		},
	}

	registerFlags(cmd.Flags(), &options, &minSizeStr)

	return cmd
}

// registerFlags declares the command's flags in display order.
func registerFlags(flags *pflag.FlagSet, options *du.Options, minSizeStr *string) {
	flags.IntVarP(&options.MaxDepth, "max-depth", "d", 0, "Maximum depth to report sizes for (0 = root only)")
	flags.BoolVarP(&options.HumanReadable, "human-readable", "H", false, "Print sizes in B/K/M/G units")
	flags.BoolVarP(&options.Sort, "sort", "s", false, "Sort records by ascending size")
	flags.StringVar(minSizeStr, "min-size", "0B", "Hide records smaller than this size (e.g. 1KB)")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	flags.SortFlags = false
}

// Execute runs the CLI with the process arguments.
func Execute(version string) error {
	return NewCommand(version).Execute()
}
