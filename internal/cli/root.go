package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/confcheck/internal/domain"
)

// Execute runs the CLI against the process arguments and exits.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		var ve *validationError
		if !errors.As(err, &ve) {
			fmt.Fprintf(stderr, "confcheck: %v\n", err)
		}
	}
	return exitCode(err)
}

func newRootCmd() *cobra.Command {
	opts := validateOptions{cfg: domain.DefaultConfig()}

	cmd := &cobra.Command{
		Use:           "confcheck",
		Short:         "Check that every YAML file in a config directory parses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.cfg.Dir, "dir", "d", opts.cfg.Dir, "Configuration directory to check")
	f.StringSliceVar(&opts.cfg.Extensions, "ext", opts.cfg.Extensions, "File suffix to check (repeatable, case-sensitive)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "List checked files on success")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs as JSON to stderr")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Append JSON logs to this file instead of stderr")

	cmd.AddCommand(versionCmd())
	return cmd
}
