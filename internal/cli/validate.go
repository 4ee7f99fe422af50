package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/confcheck/internal/domain"
	"github.com/aalvaropc/confcheck/internal/infra/fsdir"
	"github.com/aalvaropc/confcheck/internal/infra/logger"
	"github.com/aalvaropc/confcheck/internal/infra/yamlparse"
	"github.com/aalvaropc/confcheck/internal/usecase"
)

type validateOptions struct {
	cfg     domain.Config
	verbose bool
	debug   bool
	logFile string
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	cfg := opts.cfg.WithDefaults()

	logCfg := logger.Config{File: opts.logFile, Debug: opts.debug}
	if opts.debug {
		logCfg.Output = cmd.ErrOrStderr()
	}
	cleanup, err := logger.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() { _ = cleanup() }()

	uc := usecase.NewValidateDirectory(
		fsdir.NewLister(fsdir.WithExtensions(cfg.Extensions...)),
		yamlparse.NewParser(),
		usecase.WithLogger(logger.L()),
	)

	report, err := uc.Execute(cmd.Context(), cfg.Dir)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Kind == domain.KindInvalidYAML {
			printParseError(cmd.OutOrStdout(), oe)
			return &validationError{err: err}
		}
		return err
	}

	if opts.verbose {
		printReport(cmd.OutOrStdout(), report, DefaultTheme())
	}
	return nil
}

func printParseError(w io.Writer, oe *domain.OpError) {
	fmt.Fprintf(w, "Error in %s: %v\n", filepath.Base(oe.Path), oe.Err)
}

func printReport(w io.Writer, report domain.Report, theme Theme) {
	for _, f := range report.Checked {
		fmt.Fprintf(w, "%s %s\n", theme.OK.Render("ok"), f.Path)
	}
	fmt.Fprintln(w, theme.Summary.Render(fmt.Sprintf("%d file(s) valid in %s", len(report.Checked), report.Dir)))
}
