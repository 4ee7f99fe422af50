package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/confcheck/internal/domain"
	"github.com/aalvaropc/confcheck/internal/ports"
)

type ValidateDirectory struct {
	lister ports.CandidateLister
	parser ports.DocumentParser
	log    *slog.Logger
}

type ValidateOption func(*ValidateDirectory)

func WithLogger(l *slog.Logger) ValidateOption {
	return func(uc *ValidateDirectory) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewValidateDirectory(cl ports.CandidateLister, dp ports.DocumentParser, opts ...ValidateOption) *ValidateDirectory {
	uc := &ValidateDirectory{
		lister: cl,
		parser: dp,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute parses every candidate file of dir in listing order and stops at the
// first failure. The returned report lists the files that parsed before it.
func (uc *ValidateDirectory) Execute(ctx context.Context, dir string) (domain.Report, error) {
	report := domain.Report{Dir: dir}

	files, err := uc.lister.ListCandidates(dir)
	if err != nil {
		return report, err
	}
	uc.log.Debug("validate.start", "dir", dir, "candidates", len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		uc.log.Debug("validate.file", "path", f.Path)
		if err := uc.parser.ParseFile(f.Path); err != nil {
			uc.log.Info("validate.failed", "path", f.Path, "kind", kindOf(err), "err", err.Error())
			return report, err
		}
		report.Checked = append(report.Checked, f)
	}

	uc.log.Info("validate.done", "dir", dir, "checked", len(report.Checked))
	return report, nil
}

func kindOf(err error) domain.ErrorKind {
	for _, k := range []domain.ErrorKind{domain.KindInvalidYAML, domain.KindNotFound, domain.KindExecution} {
		if domain.IsKind(err, k) {
			return k
		}
	}
	return ""
}
