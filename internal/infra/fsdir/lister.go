package fsdir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/confcheck/internal/domain"
	"github.com/aalvaropc/confcheck/internal/ports"
)

// Lister selects the direct entries of a directory whose name ends with one
// of the configured suffixes. Matching is exact and case-sensitive.
type Lister struct {
	extensions []string
}

type Option func(*Lister)

// WithExtensions replaces the recognized suffixes. Empty values are ignored.
func WithExtensions(exts ...string) Option {
	return func(l *Lister) {
		var out []string
		for _, e := range exts {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
		if len(out) > 0 {
			l.extensions = out
		}
	}
}

func NewLister(opts ...Option) *Lister {
	l := &Lister{extensions: []string{".yaml"}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.CandidateLister = (*Lister)(nil)

func (l *Lister) ListCandidates(dir string) ([]domain.CandidateFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "fsdir.list",
			Kind: kind,
			Path: dir,
			Err:  err,
		}
	}

	var out []domain.CandidateFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !l.matches(name) {
			continue
		}
		out = append(out, domain.CandidateFile{Name: name, Path: filepath.Join(dir, name)})
	}
	return out, nil
}

// Extensions returns a copy of the recognized suffixes.
func (l *Lister) Extensions() []string {
	return append([]string(nil), l.extensions...)
}

func (l *Lister) matches(name string) bool {
	for _, ext := range l.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
