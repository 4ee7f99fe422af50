package ports

import "github.com/aalvaropc/confcheck/internal/domain"

// CandidateLister lists the files of a directory that should be validated.
type CandidateLister interface {
	ListCandidates(dir string) ([]domain.CandidateFile, error)
}
