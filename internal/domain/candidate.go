package domain

// CandidateFile is a directory entry selected for validation.
type CandidateFile struct {
	Name string // base name, as listed
	Path string // Name joined with the listed directory
}

// Report describes a completed validation pass.
// Checked holds the files that parsed, in processing order.
type Report struct {
	Dir     string
	Checked []CandidateFile
}
