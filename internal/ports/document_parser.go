package ports

// DocumentParser checks that a file holds well-formed structured data.
// The decoded value is not returned; only the outcome matters.
type DocumentParser interface {
	ParseFile(path string) error
}
