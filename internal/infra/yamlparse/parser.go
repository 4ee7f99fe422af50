package yamlparse

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aalvaropc/confcheck/internal/domain"
	"github.com/aalvaropc/confcheck/internal/ports"
	"gopkg.in/yaml.v3"
)

// Parser decodes YAML into plain node trees only. Explicit tags outside the
// core schema are rejected, and a file may hold at most one document.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var _ ports.DocumentParser = (*Parser)(nil)

// safeTags are the tags a safe load may construct.
var safeTags = map[string]bool{
	"!!null":      true,
	"!!bool":      true,
	"!!int":       true,
	"!!float":     true,
	"!!str":       true,
	"!!binary":    true,
	"!!timestamp": true,
	"!!seq":       true,
	"!!map":       true,
	"!!set":       true,
	"!!omap":      true,
	"!!pairs":     true,
	"!!merge":     true,
}

func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return &domain.OpError{
			Op:   "yamlparse.open",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	if err := p.Parse(f); err != nil {
		var re *readError
		if errors.As(err, &re) {
			return &domain.OpError{
				Op:   "yamlparse.read",
				Kind: domain.KindExecution,
				Path: path,
				Err:  re.err,
			}
		}
		return &domain.OpError{
			Op:   "yamlparse.parse",
			Kind: domain.KindInvalidYAML,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Parse validates a single YAML stream. Empty input is valid.
func (p *Parser) Parse(r io.Reader) error {
	tr := &trackingReader{r: r}
	dec := yaml.NewDecoder(tr)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return tr.wrap(err)
	}

	if err := checkTags(&doc); err != nil {
		return err
	}

	var next yaml.Node
	err := dec.Decode(&next)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return tr.wrap(err)
	default:
		return fmt.Errorf("yaml: line %d: expected a single document in the stream, but found another document", next.Line)
	}
}

func checkTags(n *yaml.Node) error {
	if n == nil {
		return nil
	}
	if n.Style&yaml.TaggedStyle != 0 && !safeTags[n.Tag] {
		return fmt.Errorf("yaml: line %d: could not determine a constructor for the tag %q", n.Line, n.Tag)
	}
	for _, c := range n.Content {
		if err := checkTags(c); err != nil {
			return err
		}
	}
	return nil
}

// readError marks failures of the underlying reader so they are not
// reported as malformed YAML.
type readError struct{ err error }

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

// trackingReader remembers the first read failure; the decoder only keeps
// its text.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(b []byte) (int, error) {
	n, err := t.r.Read(b)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}

func (t *trackingReader) wrap(err error) error {
	if t.err != nil {
		return &readError{err: t.err}
	}
	return err
}
