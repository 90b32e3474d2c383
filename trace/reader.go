package trace

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/dramkit/idgen"
)

// A Reader reads accesses from a trace.
type Reader struct {
	scanner     *bufio.Scanner
	idGenerator idgen.Generator
	line        int
}

// NewReader creates a Reader over r. IDs come from the default generator.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner:     bufio.NewScanner(r),
		idGenerator: idgen.Get(),
	}
}

// WithIDGenerator sets the generator that assigns access IDs.
func (r *Reader) WithIDGenerator(g idgen.Generator) *Reader {
	r.idGenerator = g
	return r
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Read returns the next access. It returns io.EOF at the end of the trace.
func (r *Reader) Read() (Access, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		a, err := ParseAccess(text)
		if err != nil {
			return Access{}, fmt.Errorf("line %d: %w", r.line, err)
		}

		a.ID = r.idGenerator.Generate()

		return a, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Access{}, err
	}

	return Access{}, io.EOF
}

// ReadAll reads the remaining accesses. It stops early if ctx is done.
func (r *Reader) ReadAll(ctx context.Context) ([]Access, error) {
	var accesses []Access

	for {
		if err := ctx.Err(); err != nil {
			return accesses, err
		}

		a, err := r.Read()
		if err == io.EOF {
			return accesses, nil
		}

		if err != nil {
			return accesses, err
		}

		accesses = append(accesses, a)
	}
}
