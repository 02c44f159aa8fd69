package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/tuannm99/flatfile/internal/record"
)

// FixedLengthOptions configures a FixedLength parser.
type FixedLengthOptions struct {
	// RecordSeparator is the line-terminator convention the stream is
	// expected to use. Lines are still read with the scanner's own
	// newline handling; the value is kept for callers that need to
	// know the convention, it does not re-split the raw stream.
	RecordSeparator string
	// FillChar pads every field to its declared width and is trimmed
	// from both ends on read. Default is a space.
	FillChar rune
}

// FixedLength reads records whose line length must exactly equal the
// schema's total width, slicing fields by cumulative character widths.
type FixedLength struct {
	base
	schema *record.FixedWidthSchema
	widths []int
	fill   rune
	sc     *bufio.Scanner
}

var _ RecordParser = (*FixedLength)(nil)

// NewFixedLength binds a parser to r and schema. The parser owns r for
// its whole lifetime: if r is an io.Closer it is closed by Close, and
// callers must always defer Close — there is no finalizer fallback.
func NewFixedLength(r io.Reader, schema *record.FixedWidthSchema, opts FixedLengthOptions) (*FixedLength, error) {
	if r == nil {
		return nil, ErrNoStream
	}
	if schema == nil {
		return nil, ErrNoSchema
	}
	fill := opts.FillChar
	if fill == 0 {
		fill = ' '
	}
	return &FixedLength{
		base:   base{closer: asCloser(r)},
		schema: schema,
		widths: schema.Widths(),
		fill:   fill,
		sc:     bufio.NewScanner(r),
	}, nil
}

// Schema returns the bound schema.
func (p *FixedLength) Schema() (*record.Schema, error) {
	if p.disposed() {
		return nil, ErrDisposed
	}
	return &p.schema.Schema, nil
}

// FixedWidthSchema returns the bound schema with its width sequence.
func (p *FixedLength) FixedWidthSchema() (*record.FixedWidthSchema, error) {
	if p.disposed() {
		return nil, ErrDisposed
	}
	return p.schema, nil
}

// Read advances to the next record. It returns false with a nil error
// at end of input (idempotently), and false with a *ParseError when
// the record is malformed, after which the parser is poisoned.
func (p *FixedLength) Read() (bool, error) {
	if done, err := p.readable(); done {
		return false, err
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return false, p.poison(err)
		}
		p.state = stateEOF
		return false, nil
	}
	p.recno++

	// Widths are declared in characters, not bytes.
	runes := []rune(p.sc.Text())
	if len(runes) != p.schema.TotalWidth() {
		return false, p.fail(ErrRecordLength)
	}

	fields := make([]string, len(p.widths))
	pos := 0
	for i, w := range p.widths {
		fields[i] = strings.Trim(string(runes[pos:pos+w]), string(p.fill))
		pos += w
	}

	values, err := p.schema.ParseValues(fields)
	if err != nil {
		return false, p.fail(err)
	}
	p.store(values)
	return true, nil
}

// Values returns a copy of the current record's typed values.
func (p *FixedLength) Values() ([]any, error) { return p.currentValues() }

// Close releases the underlying stream. Safe to call multiple times.
func (p *FixedLength) Close() error { return p.close() }
