package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuannm99/flatfile/internal/record"
)

// DelimitedOptions configures a Delimited parser.
type DelimitedOptions struct {
	// Separator splits fields; it may be more than one character.
	// Default is ",". A bare quote character is rejected.
	Separator string
	// FirstRecordIsSchema consumes the first record before parsing
	// begins. Without a schema it defines an all-string schema whose
	// column names are the record's field values; with a schema it is
	// discarded without validation.
	FirstRecordIsSchema bool
}

// Delimited reads separator-split records, honoring single- and
// double-quoted fields that may embed the separator or line breaks.
type Delimited struct {
	base
	schema *record.Schema
	fs     *fieldScanner
}

var _ RecordParser = (*Delimited)(nil)

// NewDelimited binds a parser to r. schema may be nil only when
// opts.FirstRecordIsSchema is set, in which case the header record is
// consumed here so that Schema is usable before the first Read. The
// parser owns r; callers must always defer Close — there is no
// finalizer fallback.
func NewDelimited(r io.Reader, schema *record.Schema, opts DelimitedOptions) (*Delimited, error) {
	if r == nil {
		return nil, ErrNoStream
	}
	sep := opts.Separator
	if sep == "" {
		sep = ","
	}
	if sep == `"` || sep == "'" {
		return nil, ErrBadSeparator
	}
	if schema == nil && !opts.FirstRecordIsSchema {
		return nil, ErrNoSchema
	}

	p := &Delimited{
		base:   base{closer: asCloser(r)},
		schema: schema,
		fs:     newFieldScanner(bufio.NewReader(r), sep),
	}
	if opts.FirstRecordIsSchema {
		if err := p.consumeHeader(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// consumeHeader reads the first record; when no schema was supplied it
// becomes an all-string schema.
func (p *Delimited) consumeHeader() error {
	fields, err := p.fs.next()
	if err == io.EOF {
		if p.schema == nil {
			return ErrEmptyInput
		}
		// Schema supplied, nothing to discard.
		return nil
	}
	if err != nil {
		return err
	}
	if p.schema != nil {
		return nil
	}
	cols := make([]record.Column, len(fields))
	for i, name := range fields {
		cols[i] = record.String(name)
	}
	schema, err := record.NewSchema(cols...)
	if err != nil {
		return fmt.Errorf("parser: first record is not a valid schema: %w", err)
	}
	p.schema = schema
	return nil
}

// Schema returns the bound (or header-derived) schema.
func (p *Delimited) Schema() (*record.Schema, error) {
	if p.disposed() {
		return nil, ErrDisposed
	}
	return p.schema, nil
}

// Read advances to the next record. False with a nil error means end
// of input, idempotently; a malformed record returns a *ParseError
// and poisons the parser.
func (p *Delimited) Read() (bool, error) {
	if done, err := p.readable(); done {
		return false, err
	}
	fields, err := p.fs.next()
	if err == io.EOF {
		p.state = stateEOF
		return false, nil
	}
	if err == ErrUnterminatedQuote {
		p.recno++
		return false, p.fail(err)
	}
	if err != nil {
		return false, p.poison(err)
	}
	p.recno++
	if len(fields) != p.schema.NumCols() {
		return false, p.fail(fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), p.schema.NumCols()))
	}
	values, err := p.schema.ParseValues(fields)
	if err != nil {
		return false, p.fail(err)
	}
	p.store(values)
	return true, nil
}

// Values returns a copy of the current record's typed values.
func (p *Delimited) Values() ([]any, error) { return p.currentValues() }

// Close releases the underlying stream. Safe to call multiple times.
func (p *Delimited) Close() error { return p.close() }
