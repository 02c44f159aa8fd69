// Package parser turns flat text files into sequences of typed
// records. Two variants exist: FixedLength slices each line by the
// character widths of a record.FixedWidthSchema; Delimited splits each
// line on a separator string with single- or double-quote support.
//
// Both variants share one explicit state machine: fresh -> positioned
// -> eof, with errored and disposed as terminal states. A format or
// conversion failure poisons the parser permanently; the only recovery
// is to open a fresh parser over a reopened stream.
package parser

import (
	"io"
	"slices"

	"github.com/tuannm99/flatfile/internal/record"
)

// RecordParser is the surface consumed by cursor and table
// collaborators. All methods obey the state machine: Read advances,
// Values returns a copy of the current record, Close releases the
// underlying stream and is idempotent.
type RecordParser interface {
	Schema() (*record.Schema, error)
	Read() (bool, error)
	Values() ([]any, error)
	Close() error
}

type state uint8

const (
	stateFresh state = iota
	statePositioned
	stateEOF
	stateErrored
	stateDisposed
)

// base holds the variant-independent parser state: the record counter,
// the last parsed row, the state tag and the owned stream.
type base struct {
	state  state
	recno  int
	values []any
	closer io.Closer
}

// readable gates a Read attempt. EOF is not an error: Read stays an
// idempotent "no more records". done reports whether Read should
// return immediately.
func (b *base) readable() (done bool, err error) {
	switch b.state {
	case stateDisposed:
		return true, ErrDisposed
	case stateErrored:
		return true, ErrPoisoned
	case stateEOF:
		return true, nil
	default:
		return false, nil
	}
}

// fail poisons the parser and wraps err with the 1-based index of the
// offending record.
func (b *base) fail(err error) error {
	b.state = stateErrored
	b.values = nil
	return &ParseError{Record: b.recno, Err: err}
}

// poison is fail without the record annotation, for stream I/O errors
// that are not tied to a parseable record.
func (b *base) poison(err error) error {
	b.state = stateErrored
	b.values = nil
	return err
}

func (b *base) store(values []any) {
	b.values = values
	b.state = statePositioned
}

// currentValues returns a defensive copy of the last parsed record,
// so callers can never alias the internal row buffer.
func (b *base) currentValues() ([]any, error) {
	switch b.state {
	case stateFresh:
		return nil, ErrNotRead
	case stateEOF:
		return nil, ErrNoMoreRecords
	case stateErrored:
		return nil, ErrPoisoned
	case stateDisposed:
		return nil, ErrDisposed
	}
	return slices.Clone(b.values), nil
}

// close releases the owned stream exactly once; later calls are no-ops.
func (b *base) close() error {
	if b.state == stateDisposed {
		return nil
	}
	b.state = stateDisposed
	b.values = nil
	if b.closer == nil {
		return nil
	}
	c := b.closer
	b.closer = nil
	return c.Close()
}

func (b *base) disposed() bool { return b.state == stateDisposed }

// asCloser returns r as an io.Closer when it owns closeable resources.
func asCloser(r io.Reader) io.Closer {
	if c, ok := r.(io.Closer); ok {
		return c
	}
	return nil
}
