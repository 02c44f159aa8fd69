package parser

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	ErrNoStream     = errors.New("parser: stream is required")
	ErrNoSchema     = errors.New("parser: schema is required")
	ErrEmptyInput   = errors.New("parser: input is empty, cannot read schema record")
	ErrBadSeparator = errors.New("parser: separator must not be a quote character")
)

// State errors. Every public operation checks the parser state first
// and returns one of these when the operation is invalid for it.
var (
	ErrNotRead       = errors.New("parser: read not called")
	ErrNoMoreRecords = errors.New("parser: no more records")
	ErrPoisoned      = errors.New("parser: reading with errors")
	ErrDisposed      = errors.New("parser: parser is disposed")
)

// Format errors, always carried inside a *ParseError.
var (
	ErrRecordLength      = errors.New("parser: record length does not match schema total width")
	ErrFieldCount        = errors.New("parser: field count does not match schema column count")
	ErrUnterminatedQuote = errors.New("parser: quoted field is not terminated")
)

// ParseError locates a format or conversion failure at the 1-based
// record where it occurred.
type ParseError struct {
	Record int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: record %d: %v", e.Record, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
