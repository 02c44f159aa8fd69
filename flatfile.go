// Package flatfile converts flat text files (fixed-width or
// delimiter-separated) into sequences of strongly-typed records,
// driven by a declarative column schema.
package flatfile

import (
	"fmt"
	"os"

	"github.com/tuannm99/flatfile/internal/config"
	"github.com/tuannm99/flatfile/internal/cursor"
	"github.com/tuannm99/flatfile/internal/parser"
	"github.com/tuannm99/flatfile/internal/record"
	"github.com/tuannm99/flatfile/internal/table"
)

// Schema building blocks.
type (
	Kind             = record.Kind
	Column           = record.Column
	Schema           = record.Schema
	FixedWidthSchema = record.FixedWidthSchema
	ConversionError  = record.ConversionError
)

const (
	KindString   = record.KindString
	KindInt      = record.KindInt
	KindFloat    = record.KindFloat
	KindBool     = record.KindBool
	KindDateTime = record.KindDateTime
)

// Column constructors.
var (
	StringColumn   = record.String
	IntColumn      = record.Int
	FloatColumn    = record.Float
	BoolColumn     = record.Bool
	DateTimeColumn = record.DateTime

	NewSchema           = record.NewSchema
	NewFixedWidthSchema = record.NewFixedWidthSchema
)

// Parsers and their surface.
type (
	RecordParser       = parser.RecordParser
	FixedLength        = parser.FixedLength
	Delimited          = parser.Delimited
	FixedLengthOptions = parser.FixedLengthOptions
	DelimitedOptions   = parser.DelimitedOptions
	ParseError         = parser.ParseError
)

var (
	NewFixedLength = parser.NewFixedLength
	NewDelimited   = parser.NewDelimited
)

// Error taxonomy re-exports.
var (
	ErrNoStream      = parser.ErrNoStream
	ErrNoSchema      = parser.ErrNoSchema
	ErrBadSeparator  = parser.ErrBadSeparator
	ErrNotRead       = parser.ErrNotRead
	ErrNoMoreRecords = parser.ErrNoMoreRecords
	ErrPoisoned      = parser.ErrPoisoned
	ErrDisposed      = parser.ErrDisposed
	ErrRecordLength  = parser.ErrRecordLength
	ErrFieldCount    = parser.ErrFieldCount

	ErrDuplicateColumn = record.ErrDuplicateColumn
)

// Collaborators.
type (
	Cursor     = cursor.Cursor
	Table      = table.Table
	FileConfig = config.FileConfig
)

var (
	NewCursor  = cursor.New
	LoadTable  = table.Load
	LoadConfig = config.Load
)

// OpenFixedLengthFile opens path and binds a fixed-length parser to
// it. The parser owns the file; Close releases it.
func OpenFixedLengthFile(path string, schema *FixedWidthSchema, opts FixedLengthOptions) (*FixedLength, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flatfile: open %s: %w", path, err)
	}
	p, err := parser.NewFixedLength(f, schema, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return p, nil
}

// OpenDelimitedFile opens path and binds a delimited parser to it.
// The parser owns the file; Close releases it.
func OpenDelimitedFile(path string, schema *Schema, opts DelimitedOptions) (*Delimited, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flatfile: open %s: %w", path, err)
	}
	p, err := parser.NewDelimited(f, schema, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return p, nil
}
