// Package cursor exposes typed per-column accessors over a record
// parser, in the manner of a database result cursor.
package cursor

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/tuannm99/flatfile/internal/parser"
	"github.com/tuannm99/flatfile/internal/record"
)

var (
	ErrBadOrdinal = errors.New("cursor: column ordinal out of range")
	ErrNullValue  = errors.New("cursor: value is null")
)

// Cursor wraps a RecordParser and caches the current record so each
// column can be pulled out with a typed accessor. It inherits the
// parser's state machine and error taxonomy.
type Cursor struct {
	p   parser.RecordParser
	row []any
}

// New wraps p. The cursor takes over ownership of the parser; closing
// the cursor closes the parser.
func New(p parser.RecordParser) (*Cursor, error) {
	if p == nil {
		return nil, parser.ErrNoStream
	}
	return &Cursor{p: p}, nil
}

// Schema returns the parser's schema.
func (c *Cursor) Schema() (*record.Schema, error) { return c.p.Schema() }

// Read advances to the next record and caches its values.
func (c *Cursor) Read() (bool, error) {
	ok, err := c.p.Read()
	if err != nil || !ok {
		c.row = nil
		return ok, err
	}
	c.row, err = c.p.Values()
	if err != nil {
		return false, err
	}
	return true, nil
}

// Ordinal returns the position of the named column, or -1.
func (c *Cursor) Ordinal(name string) (int, error) {
	s, err := c.p.Schema()
	if err != nil {
		return -1, err
	}
	return s.Ordinal(name), nil
}

// Close releases the wrapped parser.
func (c *Cursor) Close() error {
	c.row = nil
	return c.p.Close()
}

// Value returns the raw typed value at column i; nil for null fields.
func (c *Cursor) Value(i int) (any, error) {
	if c.row == nil {
		// Delegate so the caller sees the parser's state error.
		row, err := c.p.Values()
		if err != nil {
			return nil, err
		}
		c.row = row
	}
	if i < 0 || i >= len(c.row) {
		return nil, fmt.Errorf("%w: %d", ErrBadOrdinal, i)
	}
	return c.row[i], nil
}

// IsNull reports whether the value at column i is null.
func (c *Cursor) IsNull(i int) (bool, error) {
	v, err := c.Value(i)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

func (c *Cursor) nonNull(i int) (any, error) {
	v, err := c.Value(i)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: column %d", ErrNullValue, i)
	}
	return v, nil
}

// String returns the value at column i coerced to a string.
func (c *Cursor) String(i int) (string, error) {
	v, err := c.nonNull(i)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

// Int64 returns the value at column i coerced to an int64.
func (c *Cursor) Int64(i int) (int64, error) {
	v, err := c.nonNull(i)
	if err != nil {
		return 0, err
	}
	return cast.ToInt64E(v)
}

// Float64 returns the value at column i coerced to a float64.
func (c *Cursor) Float64(i int) (float64, error) {
	v, err := c.nonNull(i)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// Bool returns the value at column i coerced to a bool.
func (c *Cursor) Bool(i int) (bool, error) {
	v, err := c.nonNull(i)
	if err != nil {
		return false, err
	}
	return cast.ToBoolE(v)
}

// Time returns the value at column i coerced to a time.Time.
func (c *Cursor) Time(i int) (time.Time, error) {
	v, err := c.nonNull(i)
	if err != nil {
		return time.Time{}, err
	}
	return cast.ToTimeE(v)
}
