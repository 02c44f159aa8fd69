package record

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateColumn = errors.New("record: duplicate column name")
	ErrBadWidth        = errors.New("record: column width must be positive")
	ErrFieldMismatch   = errors.New("record: raw field count does not match column count")
)

// Schema is an ordered, name-unique sequence of columns. Build it once
// before parsing; it is read-only afterwards.
type Schema struct {
	cols  []Column
	index map[string]int
}

// NewSchema builds a schema from cols, rejecting duplicate names.
func NewSchema(cols ...Column) (*Schema, error) {
	s := &Schema{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := s.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddColumn appends c, failing if a column with the same name exists.
func (s *Schema) AddColumn(c Column) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[c.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
	}
	s.index[c.Name] = len(s.cols)
	s.cols = append(s.cols, c)
	return nil
}

// NumCols returns the column count.
func (s *Schema) NumCols() int { return len(s.cols) }

// Columns returns a copy of the column sequence in schema order.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.cols))
	copy(out, s.cols)
	return out
}

// Column returns the column at position i.
func (s *Schema) Column(i int) Column { return s.cols[i] }

// Ordinal returns the position of the named column, or -1.
func (s *Schema) Ordinal(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// ParseValues converts raw fields element-wise in column order.
// len(raw) must equal NumCols; a mismatch is a caller-contract
// violation reported as ErrFieldMismatch. The first conversion
// failure aborts the row.
func (s *Schema) ParseValues(raw []string) ([]any, error) {
	if len(raw) != len(s.cols) {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrFieldMismatch, len(raw), len(s.cols))
	}
	values := make([]any, len(raw))
	for i, c := range s.cols {
		v, err := c.Parse(raw[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// FixedWidthSchema pairs each column with a character width.
// TotalWidth is the exact line length a fixed-length record must have.
type FixedWidthSchema struct {
	Schema
	widths []int
	total  int
}

// NewFixedWidthSchema builds a fixed-width schema from column/width
// pairs; len(widths) must equal len(cols).
func NewFixedWidthSchema(cols []Column, widths []int) (*FixedWidthSchema, error) {
	if len(cols) != len(widths) {
		return nil, fmt.Errorf("record: got %d columns but %d widths", len(cols), len(widths))
	}
	s := &FixedWidthSchema{}
	for i, c := range cols {
		if err := s.AddColumn(c, widths[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddColumn appends c with its width, keeping columns and widths
// positionally paired.
func (s *FixedWidthSchema) AddColumn(c Column, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: column %q has width %d", ErrBadWidth, c.Name, width)
	}
	if err := s.Schema.AddColumn(c); err != nil {
		return err
	}
	s.widths = append(s.widths, width)
	s.total += width
	return nil
}

// TotalWidth returns the sum of all column widths.
func (s *FixedWidthSchema) TotalWidth() int { return s.total }

// Widths returns a copy of the width sequence in schema order.
func (s *FixedWidthSchema) Widths() []int {
	out := make([]int, len(s.widths))
	copy(out, s.widths)
	return out
}
