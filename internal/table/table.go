// Package table copies parsed records into a plain in-memory table.
package table

import (
	"fmt"

	"github.com/tuannm99/flatfile/internal/parser"
	"github.com/tuannm99/flatfile/internal/record"
)

// Table holds every record of a flat file after a full read.
type Table struct {
	cols []record.Column
	rows [][]any
}

// Load drains p into a table. The parser is left at end of input (or
// poisoned, in which case the error is returned); it is not closed.
func Load(p parser.RecordParser) (*Table, error) {
	s, err := p.Schema()
	if err != nil {
		return nil, err
	}
	t := &Table{cols: s.Columns()}
	for {
		ok, err := p.Read()
		if err != nil {
			return nil, err
		}
		if !ok {
			return t, nil
		}
		row, err := p.Values()
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, row)
	}
}

// NumRows returns the record count.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the column definitions in schema order.
func (t *Table) Columns() []record.Column {
	out := make([]record.Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Row returns the values of record i (0-based).
func (t *Table) Row(i int) ([]any, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("table: row %d out of range [0,%d)", i, len(t.rows))
	}
	out := make([]any, len(t.rows[i]))
	copy(out, t.rows[i])
	return out, nil
}

// Cell returns the value at record i, column j.
func (t *Table) Cell(i, j int) (any, error) {
	row, err := t.Row(i)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= len(row) {
		return nil, fmt.Errorf("table: column %d out of range [0,%d)", j, len(row))
	}
	return row[j], nil
}
