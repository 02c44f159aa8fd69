package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/flatfile/internal/parser"
	"github.com/tuannm99/flatfile/internal/record"
)

func makeParser(t *testing.T, input string) *parser.Delimited {
	t.Helper()
	schema, err := record.NewSchema(record.Int("id"), record.String("name"))
	require.NoError(t, err)

	p, err := parser.NewDelimited(strings.NewReader(input), schema, parser.DelimitedOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestLoad_CopiesAllRecords(t *testing.T) {
	p := makeParser(t, "1,alice\n2,bob\n3,\n")

	tbl, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "alice"}, row)

	cell, err := tbl.Cell(2, 1)
	require.NoError(t, err)
	assert.Nil(t, cell)
}

func TestLoad_EmptyInput(t *testing.T) {
	p := makeParser(t, "")

	tbl, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestLoad_PropagatesParseError(t *testing.T) {
	p := makeParser(t, "1,alice\nnope,bob\n")

	_, err := Load(p)
	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Record)
}

func TestTable_RowAndCellBounds(t *testing.T) {
	p := makeParser(t, "1,alice\n")

	tbl, err := Load(p)
	require.NoError(t, err)

	_, err = tbl.Row(1)
	require.Error(t, err)
	_, err = tbl.Cell(0, 2)
	require.Error(t, err)
}

func TestTable_ColumnsMatchSchemaOrder(t *testing.T) {
	p := makeParser(t, "")

	tbl, err := Load(p)
	require.NoError(t, err)

	cols := tbl.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Name)
	assert.Equal(t, "name", cols[1].Name)
}
