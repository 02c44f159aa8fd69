package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestOpenFixedLengthFile(t *testing.T) {
	schema := &FixedWidthSchema{}
	require.NoError(t, schema.AddColumn(IntColumn("id"), 5))
	require.NoError(t, schema.AddColumn(StringColumn("name"), 8))

	path := writeFile(t, "people.txt", "___42bob_____\n___77carol___\n")
	p, err := OpenFixedLengthFile(path, schema, FixedLengthOptions{FillChar: '_'})
	require.NoError(t, err)
	defer p.Close()

	tbl, err := LoadTable(p)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.NumRows())

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(42), "bob"}, row)
}

func TestOpenDelimitedFile_HeaderSchema(t *testing.T) {
	path := writeFile(t, "people.csv", "name,city\nalice,\"Porto, PT\"\n")
	p, err := OpenDelimitedFile(path, nil, DelimitedOptions{FirstRecordIsSchema: true})
	require.NoError(t, err)
	defer p.Close()

	c, err := NewCursor(p)
	require.NoError(t, err)

	ok, err := c.Read()
	require.NoError(t, err)
	require.True(t, ok)

	i, err := c.Ordinal("city")
	require.NoError(t, err)
	city, err := c.String(i)
	require.NoError(t, err)
	assert.Equal(t, "Porto, PT", city)
}

func TestOpenFixedLengthFile_MissingFile(t *testing.T) {
	schema := &FixedWidthSchema{}
	require.NoError(t, schema.AddColumn(StringColumn("x"), 1))

	_, err := OpenFixedLengthFile(filepath.Join(t.TempDir(), "absent.txt"), schema, FixedLengthOptions{})
	require.Error(t, err)
}

func TestOpenDelimitedFile_ClosesFileOnBadOptions(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n")
	_, err := OpenDelimitedFile(path, nil, DelimitedOptions{Separator: `"`, FirstRecordIsSchema: true})
	require.ErrorIs(t, err, ErrBadSeparator)
}
