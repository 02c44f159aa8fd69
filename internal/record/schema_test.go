package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTestSchema builds a simple schema used across tests.
func makeTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema(
		Int("id"),
		String("name"),
		Bool("active"),
	)
	require.NoError(t, err)
	return s
}

func TestSchema_AddColumn_RejectsDuplicateName(t *testing.T) {
	s := makeTestSchema(t)

	err := s.AddColumn(String("id"))
	require.ErrorIs(t, err, ErrDuplicateColumn)
	assert.Equal(t, 3, s.NumCols())
}

func TestSchema_Ordinal(t *testing.T) {
	s := makeTestSchema(t)

	assert.Equal(t, 0, s.Ordinal("id"))
	assert.Equal(t, 2, s.Ordinal("active"))
	assert.Equal(t, -1, s.Ordinal("missing"))
}

func TestSchema_Columns_ReturnsCopy(t *testing.T) {
	s := makeTestSchema(t)

	cols := s.Columns()
	cols[0].Name = "mutated"
	assert.Equal(t, "id", s.Column(0).Name)
}

func TestSchema_ParseValues(t *testing.T) {
	s := makeTestSchema(t)

	values, err := s.ParseValues([]string{"42", "alice", "true"})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, int64(42), values[0])
	assert.Equal(t, "alice", values[1])
	assert.Equal(t, true, values[2])
}

func TestSchema_ParseValues_NullFields(t *testing.T) {
	s := makeTestSchema(t)

	values, err := s.ParseValues([]string{"", "bob", "  "})
	require.NoError(t, err)
	assert.Nil(t, values[0])
	assert.Equal(t, "bob", values[1])
	assert.Nil(t, values[2])
}

func TestSchema_ParseValues_LengthContract(t *testing.T) {
	s := makeTestSchema(t)

	_, err := s.ParseValues([]string{"1", "x"})
	require.ErrorIs(t, err, ErrFieldMismatch)
}

func TestSchema_ParseValues_PropagatesFirstConversionError(t *testing.T) {
	s := makeTestSchema(t)

	_, err := s.ParseValues([]string{"nope", "x", "also-bad"})
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "id", convErr.Column)
}

func TestFixedWidthSchema_TotalWidthIsSumOfWidths(t *testing.T) {
	s := &FixedWidthSchema{}
	require.NoError(t, s.AddColumn(Int("id"), 5))
	require.NoError(t, s.AddColumn(String("name"), 10))
	require.NoError(t, s.AddColumn(Bool("active"), 6))

	assert.Equal(t, 21, s.TotalWidth())
	assert.Equal(t, []int{5, 10, 6}, s.Widths())
}

func TestFixedWidthSchema_RejectsNonPositiveWidth(t *testing.T) {
	s := &FixedWidthSchema{}
	require.ErrorIs(t, s.AddColumn(Int("id"), 0), ErrBadWidth)
	require.ErrorIs(t, s.AddColumn(Int("id"), -3), ErrBadWidth)
	assert.Equal(t, 0, s.TotalWidth())
}

func TestFixedWidthSchema_DuplicateNameLeavesWidthsUntouched(t *testing.T) {
	s := &FixedWidthSchema{}
	require.NoError(t, s.AddColumn(Int("id"), 5))
	require.ErrorIs(t, s.AddColumn(String("id"), 4), ErrDuplicateColumn)

	assert.Equal(t, 5, s.TotalWidth())
	assert.Equal(t, []int{5}, s.Widths())
}

func TestNewFixedWidthSchema_PairsColumnsAndWidths(t *testing.T) {
	s, err := NewFixedWidthSchema(
		[]Column{Int("id"), String("name")},
		[]int{3, 7},
	)
	require.NoError(t, err)
	assert.Equal(t, 10, s.TotalWidth())

	_, err = NewFixedWidthSchema([]Column{Int("id")}, []int{3, 7})
	require.Error(t, err)
}
