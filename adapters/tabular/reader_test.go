package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimstat/domain/core"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTableReader_ReadCSV(t *testing.T) {
	path := writeTempCSV(t, "A,B,C\n1,x,2.5\n3,y,4.5\n")

	table, err := NewTableReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, table.Headers)
	assert.Equal(t, 2, table.Len())

	a, err := table.NumericColumn("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, a)

	b, err := table.StringColumn("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, b)
}

func TestTableReader_MissingFile(t *testing.T) {
	_, err := NewTableReader(filepath.Join(t.TempDir(), "nope.csv")).Read()
	if !errors.Is(err, core.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestTableReader_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "A,B\n")
	_, err := NewTableReader(path).Read()
	assert.True(t, errors.Is(err, core.ErrDataFormat))
}

func TestTableReader_RaggedRows(t *testing.T) {
	path := writeTempCSV(t, "A,B\n1,2\n3\n")
	_, err := NewTableReader(path).Read()
	assert.True(t, errors.Is(err, core.ErrDataFormat))
}

func TestTable_NumericCoercionFailure(t *testing.T) {
	path := writeTempCSV(t, "A,B\n1,abc\n")
	table, err := NewTableReader(path).Read()
	require.NoError(t, err)

	_, err = table.NumericColumn("B")
	if !errors.Is(err, core.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestTable_ColumnNotFound(t *testing.T) {
	path := writeTempCSV(t, "A\n1\n")
	table, err := NewTableReader(path).Read()
	require.NoError(t, err)

	_, err = table.NumericColumn("Missing")
	assert.True(t, errors.Is(err, core.ErrColumnNotFound))

	err = table.RequireColumns("A", "Missing")
	assert.True(t, errors.Is(err, core.ErrColumnNotFound))
}

func TestNewTable_DuplicateHeader(t *testing.T) {
	_, err := NewTable("t", []string{"A", "A"}, nil)
	assert.True(t, errors.Is(err, core.ErrDataFormat))
}

func TestTable_GroupBy(t *testing.T) {
	table, err := NewTable("t",
		[]string{"Dept", "Amount"},
		[][]string{
			{"Onc", "100"},
			{"Card", "200"},
			{"Onc", "300"},
		})
	require.NoError(t, err)

	names, groups, err := table.GroupBy("Dept", "Amount")
	require.NoError(t, err)

	// first-appearance order
	assert.Equal(t, []string{"Onc", "Card"}, names)
	assert.Equal(t, [][]float64{{100, 300}, {200}}, groups)
}
