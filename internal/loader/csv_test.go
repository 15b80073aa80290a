package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/tablediff/internal/table"
)

func TestReadCSV(t *testing.T) {
	input := "id,name,score\n1,alice,9.5\n2,bob,7\n"

	ds, err := ReadCSV(strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score"}, ds.Columns())
	assert.Equal(t, 2, ds.RowCount())
	assert.True(t, ds.At("id", 0).Equal(table.Number(1)))
	assert.True(t, ds.At("name", 1).Equal(table.Text("bob")))
	assert.True(t, ds.At("score", 0).Equal(table.Number(9.5)))
}

func TestReadCSVColumnTypeInference(t *testing.T) {
	// One non-numeric cell forces the whole column to text, so "1" stays the
	// text "1" rather than the number 1.
	input := "code,active\n1,true\nA2,false\n"

	ds, err := ReadCSV(strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.Equal(t, table.KindText, ds.At("code", 0).Kind())
	assert.True(t, ds.At("code", 0).Equal(table.Text("1")))
	assert.True(t, ds.At("active", 0).Equal(table.Bool(true)))
	assert.True(t, ds.At("active", 1).Equal(table.Bool(false)))
}

func TestReadCSVEmptyCellsBecomeMissing(t *testing.T) {
	input := "id,score\n1,\n2,5\n"

	ds, err := ReadCSV(strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.True(t, ds.At("score", 0).IsMissing())
	assert.True(t, ds.At("score", 1).Equal(table.Number(5)))
}

func TestReadCSVCustomDelimiter(t *testing.T) {
	input := "id;name\n1;alice\n"

	ds, err := ReadCSV(strings.NewReader(input), ';')
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns())
	assert.True(t, ds.At("name", 0).Equal(table.Text("alice")))
}

func TestReadCSVRaggedRowsFail(t *testing.T) {
	input := "id,name\n1,alice\n2\n"

	_, err := ReadCSV(strings.NewReader(input), ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailure))
}

func TestReadCSVEmptyInputFails(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailure))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("id,name\n"), ',')
	require.NoError(t, err)

	assert.Equal(t, 0, ds.RowCount())
	assert.Equal(t, []string{"id", "name"}, ds.Columns())
}

func TestReadCSVFileNotFound(t *testing.T) {
	_, err := ReadCSVFile("/nonexistent/file.csv", ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailure))
}
