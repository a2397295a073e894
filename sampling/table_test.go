package sampling_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_CSV persists a factorial design and reads it back typed.
func TestTable_CSV(t *testing.T) {
	table := &sampling.Table{
		Columns: []string{"wwr", "zones", "vented", "glazing"},
		Rows: [][]any{
			{0.25, 2, true, "double"},
			{0.5, 1, false, "triple, argon"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	assert.Equal(t, "wwr,zones,vented,glazing\n0.25,2,true,double\n0.5,1,false,\"triple, argon\"\n", buf.String())

	back, err := sampling.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, back)
}

// TestReadCSV_Errors rejects empty input and ragged rows.
func TestReadCSV_Errors(t *testing.T) {
	_, err := sampling.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, sampling.ErrBadTable)

	_, err = sampling.ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	assert.ErrorIs(t, err, sampling.ErrBadTable)
}

// TestTable_Accessors covers Column, Row and Points.
func TestTable_Accessors(t *testing.T) {
	table := &sampling.Table{Columns: []string{"a", "b"}, Rows: [][]any{{1, "x"}, {2, "y"}}}

	col, ok := table.Column("b")
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, col)
	_, ok = table.Column("c")
	assert.False(t, ok)

	row := table.Row(0)
	row[0] = 99
	assert.Equal(t, 1, table.Rows[0][0], "Row returns a copy")

	points := table.Points()
	require.Len(t, points, 2)
	assert.Equal(t, sampling.Point{{Name: "a", Value: 2}, {Name: "b", Value: "y"}}, points[1])
}
