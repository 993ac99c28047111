package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableHeaderKeysRows(t *testing.T) {
	data := []byte("i,fn,ln,mv\n10,Robert,Lewandowski,38000000\n4,Manuel,Neuer,9000000\n")

	records, err := ParseTable(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Robert", records[0].Field("fn"))
	assert.Equal(t, "Lewandowski", records[0].Field("ln"))
	assert.Equal(t, "4", records[1].Field("i"))

	mv, ok := records[0].Float("mv")
	require.True(t, ok)
	assert.Equal(t, 38_000_000.0, mv)
}

func TestParseTableSkipsBlankLines(t *testing.T) {
	data := []byte("i,fn\n\n10,Robert\n\n\n4,Manuel\n")

	records, err := ParseTable(data)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseTablePadsShortRows(t *testing.T) {
	data := []byte("i,fn,ln,mv\n10,Robert\n")

	records, err := ParseTable(data)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Missing trailing cells become empty values, not an error.
	assert.Equal(t, "Robert", records[0].Field("fn"))
	assert.Equal(t, "", records[0].Field("ln"))
	assert.Equal(t, "", records[0].Field("mv"))

	_, ok := records[0].Float("mv")
	assert.False(t, ok)
}

func TestParseTableToleratesExtraColumns(t *testing.T) {
	data := []byte("i,fn,custom_col\n10,Robert,extra\n")

	records, err := ParseTable(data)
	require.NoError(t, err)
	assert.Equal(t, "extra", records[0].Field("custom_col"))
}

func TestParseTableQuotedCells(t *testing.T) {
	data := []byte("i,tn\n10,\"Borussia, Dortmund\"\n")

	records, err := ParseTable(data)
	require.NoError(t, err)
	assert.Equal(t, "Borussia, Dortmund", records[0].Field("tn"))
}

func TestParseTableMalformedQuoting(t *testing.T) {
	data := []byte("i,fn\n10,\"broken\n")

	records, err := ParseTable(data)
	assert.ErrorIs(t, err, ErrMalformed)
	// No partially populated table on the side.
	assert.Nil(t, records)
}

func TestParseTableEmptyInput(t *testing.T) {
	_, err := ParseTable(nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseTableHeaderOnly(t *testing.T) {
	records, err := ParseTable([]byte("i,fn,ln\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
