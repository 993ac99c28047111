package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearch(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantErr bool
	}{
		{"empty term is allowed", "", false},
		{"plain name", "lewandowski", false},
		{"name with space", "bayern münchen", false},
		{"term at limit", strings.Repeat("a", 200), false},
		{"term too long", strings.Repeat("a", 201), true},
		{"html angle brackets", "<script>", true},
		{"sql comment", "x--", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSearch(tt.term)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	for _, valid := range []string{"all", "1", "2", "3", "4"} {
		pos, err := ParsePosition(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, pos)
	}

	pos, err := ParsePosition("")
	require.NoError(t, err)
	assert.Equal(t, "all", pos)

	pos, err = ParsePosition("  2  ")
	require.NoError(t, err)
	assert.Equal(t, "2", pos)

	_, err = ParsePosition("5")
	assert.Error(t, err)

	_, err = ParsePosition("goalkeeper")
	assert.Error(t, err)
}

func TestParseMinValue(t *testing.T) {
	v, err := ParseMinValue("")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = ParseMinValue("25000000")
	require.NoError(t, err)
	assert.Equal(t, 25_000_000.0, v)

	v, err = ParseMinValue("50000000")
	require.NoError(t, err)
	assert.Equal(t, 50_000_000.0, v)

	_, err = ParseMinValue("-1")
	assert.Error(t, err)

	_, err = ParseMinValue("50000001")
	assert.Error(t, err)

	_, err = ParseMinValue("lots")
	assert.Error(t, err)
}

func TestValidateSortKey(t *testing.T) {
	assert.NoError(t, ValidateSortKey(""))
	assert.NoError(t, ValidateSortKey("mv"))
	assert.NoError(t, ValidateSortKey("fair_market_value"))
	assert.Error(t, ValidateSortKey("mv;drop"))
	assert.Error(t, ValidateSortKey("a b"))
}
