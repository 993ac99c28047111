package liquidity

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kickboard.kickmetrics.org/internal/format"
	"kickboard.kickmetrics.org/internal/models"
)

func testManagers() []models.Record {
	return []models.Record{
		{"manager_id": "3", "manager_name": "Clara", "team_value_dashboard": "42000000", "team_value_calculated": "42000000", "bank_balance": "2000000", "available_liquidity": "8000000"},
		{"manager_id": "1", "manager_name": "anton", "team_value_dashboard": "38000000", "team_value_calculated": "38000000.02", "bank_balance": "1000000", "available_liquidity": "4000000"},
		{"manager_id": "2", "manager_name": "Ben", "team_value_dashboard": "9000000", "team_value_calculated": "9000000", "bank_balance": "", "available_liquidity": "1000000"},
	}
}

func names(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Field(models.ManagerColName)
	}
	return out
}

func TestDefaultSortIsNameAscending(t *testing.T) {
	s := DefaultSort()
	assert.Equal(t, models.ManagerColName, s.Key)
	assert.False(t, s.Descending)
}

func TestNameColumnSortsAsCaseSensitiveString(t *testing.T) {
	sorted := SortRecords(testManagers(), DefaultSort())
	// Byte-wise compare puts uppercase before lowercase.
	assert.Equal(t, []string{"Ben", "Clara", "anton"}, names(sorted))
}

func TestNumericColumnsDefaultUnparseableToZero(t *testing.T) {
	sorted := SortRecords(testManagers(), Sort{Key: models.ManagerColBankBalance})
	// Ben's blank bank balance counts as 0 and sorts first.
	assert.Equal(t, []string{"Ben", "anton", "Clara"}, names(sorted))
}

func TestSortRecordsDescending(t *testing.T) {
	sorted := SortRecords(testManagers(), Sort{Key: models.ManagerColTeamValueDashboard, Descending: true})
	assert.Equal(t, []string{"Clara", "anton", "Ben"}, names(sorted))
}

func TestSortRecordsDoesNotMutateInput(t *testing.T) {
	records := testManagers()
	SortRecords(records, Sort{Key: models.ManagerColTeamValueDashboard, Descending: true})
	assert.Equal(t, []string{"Clara", "anton", "Ben"}, names(records))
}

func TestToggleFlipsSameColumnAndResetsNewColumn(t *testing.T) {
	s := DefaultSort()
	s = s.Toggle(models.ManagerColName)
	assert.True(t, s.Descending)

	s = s.Toggle(models.ManagerColBankBalance)
	assert.Equal(t, Sort{Key: models.ManagerColBankBalance}, s)
}

func TestDiscrepancyFlagIsStrict(t *testing.T) {
	flagged := models.Record{
		"team_value_dashboard":  "100.00",
		"team_value_calculated": "100.02",
	}
	assert.InDelta(t, 0.02, Discrepancy(flagged), 1e-9)
	assert.True(t, IsFlagged(flagged))

	atTolerance := models.Record{
		"team_value_dashboard":  "100.00",
		"team_value_calculated": "100.01",
	}
	assert.False(t, IsFlagged(atTolerance), "diff of exactly 0.01 must not flag")

	clean := models.Record{
		"team_value_dashboard":  "100.00",
		"team_value_calculated": "100.00",
	}
	assert.False(t, IsFlagged(clean))
}

func TestNewManagerRowCarriesCalculatedValueForFlaggedRows(t *testing.T) {
	row := NewManagerRow(models.Record{
		"manager_id":            "1",
		"manager_name":          "anton",
		"team_value_dashboard":  "38000000",
		"team_value_calculated": "38500000",
		"bank_balance":          "1500",
	})

	assert.True(t, row.Flagged)
	assert.Equal(t, "€38.00M", row.TeamValueDashboard)
	assert.Equal(t, "€38.50M", row.TeamValueCalculated)
	assert.Equal(t, "€1.5K", row.BankBalance)
	assert.Equal(t, format.Placeholder, row.ProfitTaken)
}

func TestSummarize(t *testing.T) {
	s := Summarize(testManagers())

	assert.Equal(t, 3, s.ManagerCount)
	// (2M + 1M + 0) / 3
	assert.Equal(t, "€1.00M", s.MeanBankBalance)
	// (8M + 4M + 1M) / 3
	assert.Equal(t, "€4.33M", s.MeanAvailableLiquidity)
	// 42M + 38M + 9M
	assert.Equal(t, "€89.00M", s.TotalTeamValue)
}

func TestSummarizeEmptySetRendersPlaceholders(t *testing.T) {
	var s Summary
	require.NotPanics(t, func() {
		s = Summarize(nil)
	})

	assert.Zero(t, s.ManagerCount)
	assert.Equal(t, format.Placeholder, s.MeanBankBalance)
	assert.Equal(t, format.Placeholder, s.MeanAvailableLiquidity)
	assert.Equal(t, format.Placeholder, s.TotalTeamValue)
}

func TestSortFromValues(t *testing.T) {
	s, fieldErrors := SortFromValues(url.Values{})
	require.Empty(t, fieldErrors)
	assert.Equal(t, DefaultSort(), s)

	s, fieldErrors = SortFromValues(url.Values{"sortKey": {"bank_balance"}, "sortDir": {"desc"}})
	require.Empty(t, fieldErrors)
	assert.Equal(t, Sort{Key: "bank_balance", Descending: true}, s)

	_, fieldErrors = SortFromValues(url.Values{"sortKey": {"bank;balance"}})
	assert.Contains(t, fieldErrors, "sortKey")
}
