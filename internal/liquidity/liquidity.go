// Package liquidity implements the manager liquidity view: a two-state
// sorted table with a per-row discrepancy indicator and aggregate summary
// statistics over the full dataset.
package liquidity

import (
	"math"
	"net/url"
	"sort"
	"strings"

	"kickboard.kickmetrics.org/internal/format"
	"kickboard.kickmetrics.org/internal/models"
	"kickboard.kickmetrics.org/internal/utils"
)

// DiscrepancyTolerance absorbs floating-point noise between the
// dashboard-reported and independently calculated team values. A row is
// flagged only when the absolute difference strictly exceeds this.
const DiscrepancyTolerance = 0.01

// Sort is the liquidity table sort state. Unlike the player table there
// is no unsorted state; the table always has an active column.
type Sort struct {
	Key        string
	Descending bool
}

// DefaultSort is the initial table order: manager name, ascending.
func DefaultSort() Sort {
	return Sort{Key: models.ManagerColName}
}

// Toggle flips the direction for a click on the active column and resets
// to ascending on a new column.
func (s Sort) Toggle(key string) Sort {
	if s.Key == key {
		return Sort{Key: key, Descending: !s.Descending}
	}
	return Sort{Key: key}
}

// SortFromValues builds the sort state from request query parameters,
// falling back to the default order. Direction accepts asc/desc.
func SortFromValues(values url.Values) (Sort, map[string][]string) {
	key := values.Get("sortKey")
	if err := utils.ValidateSortKey(key); err != nil {
		return Sort{}, map[string][]string{"sortKey": {err.Error()}}
	}
	if key == "" {
		key = models.ManagerColName
	}

	return Sort{
		Key:        key,
		Descending: strings.TrimSpace(values.Get("sortDir")) == "desc",
	}, nil
}

// SortRecords returns a new slice ordered by the sort state. The manager
// name column compares as a case-sensitive string; every other column is
// numeric with unparseable or absent cells counting as 0.
func SortRecords(records []models.Record, s Sort) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)

	less := func(a, b models.Record) bool {
		if s.Key == models.ManagerColName {
			return a.Field(s.Key) < b.Field(s.Key)
		}
		return a.FloatOr(s.Key, 0) < b.FloatOr(s.Key, 0)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// Discrepancy is the absolute difference between the dashboard-reported
// and independently calculated team values.
func Discrepancy(r models.Record) float64 {
	dashboard := r.FloatOr(models.ManagerColTeamValueDashboard, 0)
	calculated := r.FloatOr(models.ManagerColTeamValueCalc, 0)
	return math.Abs(dashboard - calculated)
}

// IsFlagged reports whether a row's discrepancy exceeds the tolerance.
func IsFlagged(r models.Record) bool {
	return Discrepancy(r) > DiscrepancyTolerance
}

// ManagerRow is the display form of one manager record. Flagged rows show
// the calculated team value alongside the dashboard value.
type ManagerRow struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	TeamValueDashboard  string `json:"teamValueDashboard"`
	TeamValueCalculated string `json:"teamValueCalculated"`
	Flagged             bool   `json:"flagged"`
	ProfitTaken         string `json:"profitTaken"`
	UnrealizedPnL       string `json:"unrealizedProfitLoss"`
	BankBalance         string `json:"bankBalance"`
	AvailableLiquidity  string `json:"availableLiquidity"`
}

// NewManagerRow builds the display row for a manager record.
func NewManagerRow(r models.Record) ManagerRow {
	return ManagerRow{
		ID:                  r.Field(models.ManagerColID),
		Name:                r.Field(models.ManagerColName),
		TeamValueDashboard:  euroCell(r, models.ManagerColTeamValueDashboard),
		TeamValueCalculated: euroCell(r, models.ManagerColTeamValueCalc),
		Flagged:             IsFlagged(r),
		ProfitTaken:         euroCell(r, models.ManagerColProfitTaken),
		UnrealizedPnL:       euroCell(r, models.ManagerColUnrealizedPnL),
		BankBalance:         euroCell(r, models.ManagerColBankBalance),
		AvailableLiquidity:  euroCell(r, models.ManagerColLiquidity),
	}
}

// NewManagerRows maps records to display rows, preserving order.
func NewManagerRows(records []models.Record) []ManagerRow {
	rows := make([]ManagerRow, len(records))
	for i, r := range records {
		rows[i] = NewManagerRow(r)
	}
	return rows
}

func euroCell(r models.Record, key string) string {
	if v, ok := r.Float(key); ok {
		return format.Euro(v)
	}
	return format.Placeholder
}

// Summary holds the aggregate panel over the full unfiltered dataset.
// Means and the sum treat non-numeric cells as 0; an empty dataset renders
// placeholders instead of faulting on the zero division.
type Summary struct {
	ManagerCount           int    `json:"managerCount"`
	MeanBankBalance        string `json:"meanBankBalance"`
	MeanAvailableLiquidity string `json:"meanAvailableLiquidity"`
	TotalTeamValue         string `json:"totalTeamValue"`
}

// Summarize computes the aggregate panel.
func Summarize(records []models.Record) Summary {
	if len(records) == 0 {
		return Summary{
			MeanBankBalance:        format.Placeholder,
			MeanAvailableLiquidity: format.Placeholder,
			TotalTeamValue:         format.Placeholder,
		}
	}

	var bank, liquid, teamValue float64
	for _, r := range records {
		bank += r.FloatOr(models.ManagerColBankBalance, 0)
		liquid += r.FloatOr(models.ManagerColLiquidity, 0)
		teamValue += r.FloatOr(models.ManagerColTeamValueDashboard, 0)
	}

	n := float64(len(records))
	return Summary{
		ManagerCount:           len(records),
		MeanBankBalance:        format.Euro(bank / n),
		MeanAvailableLiquidity: format.Euro(liquid / n),
		TotalTeamValue:         format.Euro(teamValue),
	}
}
