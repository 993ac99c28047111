// Package market implements the player table pipeline: conjunctive
// filtering over the player dataset followed by a single-column,
// three-state sort. Everything here is pure; source records are never
// mutated and every operation returns a fresh ordering over the same set.
package market

import (
	"net/url"
	"strings"

	"kickboard.kickmetrics.org/internal/models"
	"kickboard.kickmetrics.org/internal/utils"
)

// Query is one complete view configuration for the player table.
type Query struct {
	// Search matches case-insensitively against first name, last name,
	// team name, and position code. Empty means match everything.
	Search string
	// Position is "all" or one of the position codes "1".."4".
	Position string
	// MinValue is the inclusive market-value floor; records whose market
	// value is absent count as 0.
	MinValue float64
	Sort     Sort
}

// QueryFromValues builds a Query from request query parameters, collecting
// per-field validation errors keyed by parameter name.
func QueryFromValues(values url.Values) (Query, map[string][]string) {
	fieldErrors := make(map[string][]string)

	search := values.Get("search")
	if err := utils.ValidateSearch(search); err != nil {
		fieldErrors["search"] = append(fieldErrors["search"], err.Error())
	}

	position, err := utils.ParsePosition(values.Get("position"))
	if err != nil {
		fieldErrors["position"] = append(fieldErrors["position"], err.Error())
	}

	minValue, err := utils.ParseMinValue(values.Get("minValue"))
	if err != nil {
		fieldErrors["minValue"] = append(fieldErrors["minValue"], err.Error())
	}

	sortKey := values.Get("sortKey")
	if err := utils.ValidateSortKey(sortKey); err != nil {
		fieldErrors["sortKey"] = append(fieldErrors["sortKey"], err.Error())
	}

	if len(fieldErrors) > 0 {
		return Query{}, fieldErrors
	}

	return Query{
		Search:   search,
		Position: position,
		MinValue: minValue,
		Sort:     Sort{Key: sortKey, Direction: ParseDirection(values.Get("sortDir"))},
	}, nil
}

// Match reports whether a record passes all three filter predicates.
func (q Query) Match(r models.Record) bool {
	return q.matchSearch(r) && q.matchPosition(r) && q.matchMinValue(r)
}

func (q Query) matchSearch(r models.Record) bool {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	if term == "" {
		return true
	}

	for _, key := range []string{
		models.PlayerColFirstName,
		models.PlayerColLastName,
		models.PlayerColTeam,
		models.PlayerColPosition,
	} {
		if strings.Contains(strings.ToLower(r.Field(key)), term) {
			return true
		}
	}
	return false
}

func (q Query) matchPosition(r models.Record) bool {
	if q.Position == "" || q.Position == "all" {
		return true
	}
	// Compared as canonicalized text, not numerically.
	return r.Trimmed(models.PlayerColPosition) == q.Position
}

func (q Query) matchMinValue(r models.Record) bool {
	return r.FloatOr(models.PlayerColMarketValue, 0) >= q.MinValue
}

// Filter returns the records passing the query's predicates, in input
// order.
func Filter(records []models.Record, q Query) []models.Record {
	var out []models.Record
	for _, r := range records {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Apply runs the full pipeline: filter first, then sort. The result is a
// new slice; the source records keep their ingestion order.
func Apply(records []models.Record, q Query) []models.Record {
	return SortRecords(Filter(records, q), q.Sort)
}
