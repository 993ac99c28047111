package market

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kickboard.kickmetrics.org/internal/models"
)

// Direction is the state of a column sort. Clicking a column header cycles
// ascending, descending, then back to unsorted.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionAscending
	DirectionDescending
)

// ParseDirection maps the wire form of a sort direction to its state.
// Unknown values fall back to unsorted rather than erroring; the sort is a
// refinement of an already-valid view, never a reason to reject it.
func ParseDirection(raw string) Direction {
	switch strings.TrimSpace(raw) {
	case "asc", "ascending":
		return DirectionAscending
	case "desc", "descending":
		return DirectionDescending
	}
	return DirectionNone
}

// String returns the wire form of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	}
	return "none"
}

// Sort is a single active sort column plus its direction.
type Sort struct {
	Key       string
	Direction Direction
}

// Cycle advances the sort state for a click on the given column header:
// ascending, then descending, then unsorted. Clicking a different column
// restarts at ascending on that column.
func (s Sort) Cycle(key string) Sort {
	if s.Key != key {
		return Sort{Key: key, Direction: DirectionAscending}
	}

	switch s.Direction {
	case DirectionAscending:
		return Sort{Key: key, Direction: DirectionDescending}
	case DirectionDescending:
		return Sort{}
	}
	return Sort{Key: key, Direction: DirectionAscending}
}

// SortRecords returns a new slice ordered by the sort state. The input is
// never reordered in place, and an unsorted state preserves the input
// order exactly.
func SortRecords(records []models.Record, s Sort) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)

	if s.Direction == DirectionNone || s.Key == "" {
		return out
	}

	cmp := newComparer()
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp.compare(out[i].Field(s.Key), out[j].Field(s.Key))
		if s.Direction == DirectionDescending {
			return c > 0
		}
		return c < 0
	})

	return out
}

// comparer orders cells numerically when both sides parse as numbers and
// falls back to a collated, case-sensitive string comparison otherwise.
// Collators are stateful, so each sort gets its own.
type comparer struct {
	collator *collate.Collator
}

func newComparer() comparer {
	return comparer{collator: collate.New(language.Und)}
}

func (c comparer) compare(a, b string) int {
	av, aerr := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bv, berr := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if aerr == nil && berr == nil {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}

	return c.collator.CompareString(a, b)
}
