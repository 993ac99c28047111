package models

import (
	"strconv"
	"strings"
)

// Record is one parsed CSV row, keyed by the header-declared column names.
// All cells are kept as raw text; numeric meaning is imposed by the caller.
// Records are never mutated after parse.
type Record map[string]string

// Field returns the raw cell for the given column, or "" when absent.
func (r Record) Field(key string) string {
	return r[key]
}

// Float parses the cell as a number. The second return value reports
// whether the cell was present and parseable.
func (r Record) Float(key string) (float64, bool) {
	raw, ok := r[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatOr parses the cell as a number, substituting def for absent or
// unparseable cells.
func (r Record) FloatOr(key string, def float64) float64 {
	if v, ok := r.Float(key); ok {
		return v
	}
	return def
}

// Trimmed returns the cell with surrounding whitespace removed.
func (r Record) Trimmed(key string) string {
	return strings.TrimSpace(r[key])
}
