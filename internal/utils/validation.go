package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bounds for the minimum-market-value filter. The slider in the dashboard
// moves in steps of one million, but the API accepts any value in range.
const (
	MinValueFloor = 0.0
	MinValueCeil  = 50_000_000.0
)

// Compiled regular expressions for validation
var (
	// Sort keys are dataset column names: alphanumeric plus underscore.
	validSortKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateSearch validates a free-text search term. Empty terms are
// allowed; they mean "match everything".
func ValidateSearch(term string) error {
	if term == "" {
		return nil
	}

	if len(term) > 200 {
		return errors.New("search term too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(term) {
		return errors.New("search term contains invalid characters")
	}

	return nil
}

// ParsePosition canonicalizes a position filter value. Empty input means
// "all"; anything outside the known code set is rejected.
func ParsePosition(raw string) (string, error) {
	pos := strings.TrimSpace(raw)
	if pos == "" {
		return "all", nil
	}

	switch pos {
	case "all", "1", "2", "3", "4":
		return pos, nil
	}
	return "", fmt.Errorf("position must be one of all, 1, 2, 3, 4; got %q", raw)
}

// ParseMinValue parses the minimum-market-value threshold. Empty input
// means no threshold.
func ParseMinValue(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("minValue must be a number; got %q", raw)
	}

	if v < MinValueFloor || v > MinValueCeil {
		return 0, fmt.Errorf("minValue must be between %.0f and %.0f", MinValueFloor, MinValueCeil)
	}

	return v, nil
}

// ValidateSortKey validates a sort column name. Empty keys are allowed;
// they mean "no sort".
func ValidateSortKey(key string) error {
	if key == "" {
		return nil
	}

	if len(key) > 100 {
		return errors.New("sort key too long (max 100 characters)")
	}

	if !validSortKeyPattern.MatchString(key) {
		return errors.New("sort key contains invalid characters")
	}

	return nil
}
