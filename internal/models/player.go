package models

import "kickboard.kickmetrics.org/internal/format"

// PlayerRow is the display form of one player record: raw identity fields
// plus formatted monetary columns.
type PlayerRow struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Team          string `json:"team"`
	Position      string `json:"position"`
	PositionName  string `json:"positionName"`
	AveragePoints string `json:"averagePoints"`
	GamesPlayed   string `json:"gamesPlayed"`
	TotalPoints   string `json:"totalPoints"`
	MarketValue   string `json:"marketValue"`
	FairValue     string `json:"fairValue"`
	Deviation     string `json:"deviation"`
	DeviationPct  string `json:"deviationPct"`
	// Overvalued marks players whose market value sits below the fair
	// value deviation zero line; the views render negative deviations in
	// a distinct color.
	DeviationNegative bool `json:"deviationNegative"`
}

// NewPlayerRow builds the display row for a player record. Monetary cells
// that do not parse render as the shared placeholder.
func NewPlayerRow(r Record) PlayerRow {
	pos := r.Trimmed(PlayerColPosition)
	row := PlayerRow{
		ID:            r.Field(PlayerColID),
		FirstName:     r.Field(PlayerColFirstName),
		LastName:      r.Field(PlayerColLastName),
		Team:          r.Field(PlayerColTeam),
		Position:      pos,
		PositionName:  PositionName(pos),
		AveragePoints: textOr(r.Field(PlayerColAveragePoints), format.Placeholder),
		GamesPlayed:   textOr(r.Field(PlayerColGamesPlayed), format.Placeholder),
		TotalPoints:   textOr(r.Field(PlayerColTotalPoints), format.Placeholder),
		MarketValue:   euroCell(r, PlayerColMarketValue),
		FairValue:     euroCell(r, PlayerColFairValue),
		Deviation:     euroCell(r, PlayerColDeviation),
	}

	if pct, ok := r.Float(PlayerColDeviationPct); ok {
		row.DeviationPct = format.Percent(pct)
		row.DeviationNegative = pct < 0
	} else {
		row.DeviationPct = format.Placeholder
	}

	return row
}

// NewPlayerRows maps records to display rows, preserving order.
func NewPlayerRows(records []Record) []PlayerRow {
	rows := make([]PlayerRow, len(records))
	for i, r := range records {
		rows[i] = NewPlayerRow(r)
	}
	return rows
}

func euroCell(r Record, key string) string {
	if v, ok := r.Float(key); ok {
		return format.Euro(v)
	}
	return format.Placeholder
}

func textOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
