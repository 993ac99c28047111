package webui

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"kickboard.kickmetrics.org/internal/dataset"
	"kickboard.kickmetrics.org/internal/market"
	"kickboard.kickmetrics.org/internal/models"
)

// columnLink drives one sortable table header: where a click goes and
// which direction indicator to draw.
type columnLink struct {
	Label     string
	Href      string
	Indicator string
}

type playersPage struct {
	Search   string
	Position string
	MinValue float64
	Columns  []columnLink
	Rows     []models.PlayerRow
	Count    int
}

// playerColumns are the sortable player table headers, in display order.
var playerColumns = []struct {
	Key   string
	Label string
}{
	{models.PlayerColLastName, "Name"},
	{models.PlayerColTeam, "Team"},
	{models.PlayerColPosition, "Pos"},
	{models.PlayerColAveragePoints, "Avg points"},
	{models.PlayerColGamesPlayed, "Games"},
	{models.PlayerColTotalPoints, "Total points"},
	{models.PlayerColMarketValue, "Market value"},
	{models.PlayerColFairValue, "Fair value"},
	{models.PlayerColDeviation, "Deviation"},
	{models.PlayerColDeviationPct, "Deviation %"},
}

func (ui *WebUI) playersPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		return
	}

	query, fieldErrors := market.QueryFromValues(r.URL.Query())
	if len(fieldErrors) > 0 {
		ui.renderError(w, http.StatusBadRequest, errorPage{
			Title:   "Players",
			Message: fmt.Sprintf("invalid filter parameters: %v", fieldErrors),
		})
		return
	}

	records, err := ui.Datasets.LoadPlayers(ctx)
	if err != nil {
		ui.renderDatasetError(w, r, "Players", err)
		return
	}

	rows := models.NewPlayerRows(market.Apply(records, query))

	ui.render(w, "players.html", playersPage{
		Search:   query.Search,
		Position: query.Position,
		MinValue: query.MinValue,
		Columns:  sortColumns(query),
		Rows:     rows,
		Count:    len(rows),
	})
}

// sortColumns builds each header's link by advancing the three-state sort
// cycle for that column while keeping the filter parameters.
func sortColumns(q market.Query) []columnLink {
	links := make([]columnLink, len(playerColumns))
	for i, col := range playerColumns {
		next := q.Sort.Cycle(col.Key)

		values := url.Values{}
		if q.Search != "" {
			values.Set("search", q.Search)
		}
		if q.Position != "" && q.Position != "all" {
			values.Set("position", q.Position)
		}
		if q.MinValue > 0 {
			values.Set("minValue", fmt.Sprintf("%.0f", q.MinValue))
		}
		if next.Direction != market.DirectionNone {
			values.Set("sortKey", next.Key)
			values.Set("sortDir", next.Direction.String())
		}

		links[i] = columnLink{
			Label:     col.Label,
			Href:      "/dashboard/players?" + values.Encode(),
			Indicator: sortIndicator(q.Sort, col.Key),
		}
	}
	return links
}

func sortIndicator(s market.Sort, key string) string {
	if s.Key != key {
		return ""
	}
	switch s.Direction {
	case market.DirectionAscending:
		return "▲"
	case market.DirectionDescending:
		return "▼"
	}
	return ""
}

// renderDatasetError maps ingestion failures onto the shared error view.
// Cancelled requests write nothing; the view is already gone.
func (ui *WebUI) renderDatasetError(w http.ResponseWriter, r *http.Request, title string, err error) {
	if r.Context().Err() != nil {
		return
	}

	switch {
	case errors.Is(err, dataset.ErrSourceMissing):
		ui.renderError(w, http.StatusNotFound, errorPage{
			Title:   title,
			Message: err.Error(),
			Hint:    "The dashboard reads pre-computed CSV datasets. Make sure the offline export has produced them in the configured data location.",
		})
	case errors.Is(err, dataset.ErrMalformed):
		ui.renderError(w, http.StatusBadGateway, errorPage{
			Title:   title,
			Message: err.Error(),
			Hint:    "The dataset was found but did not parse as CSV. Re-run the offline export.",
		})
	default:
		ui.renderError(w, http.StatusInternalServerError, errorPage{
			Title:   title,
			Message: "internal server error",
		})
	}
}
