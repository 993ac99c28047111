package webui

import (
	"fmt"
	"net/http"
	"net/url"

	"kickboard.kickmetrics.org/internal/liquidity"
	"kickboard.kickmetrics.org/internal/models"
)

type liquidityPage struct {
	Columns []columnLink
	Rows    []liquidity.ManagerRow
	Summary liquidity.Summary
	Source  string
}

var managerColumns = []struct {
	Key   string
	Label string
}{
	{models.ManagerColName, "Manager"},
	{models.ManagerColTeamValueDashboard, "Team value"},
	{models.ManagerColProfitTaken, "Profit taken"},
	{models.ManagerColUnrealizedPnL, "Unrealized P/L"},
	{models.ManagerColBankBalance, "Bank balance"},
	{models.ManagerColLiquidity, "Available liquidity"},
}

func (ui *WebUI) liquidityPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		return
	}

	sortState, fieldErrors := liquidity.SortFromValues(r.URL.Query())
	if len(fieldErrors) > 0 {
		ui.renderError(w, http.StatusBadRequest, errorPage{
			Title:   "Liquidity",
			Message: fmt.Sprintf("invalid sort parameters: %v", fieldErrors),
		})
		return
	}

	records, source, err := ui.Datasets.LoadLiquidity(ctx)
	if err != nil {
		ui.renderDatasetError(w, r, "Liquidity", err)
		return
	}

	ui.render(w, "liquidity.html", liquidityPage{
		Columns: managerSortColumns(sortState),
		Rows:    liquidity.NewManagerRows(liquidity.SortRecords(records, sortState)),
		Summary: liquidity.Summarize(records),
		Source:  source,
	})
}

func managerSortColumns(s liquidity.Sort) []columnLink {
	links := make([]columnLink, len(managerColumns))
	for i, col := range managerColumns {
		next := s.Toggle(col.Key)

		values := url.Values{}
		values.Set("sortKey", next.Key)
		if next.Descending {
			values.Set("sortDir", "desc")
		} else {
			values.Set("sortDir", "asc")
		}

		indicator := ""
		if s.Key == col.Key {
			if s.Descending {
				indicator = "▼"
			} else {
				indicator = "▲"
			}
		}

		links[i] = columnLink{
			Label:     col.Label,
			Href:      "/dashboard/liquidity?" + values.Encode(),
			Indicator: indicator,
		}
	}
	return links
}
