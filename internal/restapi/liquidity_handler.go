package restapi

import (
	"net/http"

	"kickboard.kickmetrics.org/internal/liquidity"
	"kickboard.kickmetrics.org/internal/models"
)

// liquidityData is the data payload of the liquidity endpoint: the sorted
// rows plus the aggregate panel over the full dataset and the filename the
// candidate probe settled on.
type liquidityData struct {
	List    []liquidity.ManagerRow `json:"list"`
	Count   int                    `json:"count"`
	Summary liquidity.Summary      `json:"summary"`
	Source  string                 `json:"source"`
}

func (api *RestAPI) liquidityHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		return
	}

	sortState, fieldErrors := liquidity.SortFromValues(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records, source, err := api.Datasets.LoadLiquidity(ctx)
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	rows := liquidity.NewManagerRows(liquidity.SortRecords(records, sortState))

	// The summary always covers the unfiltered set; the view has no filter
	// controls, so sorting is the only thing between records and rows.
	data := liquidityData{
		List:    rows,
		Count:   len(rows),
		Summary: liquidity.Summarize(records),
		Source:  source,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
