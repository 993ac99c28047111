package restapi

import (
	"net/http"

	"kickboard.kickmetrics.org/internal/market"
	"kickboard.kickmetrics.org/internal/models"
)

func (api *RestAPI) playersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check if context is already cancelled
	if ctx.Err() != nil {
		return
	}

	query, fieldErrors := market.QueryFromValues(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records, err := api.Datasets.LoadPlayers(ctx)
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	visible := market.Apply(records, query)
	rows := models.NewPlayerRows(visible)

	api.sendResponse(w, r, models.NewListResponse(rows, len(rows)))
}
