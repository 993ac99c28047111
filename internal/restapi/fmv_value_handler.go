package restapi

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"kickboard.kickmetrics.org/internal/fmv"
	"kickboard.kickmetrics.org/internal/format"
	"kickboard.kickmetrics.org/internal/logging"
	"kickboard.kickmetrics.org/internal/models"
	"kickboard.kickmetrics.org/internal/utils"
)

// fmvValueEntry is one evaluated point of the formula along with the
// coefficients that produced it.
type fmvValueEntry struct {
	TotalPoints    string     `json:"totalPoints"`
	Value          float64    `json:"value"`
	FormattedValue string     `json:"formattedValue"`
	Params         fmv.Params `json:"params"`
	UsedDefaults   bool       `json:"usedDefaults"`
}

// loadFMVParams resolves the regression coefficients for a request. Any
// trouble with the metrics source degrades to the built-in defaults; the
// calculator never fails because the offline fit has not run.
func (api *RestAPI) loadFMVParams(ctx context.Context) (fmv.Params, bool) {
	record, err := api.Datasets.LoadMetrics(ctx)
	if err != nil {
		logging.LogOperation(api.Logger, "metrics unavailable, using default coefficients",
			slog.String("error", err.Error()))
		return fmv.DefaultParams(), true
	}
	return fmv.ParamsFrom(record)
}

func (api *RestAPI) fmvValueHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		return
	}

	rawTP := utils.ExtractParamFromRequest(r, "tp")

	params, usedDefaults := api.loadFMVParams(ctx)
	if ctx.Err() != nil {
		return
	}

	// An unparseable input is not an error: the formula pins it to the
	// baseline value.
	tp, err := strconv.ParseFloat(strings.TrimSpace(rawTP), 64)
	if err != nil {
		tp = math.NaN()
	}

	value := fmv.Evaluate(tp, params)

	entry := fmvValueEntry{
		TotalPoints:    rawTP,
		Value:          value,
		FormattedValue: format.Euro(value),
		Params:         params,
		UsedDefaults:   usedDefaults,
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
