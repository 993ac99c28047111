package restapi

import (
	"net/http"
	"strconv"

	"kickboard.kickmetrics.org/internal/fmv"
	"kickboard.kickmetrics.org/internal/models"
)

// curveData is the data payload of the curve endpoint.
type curveData struct {
	List         []fmv.Sample `json:"list"`
	Count        int          `json:"count"`
	Params       fmv.Params   `json:"params"`
	UsedDefaults bool         `json:"usedDefaults"`
}

func (api *RestAPI) fmvCurveHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		return
	}

	upper, step, fieldErrors := curveRangeFromRequest(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	params, usedDefaults := api.loadFMVParams(ctx)
	if ctx.Err() != nil {
		return
	}

	samples := fmv.Curve(params, upper, step)

	data := curveData{
		List:         samples,
		Count:        len(samples),
		Params:       params,
		UsedDefaults: usedDefaults,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}

// curveRangeFromRequest parses the optional upper/step overrides. The
// bounds keep a curve request from sampling millions of points.
func curveRangeFromRequest(r *http.Request) (upper, step float64, fieldErrors map[string][]string) {
	fieldErrors = make(map[string][]string)
	upper = fmv.DefaultCurveUpper
	step = fmv.DefaultCurveStep

	if raw := r.URL.Query().Get("upper"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			fieldErrors["upper"] = append(fieldErrors["upper"], "upper must be a number")
		case v <= fmv.BaselineTotalPoints || v > 100_000:
			fieldErrors["upper"] = append(fieldErrors["upper"], "upper must be above the baseline threshold and at most 100000")
		default:
			upper = v
		}
	}

	if raw := r.URL.Query().Get("step"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			fieldErrors["step"] = append(fieldErrors["step"], "step must be a number")
		case v < 1:
			fieldErrors["step"] = append(fieldErrors["step"], "step must be at least 1")
		default:
			step = v
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return upper, step, fieldErrors
}
