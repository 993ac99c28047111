package webui

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"kickboard.kickmetrics.org/internal/fmv"
	"kickboard.kickmetrics.org/internal/format"
	"kickboard.kickmetrics.org/internal/logging"
)

type fmvPage struct {
	TotalPoints   string
	Value         string
	Params        fmv.Params
	UsedDefaults  bool
	CurvePoints   string
	LivePointX    float64
	LivePointY    float64
	ShowLivePoint bool
	BaselineLabel string
	UpperLabel    string
	MaxValueLabel string
}

// Chart canvas size for the inline SVG curve.
const (
	chartWidth  = 640.0
	chartHeight = 240.0
)

func (ui *WebUI) fmvPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		return
	}

	params := fmv.DefaultParams()
	usedDefaults := true
	if record, err := ui.Datasets.LoadMetrics(ctx); err == nil {
		params, usedDefaults = fmv.ParamsFrom(record)
	} else {
		if ctx.Err() != nil {
			return
		}
		logging.LogOperation(ui.Logger, "metrics unavailable, using default coefficients")
	}

	rawTP := r.URL.Query().Get("tp")
	if rawTP == "" {
		rawTP = "500"
	}
	tp, err := strconv.ParseFloat(strings.TrimSpace(rawTP), 64)
	if err != nil {
		tp = math.NaN()
	}

	value := fmv.Evaluate(tp, params)
	samples := fmv.Curve(params, fmv.DefaultCurveUpper, fmv.DefaultCurveStep)

	page := fmvPage{
		TotalPoints:   rawTP,
		Value:         format.Euro(value),
		Params:        params,
		UsedDefaults:  usedDefaults,
		BaselineLabel: fmt.Sprintf("%.0f", fmv.BaselineTotalPoints),
		UpperLabel:    fmt.Sprintf("%.0f", fmv.DefaultCurveUpper),
	}

	if len(samples) > 0 {
		maxValue := samples[len(samples)-1].Value
		page.CurvePoints = curvePolyline(samples, maxValue)
		page.MaxValueLabel = format.Euro(maxValue)

		// Drop the live marker onto the same scale as the curve so the
		// two can never visually disagree.
		if !math.IsNaN(tp) && tp >= fmv.BaselineTotalPoints && tp <= fmv.DefaultCurveUpper {
			page.LivePointX, page.LivePointY = chartPoint(tp, value, maxValue)
			page.ShowLivePoint = true
		}
	}

	ui.render(w, "fmv.html", page)
}

// chartPoint maps a (points, value) pair onto SVG canvas coordinates.
func chartPoint(tp, value, maxValue float64) (x, y float64) {
	x = (tp - fmv.BaselineTotalPoints) / (fmv.DefaultCurveUpper - fmv.BaselineTotalPoints) * chartWidth
	y = chartHeight - value/maxValue*chartHeight
	return x, y
}

func curvePolyline(samples []fmv.Sample, maxValue float64) string {
	var b strings.Builder
	for i, s := range samples {
		if i > 0 {
			b.WriteByte(' ')
		}
		x, y := chartPoint(s.TotalPoints, s.Value, maxValue)
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	return b.String()
}
