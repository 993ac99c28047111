package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func (ui *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	}
	if err := ui.templates.ExecuteTemplate(w, "debug_index.html", page); err != nil {
		ui.Logger.Error("failed to render debug template", "error", err)
	}
}

func (ui *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "players":
		records, err := ui.Datasets.LoadPlayers(ctx)
		if err != nil {
			data = err.Error()
		} else {
			data = records
		}
		title = "Dataset - Players"
	case "metrics":
		record, err := ui.Datasets.LoadMetrics(ctx)
		if err != nil {
			data = err.Error()
		} else {
			data = record
		}
		title = "Dataset - Regression Metrics"
	case "liquidity":
		records, source, err := ui.Datasets.LoadLiquidity(ctx)
		if err != nil {
			data = err.Error()
		} else {
			data = map[string]interface{}{"source": source, "records": records}
		}
		title = "Dataset - Manager Liquidity"
	default:
		data = map[string]string{
			"error": "Please use one of the following: players, metrics, liquidity.",
		}
		title = "Choose a data type"
	}

	if ctx.Err() != nil {
		return
	}

	ui.writeDebugData(w, title, data)
}
