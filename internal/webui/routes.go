package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the dashboard views on the router.
func (ui *WebUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard/players", http.StatusFound)
	})
	router.HandlerFunc(http.MethodGet, "/dashboard/players", ui.playersPageHandler)
	router.HandlerFunc(http.MethodGet, "/dashboard/liquidity", ui.liquidityPageHandler)
	router.HandlerFunc(http.MethodGet, "/dashboard/fmv", ui.fmvPageHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", ui.debugIndexHandler)
}
