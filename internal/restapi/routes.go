package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON API endpoints on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/players.json", api.playersHandler)
	router.HandlerFunc(http.MethodGet, "/api/liquidity.json", api.liquidityHandler)
	router.HandlerFunc(http.MethodGet, "/api/fmv/value/:tp", api.fmvValueHandler)
	router.HandlerFunc(http.MethodGet, "/api/fmv/curve.json", api.fmvCurveHandler)
}
