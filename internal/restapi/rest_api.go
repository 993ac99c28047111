// Package restapi exposes the dashboard pipeline as a JSON API. Every
// request is one view activation: the handler loads its dataset fresh,
// runs the pure filter/sort/derive pipeline, and answers with an envelope
// response, so a request maps loading to ready or error with nothing
// cached in between.
package restapi

import (
	"kickboard.kickmetrics.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance backed by the shared
// application dependencies.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
