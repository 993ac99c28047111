package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"kickboard.kickmetrics.org/internal/dataset"
	"kickboard.kickmetrics.org/internal/models"
)

// errorEnvelope writes a data-less envelope with the given status and text.
func (api *RestAPI) errorEnvelope(w http.ResponseWriter, r *http.Request, status int, text string) {
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "path", r.URL.Path)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.errorEnvelope(w, r, http.StatusInternalServerError, "internal server error")
}

// datasetErrorResponse maps the ingestion error taxonomy onto HTTP
// statuses: a missing source is 404, a retrieved-but-unparseable source is
// 502 (the dataset producer is effectively a broken upstream). A cancelled
// request writes nothing at all; the view that asked is gone and its
// result is discarded.
func (api *RestAPI) datasetErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		return
	}

	switch {
	case errors.Is(err, dataset.ErrSourceMissing):
		api.errorEnvelope(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, dataset.ErrMalformed):
		api.errorEnvelope(w, r, http.StatusBadGateway, err.Error())
	default:
		api.serverErrorResponse(w, r, err)
	}
}

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
