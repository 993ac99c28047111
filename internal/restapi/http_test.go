package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"kickboard.kickmetrics.org/internal/app"
	"kickboard.kickmetrics.org/internal/config"
	"kickboard.kickmetrics.org/internal/dataset"
	"kickboard.kickmetrics.org/internal/logging"
	"kickboard.kickmetrics.org/internal/models"
)

// createTestApi creates a RestAPI reading datasets from the given base
// (default: the testdata fixtures).
func createTestApi(t *testing.T, dataBase string) *RestAPI {
	t.Helper()

	if dataBase == "" {
		dataBase = "testdata"
	}

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	application := &app.Application{
		Config: config.Config{
			Env:      "test",
			DataBase: dataBase,
		},
		Logger:   logger,
		Datasets: dataset.NewManager(dataset.NewSource(dataBase), "", logger),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	return serveApiAndRetrieveEndpoint(t, createTestApi(t, ""), endpoint)
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)

	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// writeFixture writes a dataset file into a temporary data dir.
func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// dataField digs the named member out of the decoded data payload.
func dataField(t *testing.T, model models.ResponseModel, field string) interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	return data[field]
}
