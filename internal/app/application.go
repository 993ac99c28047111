package app

import (
	"log/slog"

	"kickboard.kickmetrics.org/internal/config"
	"kickboard.kickmetrics.org/internal/dataset"
)

// Application holds the dependencies shared by the HTTP handlers, helpers,
// and middleware: the resolved configuration, the logger, and the dataset
// manager every view loads through.
type Application struct {
	Config   config.Config
	Logger   *slog.Logger
	Datasets *dataset.Manager
}
