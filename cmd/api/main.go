package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"kickboard.kickmetrics.org/internal/app"
	"kickboard.kickmetrics.org/internal/config"
	"kickboard.kickmetrics.org/internal/dataset"
	"kickboard.kickmetrics.org/internal/logging"
	"kickboard.kickmetrics.org/internal/restapi"
	"kickboard.kickmetrics.org/internal/webui"
)

func main() {
	var (
		cfgFile    string
		initConfig bool
	)
	var flagCfg config.Config

	flag.StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	flag.BoolVar(&initConfig, "init-config", false, "Write the effective config to the -config path and exit")
	flag.IntVar(&flagCfg.Port, "port", 4000, "API server port")
	flag.StringVar(&flagCfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&flagCfg.DataBase, "data-base", "data", "Directory or HTTP(S) base URL holding the CSV datasets")
	flag.StringVar(&flagCfg.LeagueID, "league-id", "", "League identifier used to probe alternate liquidity dataset names")
	flag.StringVar(&flagCfg.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags given explicitly on the command line win over file and env.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = flagCfg.Port
		case "env":
			cfg.Env = flagCfg.Env
		case "data-base":
			cfg.DataBase = flagCfg.DataBase
		case "league-id":
			cfg.LeagueID = flagCfg.LeagueID
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		}
	})

	if initConfig {
		if cfgFile == "" {
			cfgFile = "kickboard.yaml"
		}
		if err := config.Save(cfg, cfgFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", cfgFile)
		return
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.SlogLevel())

	application := &app.Application{
		Config:   *cfg,
		Logger:   logger,
		Datasets: dataset.NewManager(dataset.NewSource(cfg.DataBase), cfg.LeagueID, logger),
	}

	printDatasetStatistics(application)

	router := httprouter.New()
	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.NewWebUI(application).SetRoutes(router)

	var handler http.Handler = router
	handler = api.WithSecurityHeaders(handler)
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "data_base", cfg.DataBase)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

// printDatasetStatistics probes the datasets once at startup so a
// misconfigured data location shows up in the logs immediately. Failures
// are not fatal; each request loads fresh anyway.
func printDatasetStatistics(application *app.Application) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if players, err := application.Datasets.LoadPlayers(ctx); err != nil {
		application.Logger.Warn("players dataset unavailable", "error", err)
	} else {
		application.Logger.Info("players dataset loaded", "rows", len(players))
	}

	if _, err := application.Datasets.LoadMetrics(ctx); err != nil {
		application.Logger.Warn("regression metrics unavailable, calculator will use defaults", "error", err)
	}

	if _, source, err := application.Datasets.LoadLiquidity(ctx); err != nil {
		application.Logger.Warn("liquidity dataset unavailable", "error", err)
	} else {
		application.Logger.Info("liquidity dataset loaded", "source", source)
	}
}
