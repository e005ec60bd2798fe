package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tejusbharadwaj/gridview/internal/api"
	"github.com/tejusbharadwaj/gridview/internal/config"
	"github.com/tejusbharadwaj/gridview/internal/console"
)

// Command gridview is an interactive viewer for Fingrid Open Data.
//
// It fetches electricity time-series data (production, load, cross-border
// flow) for a chosen variable and time range, prints the series as an
// aligned table with descriptive statistics, and can plot it as an ASCII
// chart. A demo mode runs the same pipeline over generated sample data
// without an API key.
//
// Usage:
//
//	gridview [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
//	-max-rows int
//	      maximum table rows to display (overrides config when > 0)
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	maxRows := flag.Int("max-rows", 0, "maximum table rows to display")
	flag.Parse()

	appConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *maxRows > 0 {
		appConfig.Display.MaxRows = *maxRows
	}

	logger := newLogger(appConfig.Logging)

	logger.WithFields(logrus.Fields{
		"base_url": appConfig.API.BaseURL,
		"max_rows": appConfig.Display.MaxRows,
	}).Debug("Starting viewer")

	// The API client is built lazily so demo mode and the variable listing
	// work without a configured API key.
	newFetcher := func() (console.Fetcher, error) {
		client, err := api.NewClient(appConfig.API, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	ui := console.New(os.Stdin, os.Stdout, logger, appConfig.Display.MaxRows, newFetcher)
	if err := ui.Run(context.Background()); err != nil {
		logger.Fatalf("Console error: %v", err)
	}
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
