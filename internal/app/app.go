package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
	"github.com/vk/taxgridgo/internal/snapshot"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	info   *model.ValidatedInformation
	p      *params.Params
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// loaded snapshot and parameter table.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	info, err := snapshot.Load(appConfig.SnapshotPath)
	if err != nil {
		// A failure to load the snapshot is a fatal startup error.
		panic(fmt.Errorf("failed to load snapshot: %w", err))
	}
	logger.Debug("Snapshot loaded.", "year", info.Year, "filing_status", info.FilingStatus)

	p := params.Default()
	if appConfig.ParamsPath != "" {
		p, err = params.Load(appConfig.ParamsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load parameter table: %w", err))
		}
	}
	logger.Debug("Parameter table ready.", "year", p.Year)

	if p.Year != info.Year {
		panic(fmt.Errorf("parameter table year %d does not match snapshot year %d", p.Year, info.Year))
	}

	return &App{
		outW:   outW,
		logger: logger,
		info:   info,
		p:      p,
	}
}

// Info returns the loaded snapshot. This is primarily for testing.
func (a *App) Info() *model.ValidatedInformation {
	return a.info
}
