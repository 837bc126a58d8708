// Package app implements the application layer for novelpack.
package app

import (
	"context"

	"github.com/novelreader/novelpack/internal/core/ports"
	"github.com/novelreader/novelpack/internal/engine/packager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	packager     *packager.Packager
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pkg *packager.Packager, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		packager:     pkg,
		logger:       logger,
	}
}

// Run executes the full packaging pipeline.
func (a *App) Run(ctx context.Context, configPath string) error {
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	report, err := a.packager.Package(ctx, spec)
	if err != nil {
		return err
	}

	// Result summary, mirroring what the operator needs to run the app.
	a.logger.Info("output file: " + report.BinaryPath)
	a.logger.Info("file size: " + report.HumanSize())
	a.logger.Info("checksum: xxh64:" + report.Checksum)
	a.logger.Info("run it with: ./" + report.BinaryPath)
	if report.PortableDir != "" {
		a.logger.Info("portable package: " + report.PortableDir + "/ (copy it anywhere)")
	}
	a.logger.Success("packaging complete")
	return nil
}

// Clean runs only the workspace cleanup phase.
func (a *App) Clean(ctx context.Context, configPath string) error {
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.packager.Clean(ctx, spec)
}

// EnsureDependencies runs only the environment check and dependency
// resolution phases.
func (a *App) EnsureDependencies(ctx context.Context, configPath string) error {
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.packager.EnsureDependencies(ctx, spec)
}
