// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/novelreader/novelpack/internal/adapters/config"
	_ "github.com/novelreader/novelpack/internal/adapters/fs"
	_ "github.com/novelreader/novelpack/internal/adapters/logger"
	_ "github.com/novelreader/novelpack/internal/adapters/pyinstaller"
	_ "github.com/novelreader/novelpack/internal/adapters/python"
	_ "github.com/novelreader/novelpack/internal/adapters/shell"
	_ "github.com/novelreader/novelpack/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/novelreader/novelpack/internal/app"
	_ "github.com/novelreader/novelpack/internal/engine/packager"
)
