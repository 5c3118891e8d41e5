// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prj/internal/adapters/config"
	_ "go.trai.ch/prj/internal/adapters/fs"
	_ "go.trai.ch/prj/internal/adapters/logger"
	_ "go.trai.ch/prj/internal/adapters/shell"
	_ "go.trai.ch/prj/internal/adapters/store"
	_ "go.trai.ch/prj/internal/adapters/telemetry"
	_ "go.trai.ch/prj/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/prj/internal/app"
	_ "go.trai.ch/prj/internal/engine/catalog"
)
