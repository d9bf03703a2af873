// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/javelin/internal/adapters/config"
	_ "go.trai.ch/javelin/internal/adapters/fs"
	_ "go.trai.ch/javelin/internal/adapters/jdeps"
	_ "go.trai.ch/javelin/internal/adapters/logger"
	_ "go.trai.ch/javelin/internal/adapters/snapshot"
	_ "go.trai.ch/javelin/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/javelin/internal/app"
	_ "go.trai.ch/javelin/internal/engine/planner"
)
