// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prosa/internal/adapters/antxml"
	_ "go.trai.ch/prosa/internal/adapters/cas"
	_ "go.trai.ch/prosa/internal/adapters/config"
	_ "go.trai.ch/prosa/internal/adapters/fs"
	_ "go.trai.ch/prosa/internal/adapters/logger"
	_ "go.trai.ch/prosa/internal/adapters/propfile"
	_ "go.trai.ch/prosa/internal/adapters/repository"
	_ "go.trai.ch/prosa/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/prosa/internal/adapters/xmlconfig"
	// Register app and engine nodes.
	_ "go.trai.ch/prosa/internal/app"
	_ "go.trai.ch/prosa/internal/engine/emitter"
	_ "go.trai.ch/prosa/internal/engine/options"
)
