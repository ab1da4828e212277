// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rollout/internal/adapters/cas"
	_ "go.trai.ch/rollout/internal/adapters/config"
	_ "go.trai.ch/rollout/internal/adapters/detector"
	_ "go.trai.ch/rollout/internal/adapters/fs"
	_ "go.trai.ch/rollout/internal/adapters/git"
	_ "go.trai.ch/rollout/internal/adapters/logger"
	_ "go.trai.ch/rollout/internal/adapters/prompt"
	_ "go.trai.ch/rollout/internal/adapters/remote"
	_ "go.trai.ch/rollout/internal/adapters/render"
	_ "go.trai.ch/rollout/internal/adapters/shell"
	_ "go.trai.ch/rollout/internal/adapters/telemetry"
	_ "go.trai.ch/rollout/internal/adapters/version"
	// Register app nodes.
	_ "go.trai.ch/rollout/internal/app"
)
