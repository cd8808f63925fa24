// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/voltlab/strata/internal/adapters/comm"
	_ "github.com/voltlab/strata/internal/adapters/config"
	_ "github.com/voltlab/strata/internal/adapters/logger"
	_ "github.com/voltlab/strata/internal/adapters/store"
	_ "github.com/voltlab/strata/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/voltlab/strata/internal/app"
)
