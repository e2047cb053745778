// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mwleeds/gnome-builder/internal/adapters/cas"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/config"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/fs"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/logger"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/runtime"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/telemetry"
	_ "github.com/mwleeds/gnome-builder/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/mwleeds/gnome-builder/internal/app"
	_ "github.com/mwleeds/gnome-builder/internal/engine/buildtask"
)
