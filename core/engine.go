/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Engine is a part of the system: a module or an API. It can implement any of the optional interfaces below,
// which the System calls during its lifecycle.
type Engine interface{}

// Named is the interface for all engines that have a name
type Named interface {
	// Name returns the name of the engine
	Name() string
}

// Injectable marks an engine that gets its config injected. The config is read from the keys under its lowercase name.
type Injectable interface {
	Named
	// Config returns a pointer to the struct that holds the Config.
	Config() interface{}
}

// Configurable is implemented by engines that must set up after their config was injected, and before the system starts.
type Configurable interface {
	Configure(config ServerConfig) error
}

// Runnable is implemented by engines that run in the background while the system is up.
// Start and Shutdown are called once.
type Runnable interface {
	Start() error
	Shutdown() error
}

// Routable enables connecting a REST API to the echo server.
type Routable interface {
	// Routes configures the HTTP routes on the given router
	Routes(router EchoRouter)
}

// Diagnosable allows the implementer, mostly engines, to return diagnostics.
type Diagnosable interface {
	Diagnostics() []DiagnosticResult
}

// ViewableDiagnostics is implemented by engines that have their diagnostics listed on /status/diagnostics.
type ViewableDiagnostics interface {
	Named
	Diagnosable
}

// System holds the engines of the testbed and drives their lifecycle: Load, Configure, Start and Shutdown.
type System struct {
	// engines in order of registration
	engines []Engine
	// Config holds the global and raw config
	Config *ServerConfig
	// EchoCreator creates the HTTP server the engines are routed on. It can be replaced in tests.
	EchoCreator func(cfg HTTPConfig, strictmode bool) (EchoServer, error)
}

// NewSystem creates a new, empty System.
func NewSystem() *System {
	return &System{
		Config: NewServerConfig(),
		EchoCreator: func(cfg HTTPConfig, strictmode bool) (EchoServer, error) {
			return createEchoServer(cfg, strictmode)
		},
	}
}

// RegisterEngine adds an engine to the system. Engines are configured and started in order of registration.
func (system *System) RegisterEngine(engine Engine) {
	system.engines = append(system.engines, engine)
}

// Load loads the config from the command's flags and injects it into the engines.
func (system *System) Load(cmd *cobra.Command) error {
	if err := system.Config.Load(cmd.Flags()); err != nil {
		return err
	}
	return system.VisitEnginesE(func(engine Engine) error {
		if injectable, ok := engine.(Injectable); ok {
			if err := system.Config.InjectIntoEngine(injectable); err != nil {
				return fmt.Errorf("unable to load config of %s: %w", injectable.Name(), err)
			}
		}
		return nil
	})
}

// Configure configures all engines, stopping at the first that fails.
func (system *System) Configure() error {
	return system.VisitEnginesE(func(engine Engine) error {
		if configurable, ok := engine.(Configurable); ok {
			return configurable.Configure(*system.Config)
		}
		return nil
	})
}

// Start starts all engines, stopping at the first that fails.
func (system *System) Start() error {
	return system.VisitEnginesE(func(engine Engine) error {
		if runnable, ok := engine.(Runnable); ok {
			return runnable.Start()
		}
		return nil
	})
}

// Shutdown shuts down all engines in reverse order of registration, so engines are stopped before the ones they use.
// All engines are shut down, even if some fail; their errors are joined.
func (system *System) Shutdown() error {
	var result []error
	for i := len(system.engines) - 1; i >= 0; i-- {
		if runnable, ok := system.engines[i].(Runnable); ok {
			if err := runnable.Shutdown(); err != nil {
				result = append(result, err)
			}
		}
	}
	return errors.Join(result...)
}

// Routes registers the HTTP routes of all Routable engines on the given router.
func (system *System) Routes(router EchoRouter) {
	system.VisitEngines(func(engine Engine) {
		if routable, ok := engine.(Routable); ok {
			routable.Routes(router)
		}
	})
}

// Diagnostics returns the diagnostics of all engines.
func (system *System) Diagnostics() []DiagnosticResult {
	result := make([]DiagnosticResult, 0)
	system.VisitEngines(func(engine Engine) {
		if diagnosable, ok := engine.(Diagnosable); ok {
			result = append(result, diagnosable.Diagnostics()...)
		}
	})
	return result
}

// VisitEngines applies the given function on all engines in the system.
func (system *System) VisitEngines(visitor func(engine Engine)) {
	for _, engine := range system.engines {
		visitor(engine)
	}
}

// VisitEnginesE applies the given function on all engines in the system, stopping at (and returning) the first error.
func (system *System) VisitEnginesE(visitor func(engine Engine) error) error {
	for _, engine := range system.engines {
		if err := visitor(engine); err != nil {
			return err
		}
	}
	return nil
}
