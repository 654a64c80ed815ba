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

	"github.com/spf13/pflag"
)

const testEngineName = "testengine"

// TestEngineConfig defines the configuration for the test engine
type TestEngineConfig struct {
	Key  string              `koanf:"key"`
	Sub  TestEngineSubConfig `koanf:"sub"`
	List []string            `koanf:"list"`
}

// TestEngineSubConfig defines the `sub` configuration for the test engine
type TestEngineSubConfig struct {
	Test string `koanf:"test"`
}

// TestEngine is an engine that implements all optional engine interfaces, for testing the System.
type TestEngine struct {
	TestConfig     TestEngineConfig
	Started        bool
	Configured     bool
	ShutdownError  bool
	ConfigureError bool
}

// Start does test stuff
func (i *TestEngine) Start() error {
	i.Started = true
	return nil
}

// Shutdown does test stuff
func (i *TestEngine) Shutdown() error {
	if i.ShutdownError {
		return errors.New("failure")
	}
	i.Started = false
	return nil
}

// Configure does test stuff
func (i *TestEngine) Configure(_ ServerConfig) error {
	if i.ConfigureError {
		return errors.New("configure failure")
	}
	i.Configured = true
	return nil
}

func (i *TestEngine) Config() interface{} {
	return &i.TestConfig
}

func (i *TestEngine) Name() string {
	return testEngineName
}

// Diagnostics returns a single static diagnostic.
func (i *TestEngine) Diagnostics() []DiagnosticResult {
	return []DiagnosticResult{&GenericDiagnosticResult{Title: "test", Outcome: "ok"}}
}

func testFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet(testEngineName, pflag.ContinueOnError)
	flags.StringSlice(testEngineName+".list", []string{"default"}, "sets the values of list")
	flags.String(testEngineName+".key", "", "another flag")
	flags.String(testEngineName+".sub.test", "", "nested flag")
	return flags
}
