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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vp-conformance/testbed/core"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/validation"
	validationAPI "github.com/vp-conformance/testbed/validation/api/v1"
	validationCmd "github.com/vp-conformance/testbed/validation/cmd"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "testbed",
		Short: "Conformance testbed which validates verifier and issuer logs, and builds wallet authorization requests.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd); err != nil {
				return err
			}
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
			return nil
		},
	}
	command.Flags().AddFlagSet(serverConfigFlags())
	return command
}

func createServerCommand(system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "server",
		Short: "Starts the testbed HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd); err != nil {
				return err
			}
			logrus.Info("Starting server with config:")
			logrus.Info(system.Config.PrintConfig())
			return startServer(cmd.Context(), system)
		},
	}
	command.Flags().AddFlagSet(serverConfigFlags())
	return command
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version and build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

func startServer(ctx context.Context, system *core.System) error {
	// check config on all engines
	if err := system.Configure(); err != nil {
		return err
	}
	echoServer, err := system.EchoCreator(system.Config.HTTP, system.Config.Strictmode)
	if err != nil {
		return err
	}
	system.Routes(echoServer)

	// start engines
	if err := system.Start(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- echoServer.Start(system.Config.HTTP.Address)
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutting down...")
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}
	if shutdownErr := echoServer.Shutdown(context.Background()); shutdownErr != nil {
		logrus.WithError(shutdownErr).Error("Unable to shut down HTTP server")
	}
	if shutdownErr := system.Shutdown(); shutdownErr != nil {
		logrus.WithError(shutdownErr).Error("Error shutting down engines")
	}
	return err
}

func serverConfigFlags() *pflag.FlagSet {
	set := pflag.NewFlagSet("server", pflag.ContinueOnError)
	set.AddFlagSet(core.FlagSet())
	set.AddFlagSet(validationCmd.FlagSet())
	return set
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand()
	command.SetOut(stdOutWriter)
	addSubCommands(system, command)
	return command
}

// CreateSystem creates the system and registers all default engines.
func CreateSystem() *core.System {
	system := core.NewSystem()
	// Create instances
	validationInstance := validation.NewModule(json.DefaultCodec)

	// Register engines
	system.RegisterEngine(core.NewStatusEngine(system))
	system.RegisterEngine(core.NewMetricsEngine())
	system.RegisterEngine(validationInstance)
	system.RegisterEngine(&validationAPI.Wrapper{Service: validationInstance, Features: validationInstance})
	return system
}

// Execute executes the root command. It returns when the command finishes, or, for the server command, when ctx is cancelled.
func Execute(ctx context.Context, system *core.System) error {
	command := CreateCommand(system)
	command.SetOut(stdOutWriter)
	return command.ExecuteContext(ctx)
}

func addSubCommands(system *core.System, root *cobra.Command) {
	root.AddCommand(createServerCommand(system))
	root.AddCommand(createPrintConfigCommand(system))
	root.AddCommand(createVersionCommand())
	root.AddCommand(createValidateCommand())
	root.AddCommand(createInspectCommand())
	root.AddCommand(createAuthorizationURICommand())
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return string(data), nil
}
