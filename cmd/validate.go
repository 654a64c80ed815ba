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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vp-conformance/testbed/issuance"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/presentation"
	"github.com/vp-conformance/testbed/report"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// errValidationFailed makes the process exit with a non-zero status when a log doesn't pass validation.
var errValidationFailed = errors.New("validation result: " + string(report.Failure))

func createValidateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "validate",
		Short: "Validates logs locally, without starting the server",
	}
	command.AddCommand(createValidatePresentationCommand())
	command.AddCommand(createValidateIssuanceCommand())
	return command
}

func createValidatePresentationCommand() *cobra.Command {
	var expectedEvent string
	var format string
	var schemaValidation bool
	command := &cobra.Command{
		Use:   "presentation [file]",
		Short: "Validates a presentation (verifier) log read from file, or stdin if file is '-' or omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			validator := presentation.NewValidator(json.DefaultCodec, presentation.LogOutcome,
				presentation.WithSchemaValidation(schemaValidation))
			tar, err := validator.Validate(text, expectedEvent)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), format, tar)
		},
	}
	command.Flags().StringVar(&expectedEvent, "expected-event", "",
		fmt.Sprintf("Expected scenario: %s, %s or empty for a successful presentation", presentation.ScenarioAttestationError, presentation.ScenarioCertificateError))
	command.Flags().StringVar(&format, "format", formatJSON, "Output format of the report: json, yaml or table")
	command.Flags().BoolVar(&schemaValidation, "schema", true, "Check the log against the JSON schema of the presentation events")
	return command
}

func createValidateIssuanceCommand() *cobra.Command {
	var expected string
	var format string
	command := &cobra.Command{
		Use:   "issuance [file]",
		Short: "Validates a credential issuance log read from file, or stdin if file is '-' or omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tar, err := issuance.NewValidator(json.DefaultCodec).Validate(text, expected)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), format, tar)
		},
	}
	command.Flags().StringVar(&expected, "expected", "", "Expected outcome, informational only")
	command.Flags().StringVar(&format, "format", formatJSON, "Output format of the report: json, yaml or table")
	return command
}

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatYAML, formatTable:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// printReport writes the report in the given format. It returns errValidationFailed if the result is FAILURE.
func printReport(writer io.Writer, format string, tar report.TAR) error {
	var err error
	switch format {
	case formatYAML:
		err = printYAML(writer, tar)
	case formatTable:
		printTable(writer, tar)
	default:
		var data []byte
		data, err = json.DefaultCodec.MarshalIndent(tar, "", "  ")
		if err == nil {
			_, err = fmt.Fprintln(writer, string(data))
		}
	}
	if err != nil {
		return fmt.Errorf("unable to print report: %w", err)
	}
	if tar.Result() == report.Failure {
		return errValidationFailed
	}
	return nil
}

func printYAML(writer io.Writer, tar report.TAR) error {
	// go through JSON, so the report keeps its wire field names
	data, err := json.DefaultCodec.Marshal(tar)
	if err != nil {
		return err
	}
	var generic interface{}
	if err = json.DefaultCodec.Unmarshal(data, &generic); err != nil {
		return err
	}
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err = encoder.Encode(generic); err != nil {
		return err
	}
	return encoder.Close()
}

func printTable(writer io.Writer, tar report.TAR) {
	summary := table.NewWriter()
	summary.SetOutputMirror(writer)
	summary.AppendRow(table.Row{"Result", tar.Result()})
	if counters := tar.Counters(); counters != nil {
		summary.AppendRow(table.Row{"Errors", counters.NrOfErrors})
		summary.AppendRow(table.Row{"Warnings", counters.NrOfWarnings})
		summary.AppendRow(table.Row{"Assertions", counters.NrOfAssertions})
	}
	summary.Render()

	items := table.NewWriter()
	items.SetOutputMirror(writer)
	items.AppendHeader(table.Row{"Item", "MIME type", "Value"})
	items.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 100}})
	for _, item := range tar.Items() {
		items.AppendRow(table.Row{item.Name, item.MimeType, strings.TrimSpace(item.Data())})
	}
	items.Render()
}
