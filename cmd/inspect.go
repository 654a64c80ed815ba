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
	"fmt"
	"io"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/presentation"
)

func createInspectCommand() *cobra.Command {
	var schemaValidation bool
	var query string
	command := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Prints the events of a presentation log, the outcome per scenario and the claims of the request object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			validator := presentation.NewValidator(json.DefaultCodec, nil, presentation.WithSchemaValidation(schemaValidation))
			events, err := validator.Parse(text)
			if err != nil {
				return err
			}
			writer := cmd.OutOrStdout()
			if query != "" {
				return printQuery(writer, text, query)
			}
			_, _ = fmt.Fprintf(writer, "Transaction: %s\n", events.TransactionID)
			printEvents(writer, events.Events)
			printScenarios(writer, events.Events)
			if warnings := presentation.ExtractWarnings(events.Events); len(warnings) > 0 {
				warningTable := table.NewWriter()
				warningTable.SetOutputMirror(writer)
				warningTable.AppendHeader(table.Row{"Warning"})
				for _, warning := range warnings {
					warningTable.AppendRow(table.Row{warning})
				}
				warningTable.Render()
			}
			if requestObject, ok := presentation.First[presentation.RequestObjectRetrieved](events.Events); ok {
				return printRequestObject(cmd, writer, requestObject)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&schemaValidation, "schema", true, "Check the log against the JSON schema of the presentation events")
	command.Flags().StringVar(&query, "query", "", "JSONPath expression (e.g. $.events[*].event) evaluated against the log; prints its result instead of the tables")
	return command
}

// printQuery prints the result of a JSONPath expression on the (valid) log as indented JSON.
func printQuery(writer io.Writer, text string, query string) error {
	var document interface{}
	if err := json.DefaultCodec.Unmarshal([]byte(text), &document); err != nil {
		return err
	}
	result, err := jsonpath.Get(query, document)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", query, err)
	}
	data, err := json.DefaultCodec.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer, string(data))
	return err
}

func printEvents(writer io.Writer, events []presentation.PresentationEvent) {
	eventTable := table.NewWriter()
	eventTable.SetOutputMirror(writer)
	eventTable.AppendHeader(table.Row{"#", "Timestamp", "Event", "Actor"})
	for i, event := range events {
		header := event.Header()
		eventTable.AppendRow(table.Row{i + 1, header.Timestamp, header.Event, header.Actor})
	}
	eventTable.Render()
}

func printScenarios(writer io.Writer, events []presentation.PresentationEvent) {
	scenarioTable := table.NewWriter()
	scenarioTable.SetOutputMirror(writer)
	scenarioTable.AppendHeader(table.Row{"Expected event", "Outcome"})
	for _, scenario := range []presentation.Scenario{presentation.ScenarioDefault, presentation.ScenarioAttestationError, presentation.ScenarioCertificateError} {
		name := string(scenario)
		if name == "" {
			name = "(none)"
		}
		outcome := presentation.EvaluateOutcome(events, scenario)
		if outcome == "" {
			outcome = "passes"
		}
		scenarioTable.AppendRow(table.Row{name, outcome})
	}
	scenarioTable.Render()
}

func printRequestObject(cmd *cobra.Command, writer io.Writer, requestObject presentation.RequestObjectRetrieved) error {
	claims, err := requestObject.RequestObjectClaims(cmd.Context())
	if err != nil {
		return err
	}
	names := make([]string, 0, len(claims))
	for name := range claims {
		names = append(names, name)
	}
	sort.Strings(names)
	claimTable := table.NewWriter()
	claimTable.SetOutputMirror(writer)
	claimTable.AppendHeader(table.Row{"Request object claim", "Value"})
	claimTable.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 100}})
	for _, name := range names {
		value, err := json.DefaultCodec.Marshal(claims[name])
		if err != nil {
			return err
		}
		claimTable.AppendRow(table.Row{name, string(value)})
	}
	claimTable.Render()
	return nil
}
