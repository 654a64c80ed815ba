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

package presentation

import (
	"fmt"
	"strings"

	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/report"
)

const (
	// LogsItemName is the name of the report item holding the validated log.
	LogsItemName = "Verifier's Logs"
	// ErrorItemName is the name of the report item holding the non-recoverable error.
	ErrorItemName = "Non-recoverable errors"
	// WarningsItemName is the name of the report item holding the warnings.
	WarningsItemName = "Validation warnings"
)

// BuildReport assembles the report of a validated log. An empty nonRecoverableError means the log passed.
func BuildReport(codec json.Codec, events PresentationEventsTO, warnings []string, nonRecoverableError string) (report.TAR, error) {
	logs, err := events.Serialize(codec)
	if err != nil {
		return report.TAR{}, fmt.Errorf("unable to serialize presentation log: %w", err)
	}
	items := []report.AnyContent{report.JSONContent(LogsItemName, logs)}
	result := report.Success
	counters := report.Counters{NrOfWarnings: len(warnings)}
	if nonRecoverableError != "" {
		diagnostic, err := codec.Marshal(nonRecoverableError)
		if err != nil {
			return report.TAR{}, err
		}
		items = append(items, report.JSONContent(ErrorItemName, diagnostic))
		result = report.Failure
		counters.NrOfErrors = 1
	}
	if len(warnings) > 0 {
		items = append(items, report.TextContent(WarningsItemName, strings.Join(warnings, "\n")))
	}
	return report.New(result, &counters, items...), nil
}
