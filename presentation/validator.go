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

	"github.com/sirupsen/logrus"
	"github.com/vp-conformance/testbed/core"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/presentation/log"
	"github.com/vp-conformance/testbed/report"
)

// Outcome is the result of validating one presentation log.
type Outcome struct {
	TransactionID       string
	Scenario            Scenario
	Result              report.ResultType
	NonRecoverableError string
	Warnings            []string
}

// DiagnosticFunc is called with the outcome of every validation. It must be safe for concurrent use.
type DiagnosticFunc func(outcome Outcome)

// ValidatorOption configures a Validator.
type ValidatorOption func(v *Validator)

// WithSchemaValidation enables or disables checking logs against EventsSchema before decoding them.
func WithSchemaValidation(enabled bool) ValidatorOption {
	return func(v *Validator) {
		v.schemaValidation = enabled
	}
}

// Validator validates presentation logs. It holds no mutable state and is safe for concurrent use.
type Validator struct {
	codec            json.Codec
	diagnostic       DiagnosticFunc
	schemaValidation bool
}

// NewValidator creates a Validator. The diagnostic callback is optional.
func NewValidator(codec json.Codec, diagnostic DiagnosticFunc, opts ...ValidatorOption) *Validator {
	result := &Validator{
		codec:            codec,
		diagnostic:       diagnostic,
		schemaValidation: true,
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Validate judges the presentation log in text against the expected scenario.
// An error is only returned for input that isn't a valid presentation log; a log that doesn't meet
// the expectation results in a report with result FAILURE.
func (v *Validator) Validate(text string, expectedEvent string) (report.TAR, error) {
	tar, _, err := v.Evaluate(text, expectedEvent)
	return tar, err
}

// Evaluate is like Validate, but also returns the outcome the report was built from.
func (v *Validator) Evaluate(text string, expectedEvent string) (report.TAR, *Outcome, error) {
	events, err := v.Parse(text)
	if err != nil {
		return report.TAR{}, nil, err
	}
	scenario := Scenario(expectedEvent)
	if !scenario.Known() {
		log.Logger().
			WithField(core.LogFieldScenario, expectedEvent).
			Warn("Unknown expected event, applying default rule")
	}
	warnings := ExtractWarnings(events.Events)
	nonRecoverableError := EvaluateOutcome(events.Events, scenario)
	tar, err := BuildReport(v.codec, *events, warnings, nonRecoverableError)
	if err != nil {
		return report.TAR{}, nil, err
	}
	outcome := Outcome{
		TransactionID:       events.TransactionID,
		Scenario:            scenario,
		Result:              tar.Result(),
		NonRecoverableError: nonRecoverableError,
		Warnings:            warnings,
	}
	if v.diagnostic != nil {
		v.diagnostic(outcome)
	}
	return tar, &outcome, nil
}

// Parse checks and decodes the presentation log in text.
func (v *Validator) Parse(text string) (*PresentationEventsTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidEventLog)
	}
	data := []byte(text)
	if v.schemaValidation {
		if err := ValidateSchema(data); err != nil {
			return nil, err
		}
	}
	return ParseEvents(v.codec, data)
}

// LogOutcome is a DiagnosticFunc that logs the outcome.
func LogOutcome(outcome Outcome) {
	entry := log.Logger().WithFields(logrus.Fields{
		core.LogFieldTransactionID: outcome.TransactionID,
		core.LogFieldScenario:      outcome.Scenario,
		core.LogFieldResult:        outcome.Result,
		core.LogFieldWarningCount:  len(outcome.Warnings),
	})
	if outcome.NonRecoverableError != "" {
		entry.Infof("Presentation log failed validation: %s", outcome.NonRecoverableError)
		return
	}
	entry.Debug("Presentation log passed validation")
}
