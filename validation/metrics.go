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

package validation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vp-conformance/testbed/core"
)

const (
	presentationValidator = "presentation"
	issuanceValidator     = "issuance"
)

type validationMetrics struct {
	validations *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	inputErrors *prometheus.CounterVec
}

func newValidationMetrics() (*validationMetrics, error) {
	validations, err := core.RegisterCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: core.MetricsNamespace,
		Name:      "validations_total",
		Help:      "Number of validations performed, per validator and result.",
	}, []string{"validator", "result"}))
	if err != nil {
		return nil, err
	}
	warnings, err := core.RegisterCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: core.MetricsNamespace,
		Name:      "validation_warnings_total",
		Help:      "Number of distinct warnings reported by validations, per validator.",
	}, []string{"validator"}))
	if err != nil {
		return nil, err
	}
	inputErrors, err := core.RegisterCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: core.MetricsNamespace,
		Name:      "validation_input_errors_total",
		Help:      "Number of validation requests rejected because of invalid input, per validator.",
	}, []string{"validator"}))
	if err != nil {
		return nil, err
	}
	return &validationMetrics{
		validations: validations,
		warnings:    warnings,
		inputErrors: inputErrors,
	}, nil
}
