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
	"context"
	"fmt"

	"github.com/vp-conformance/testbed/audit"
	"github.com/vp-conformance/testbed/authzreq"
	"github.com/vp-conformance/testbed/core"
	"github.com/vp-conformance/testbed/issuance"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/presentation"
	"github.com/vp-conformance/testbed/report"
	"github.com/vp-conformance/testbed/validation/log"
)

var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)
var _ core.ViewableDiagnostics = (*Module)(nil)
var _ Service = (*Module)(nil)

// NewModule creates a new validation module using the given codec.
func NewModule(codec json.Codec) *Module {
	return &Module{
		config: DefaultConfig(),
		codec:  codec,
	}
}

// Module exposes the presentation and issuance log validators and the authorization request builder.
type Module struct {
	config                Config
	codec                 json.Codec
	presentationValidator *presentation.Validator
	issuanceValidator     *issuance.Validator
	metrics               *validationMetrics
}

// Name returns the name of the module.
func (m *Module) Name() string {
	return ModuleName
}

// Config returns a pointer to the module's config.
func (m *Module) Config() interface{} {
	return &m.config
}

// Configure creates the validators and registers the metrics.
func (m *Module) Configure(_ core.ServerConfig) error {
	if m.config.Authorization.Enabled {
		if m.config.Authorization.Scheme == "" {
			return fmt.Errorf("%s: authorization.scheme must be set", ModuleName)
		}
		if m.config.Authorization.QR.Size <= 0 {
			return fmt.Errorf("%s: authorization.qr.size must be positive", ModuleName)
		}
	}
	var err error
	m.metrics, err = newValidationMetrics()
	if err != nil {
		return fmt.Errorf("%s: unable to register metrics: %w", ModuleName, err)
	}
	m.presentationValidator = presentation.NewValidator(m.codec, m.recordPresentationOutcome,
		presentation.WithSchemaValidation(m.config.SchemaValidation))
	m.issuanceValidator = issuance.NewValidator(m.codec)
	return nil
}

// Diagnostics returns which operations are enabled.
func (m *Module) Diagnostics() []core.DiagnosticResult {
	return []core.DiagnosticResult{
		&core.GenericDiagnosticResult{Title: "presentation_validation_enabled", Outcome: m.config.Presentation.Enabled},
		&core.GenericDiagnosticResult{Title: "issuance_validation_enabled", Outcome: m.config.Issuance.Enabled},
		&core.GenericDiagnosticResult{Title: "authorization_enabled", Outcome: m.config.Authorization.Enabled},
		&core.GenericDiagnosticResult{Title: "schema_validation_enabled", Outcome: m.config.SchemaValidation},
	}
}

// PresentationEnabled returns whether presentation log validation is enabled.
func (m *Module) PresentationEnabled() bool {
	return m.config.Presentation.Enabled
}

// IssuanceEnabled returns whether issuance log validation is enabled.
func (m *Module) IssuanceEnabled() bool {
	return m.config.Issuance.Enabled
}

// AuthorizationEnabled returns whether authorization requests can be built.
func (m *Module) AuthorizationEnabled() bool {
	return m.config.Authorization.Enabled
}

// ValidatePresentationLog validates a verifier's presentation log against the expected event and audits the call.
func (m *Module) ValidatePresentationLog(ctx context.Context, text string, expectedEvent string) (report.TAR, error) {
	if !m.config.Presentation.Enabled {
		return report.TAR{}, ErrDisabled
	}
	tar, outcome, err := m.presentationValidator.Evaluate(text, expectedEvent)
	if err != nil {
		m.metrics.inputErrors.WithLabelValues(presentationValidator).Inc()
		audit.Log(ctx, log.Logger(), audit.InvalidInputEvent).
			WithError(err).
			Info("Rejected presentation log")
		return report.TAR{}, err
	}
	audit.WithSubject(audit.Log(ctx, log.Logger(), audit.PresentationLogValidatedEvent), outcome.TransactionID).
		WithField(core.LogFieldResult, tar.Result()).
		Info("Validated presentation log")
	return tar, nil
}

// ValidateIssuanceLog validates an issuer's credential offer log and audits the call.
func (m *Module) ValidateIssuanceLog(ctx context.Context, text string, expected string) (report.TAR, error) {
	if !m.config.Issuance.Enabled {
		return report.TAR{}, ErrDisabled
	}
	tar, err := m.issuanceValidator.Validate(text, expected)
	if err != nil {
		m.metrics.inputErrors.WithLabelValues(issuanceValidator).Inc()
		audit.Log(ctx, log.Logger(), audit.InvalidInputEvent).
			WithError(err).
			Info("Rejected issuance log")
		return report.TAR{}, err
	}
	m.metrics.validations.WithLabelValues(issuanceValidator, string(tar.Result())).Inc()
	audit.Log(ctx, log.Logger(), audit.IssuanceLogValidatedEvent).
		WithField(core.LogFieldResult, tar.Result()).
		Info("Validated issuance log")
	return tar, nil
}

// CreateAuthorizationRequestURI builds the URI a wallet is invoked with, using the configured scheme if none is given.
func (m *Module) CreateAuthorizationRequestURI(ctx context.Context, scheme string, request authzreq.JWTSecuredAuthorizationRequest) (string, error) {
	if !m.config.Authorization.Enabled {
		return "", ErrDisabled
	}
	if scheme == "" {
		scheme = m.config.Authorization.Scheme
	}
	uri, err := authzreq.CreateAuthorizationRequestURI(scheme, request)
	if err != nil {
		return "", err
	}
	audit.WithSubject(audit.Log(ctx, log.Logger(), audit.AuthorizationRequestCreatedEvent), request.ClientID).
		Info("Created authorization request URI")
	return uri, nil
}

// GenerateQRCode renders data as PNG QR code. A width or height of 0 means the configured size.
func (m *Module) GenerateQRCode(data string, width int, height int) ([]byte, error) {
	if !m.config.Authorization.Enabled {
		return nil, ErrDisabled
	}
	if width == 0 {
		width = m.config.Authorization.QR.Size
	}
	if height == 0 {
		height = m.config.Authorization.QR.Size
	}
	return authzreq.GenerateQRCode(data, width, height)
}

func (m *Module) recordPresentationOutcome(outcome presentation.Outcome) {
	m.metrics.validations.WithLabelValues(presentationValidator, string(outcome.Result)).Inc()
	m.metrics.warnings.WithLabelValues(presentationValidator).Add(float64(len(outcome.Warnings)))
	presentation.LogOutcome(outcome)
}
