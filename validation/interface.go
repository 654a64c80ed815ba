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
	"errors"

	"github.com/vp-conformance/testbed/authzreq"
	"github.com/vp-conformance/testbed/report"
)

// ModuleName is the name of the validation module.
const ModuleName = "Validation"

// ErrMissingInput is returned when a required validation input isn't provided.
var ErrMissingInput = errors.New("missing required input")

// ErrDisabled is returned when an operation is invoked that is disabled by configuration.
var ErrDisabled = errors.New("operation is disabled")

// Service validates logs recorded by test bed actors and builds the requests that start a presentation.
type Service interface {
	// ValidatePresentationLog validates the presentation log in text against the expected scenario (which may be empty).
	ValidatePresentationLog(ctx context.Context, text string, expectedEvent string) (report.TAR, error)
	// ValidateIssuanceLog validates the credential issuance log in text.
	ValidateIssuanceLog(ctx context.Context, text string, expected string) (report.TAR, error)
	// CreateAuthorizationRequestURI builds the URI a wallet is invoked with. If scheme is empty, the configured scheme is used.
	CreateAuthorizationRequestURI(ctx context.Context, scheme string, request authzreq.JWTSecuredAuthorizationRequest) (string, error)
	// GenerateQRCode renders data as PNG QR code. If width or height is 0, the configured size is used.
	GenerateQRCode(data string, width int, height int) ([]byte, error)
}
