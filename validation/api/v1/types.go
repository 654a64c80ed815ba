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

package v1

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vp-conformance/testbed/report"
	"github.com/vp-conformance/testbed/validation"
)

const (
	// InputText is the name of the input holding the log to validate.
	InputText = "text"
	// InputExpectedEvent is the name of the input holding the expected presentation scenario.
	InputExpectedEvent = "expectedEvent"
	// InputExpected is the name of the (informational) input holding the expected issuance outcome.
	InputExpected = "expected"
)

const (
	embeddingString = "STRING"
	embeddingBase64 = "BASE64"
)

var errInvalidEmbedding = errors.New("invalid input embedding")

// Input is a named validation input, as sent by the test bed.
type Input struct {
	Name            string `json:"name"`
	Value           string `json:"value"`
	EmbeddingMethod string `json:"embeddingMethod,omitempty"`
}

// ValidateRequest is the body of a validation call.
type ValidateRequest struct {
	SessionID string  `json:"sessionId,omitempty"`
	Input     []Input `json:"input"`
}

// ValidationResponse is the result of a validation call.
type ValidationResponse struct {
	Report report.TAR `json:"report"`
}

// Required returns the value of the named input. It fails if the input is absent or empty.
func (r ValidateRequest) Required(name string) (string, error) {
	value, err := r.Optional(name)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s", validation.ErrMissingInput, name)
	}
	return value, nil
}

// Optional returns the value of the named input, or an empty string if it is absent.
func (r ValidateRequest) Optional(name string) (string, error) {
	for _, input := range r.Input {
		if input.Name != name {
			continue
		}
		switch input.EmbeddingMethod {
		case "", embeddingString:
			return input.Value, nil
		case embeddingBase64:
			data, err := base64.StdEncoding.DecodeString(input.Value)
			if err != nil {
				return "", fmt.Errorf("input %s: %w: %w", name, errInvalidEmbedding, err)
			}
			return string(data), nil
		default:
			return "", fmt.Errorf("input %s: %w: unsupported method %s", name, errInvalidEmbedding, input.EmbeddingMethod)
		}
	}
	return "", nil
}

// InputDefinition describes an input of a validation module.
type InputDefinition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Use         string `json:"use"`
	Description string `json:"description"`
}

// ModuleDefinition describes a validation module and its inputs.
type ModuleDefinition struct {
	ID        string            `json:"id"`
	Operation string            `json:"operation"`
	Inputs    []InputDefinition `json:"inputs"`
}

// GetModuleDefinitionResponse is the response of a module definition call.
type GetModuleDefinitionResponse struct {
	Module ModuleDefinition `json:"module"`
}

var presentationModuleDefinition = ModuleDefinition{
	ID:        "presentation-log-validator",
	Operation: "V",
	Inputs: []InputDefinition{
		{Name: InputText, Type: "string", Use: "R", Description: "The presentation log of the verifier, as JSON."},
		{Name: InputExpectedEvent, Type: "string", Use: "O", Description: "The expected scenario: attestation_error, certificate_error or empty."},
	},
}

var issuanceModuleDefinition = ModuleDefinition{
	ID:        "issuance-log-validator",
	Operation: "V",
	Inputs: []InputDefinition{
		{Name: InputText, Type: "string", Use: "R", Description: "The credential issuance log of the issuer, as JSON."},
		{Name: InputExpected, Type: "string", Use: "O", Description: "The expected outcome. Informational only."},
	},
}

// AuthorizationRequest is the body of a request to build an authorization request URI.
type AuthorizationRequest struct {
	// Scheme is optional, the configured scheme is used if empty.
	Scheme           string `json:"scheme,omitempty"`
	ClientID         string `json:"client_id"`
	Request          string `json:"request,omitempty"`
	RequestURI       string `json:"request_uri,omitempty"`
	RequestURIMethod string `json:"request_uri_method,omitempty"`
}

// AuthorizationRequestURIResponse holds the built authorization request URI.
type AuthorizationRequestURIResponse struct {
	URI string `json:"uri"`
}
