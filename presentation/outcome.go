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

// Scenario selects the rule a presentation log is judged by.
type Scenario string

const (
	// ScenarioDefault expects the verifier to receive exactly what the wallet posted.
	ScenarioDefault Scenario = ""
	// ScenarioAttestationError expects an attestation status check to fail.
	ScenarioAttestationError Scenario = "attestation_error"
	// ScenarioCertificateError expects the wallet to fail posting its response.
	ScenarioCertificateError Scenario = "certificate_error"
)

// Known returns whether the scenario has a dedicated rule. Unknown scenarios are judged by the default rule.
func (s Scenario) Known() bool {
	switch s {
	case ScenarioDefault, ScenarioAttestationError, ScenarioCertificateError:
		return true
	default:
		return false
	}
}

const (
	// AttestationErrorDiagnostic is the non-recoverable error when the attestation_error scenario isn't met.
	AttestationErrorDiagnostic = "Attestation step should fail to post response but did anyways or/and other error occurred (ex: Presentation Timeout)"
	// CertificateErrorDiagnostic is the non-recoverable error when the certificate_error scenario isn't met.
	CertificateErrorDiagnostic = "Wallet should fail to post response but did anyways or/and other error occurred (ex: Presentation Timeout)"
	// ResponseMismatchDiagnostic is the non-recoverable error when the default scenario isn't met.
	ResponseMismatchDiagnostic = "Wallet query and verifier query do not match"
)

// EvaluateOutcome applies the rule of the scenario to the log and returns the non-recoverable error,
// or an empty string if the log meets the expectation. Only the first event of each kind is considered.
func EvaluateOutcome(events []PresentationEvent, scenario Scenario) string {
	switch scenario {
	case ScenarioAttestationError:
		if _, ok := First[AttestationStatusCheckFailed](events); !ok {
			return AttestationErrorDiagnostic
		}
	case ScenarioCertificateError:
		if _, ok := First[WalletFailedToPostResponse](events); !ok {
			return CertificateErrorDiagnostic
		}
	default:
		received, ok := First[VerifierGotWalletResponse](events)
		if !ok {
			return ResponseMismatchDiagnostic
		}
		posted, ok := First[WalletResponsePosted](events)
		if !ok || !received.WalletResponse.Equal(posted.WalletResponse) {
			return ResponseMismatchDiagnostic
		}
	}
	return ""
}
