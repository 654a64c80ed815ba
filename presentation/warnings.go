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

// PresentationExpiredWarning is the warning text for an expired presentation.
const PresentationExpiredWarning = "Presentation expired"

// ExtractWarnings returns the distinct warnings found in the log, in order of first occurrence.
// An empty cause is a warning of its own; only an absent attestation failure cause produces none.
func ExtractWarnings(events []PresentationEvent) []string {
	var result []string
	seen := make(map[string]struct{})
	for _, event := range events {
		warning, ok := warningOf(event)
		if !ok {
			continue
		}
		if _, ok := seen[warning]; ok {
			continue
		}
		seen[warning] = struct{}{}
		result = append(result, warning)
	}
	return result
}

func warningOf(event PresentationEvent) (string, bool) {
	switch e := event.(type) {
	case FailedToRetrieveRequestObject:
		return e.Cause, true
	case FailedToRetrievePresentationDefinition:
		return e.Cause, true
	case WalletFailedToPostResponse:
		return e.Cause, true
	case VerifierFailedToGetWalletResponse:
		return e.Cause, true
	case AttestationStatusCheckFailed:
		if e.Cause == nil {
			return "", false
		}
		return *e.Cause, true
	case PresentationExpired:
		return PresentationExpiredWarning, true
	default:
		return "", false
	}
}
