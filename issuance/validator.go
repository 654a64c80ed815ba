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

package issuance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/issuance/log"
	"github.com/vp-conformance/testbed/report"
)

// LogsItemName is the name of the report item holding the issuer's logs.
const LogsItemName = "Issuer's Logs"

// ErrInvalidIssuanceLog is returned when an issuance log can't be parsed.
var ErrInvalidIssuanceLog = errors.New("invalid issuance log")

// Validator validates credential issuance logs. It is safe for concurrent use.
type Validator struct {
	codec json.Codec
}

// NewValidator creates a Validator using the given codec.
func NewValidator(codec json.Codec) *Validator {
	return &Validator{codec: codec}
}

// Validate reports on the issuance log in text. The result follows the issuer's own verdict;
// expected is informational only.
func (v *Validator) Validate(text string, expected string) (report.TAR, error) {
	if strings.TrimSpace(text) == "" {
		return report.TAR{}, fmt.Errorf("%w: empty input", ErrInvalidIssuanceLog)
	}
	if expected != "" {
		log.Logger().Debugf("Expected issuance outcome: %s", expected)
	}
	var logs CredentialOfferLogsTO
	if err := v.codec.Unmarshal([]byte(text), &logs); err != nil {
		return report.TAR{}, fmt.Errorf("%w: %w", ErrInvalidIssuanceLog, err)
	}
	summary, unparsed := Summarize(logs)
	for _, line := range unparsed {
		log.Logger().Warnf("Issuer log line doesn't have the expected format (timestamp, logger, level): %s", line)
	}
	data, err := v.codec.Marshal(summary)
	if err != nil {
		return report.TAR{}, fmt.Errorf("unable to serialize issuer's logs: %w", err)
	}
	result := report.Failure
	if logs.Successful {
		result = report.Success
	}
	return report.New(result, &report.Counters{}, report.JSONContent(LogsItemName, data)), nil
}
