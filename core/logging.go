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

package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldSessionID is the log field key for the test session that requested a validation.
	LogFieldSessionID = "sessionID"
	// LogFieldTransactionID is the log field key for the ID of the presentation transaction under validation.
	LogFieldTransactionID = "transactionID"
	// LogFieldScenario is the log field key for the expected scenario a presentation log is validated against.
	LogFieldScenario = "scenario"
	// LogFieldResult is the log field key for the result (SUCCESS/FAILURE) of a validation.
	LogFieldResult = "result"
	// LogFieldWarningCount is the log field key for the number of distinct warnings found during a validation.
	LogFieldWarningCount = "warnings"
	// LogFieldEventKind is the log field key for the kind of a presentation event.
	LogFieldEventKind = "eventKind"

	// LogFieldAuditSubject is the log field of the subject (e.g. transaction ID) of an audit event.
	LogFieldAuditSubject = "subject"
)
