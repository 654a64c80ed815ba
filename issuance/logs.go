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
	"time"

	"github.com/dlclark/regexp2"
)

// logLinePattern matches lines as written by the issuer: timestamp, logger, level and message.
// ECMAScript mode keeps \d, \w and \s ASCII-only, like the issuer's own pattern.
var logLinePattern = newLogLinePattern()

func newLogLinePattern() *regexp2.Regexp {
	pattern := regexp2.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3})\s+([\w\.]+)\s+(INFO|WARN|ERROR|DEBUG|TRACE)\s+(?:,\s*)?(.*)$`, regexp2.ECMAScript)
	pattern.MatchTimeout = time.Second
	return pattern
}

// Level is the log level of an issuer log line.
type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// CredentialOfferLogsTO is the log of a credential issuance as provided by the issuer.
type CredentialOfferLogsTO struct {
	Successful bool `json:"successful"`
	// Count is the total number of log lines the issuer produced, which might exceed len(Logs).
	Count int64    `json:"count"`
	Logs  []string `json:"logs"`
}

// LogEntry is a parsed issuer log line.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Logger    string `json:"logger"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	FullLog   string `json:"full_log"`
}

// LogStats holds the number of log lines per level.
type LogStats struct {
	ErrorCount int   `json:"error_count"`
	WarnCount  int   `json:"warn_count"`
	InfoCount  int   `json:"info_count"`
	TotalCount int64 `json:"total_count"`
}

// IssuerLogs is the content of the issuer's logs report item.
type IssuerLogs struct {
	Logs  []LogEntry `json:"logs"`
	Stats LogStats   `json:"log_stats"`
}

// ParseLine parses a single issuer log line. It returns false if the line doesn't have the expected format.
func ParseLine(line string) (LogEntry, bool) {
	match, err := logLinePattern.FindStringMatch(line)
	// err is only returned when matching times out, in which case the line is treated as not matching
	if err != nil || match == nil {
		return LogEntry{}, false
	}
	return LogEntry{
		Timestamp: match.GroupByNumber(1).String(),
		Logger:    match.GroupByNumber(2).String(),
		Level:     Level(match.GroupByNumber(3).String()),
		Message:   match.GroupByNumber(4).String(),
		FullLog:   line,
	}, true
}

// Summarize parses all lines of the issuance log and counts them per level.
// Lines that can't be parsed are returned separately and don't count.
func Summarize(logs CredentialOfferLogsTO) (IssuerLogs, []string) {
	result := IssuerLogs{
		Logs:  []LogEntry{},
		Stats: LogStats{TotalCount: logs.Count},
	}
	var unparsed []string
	for _, line := range logs.Logs {
		entry, ok := ParseLine(line)
		if !ok {
			unparsed = append(unparsed, line)
			continue
		}
		switch entry.Level {
		case LevelInfo:
			result.Stats.InfoCount++
		case LevelWarn:
			result.Stats.WarnCount++
		case LevelError:
			result.Stats.ErrorCount++
		}
		result.Logs = append(result.Logs, entry)
	}
	return result, unparsed
}
