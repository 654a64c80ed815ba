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

package audit

import (
	"bytes"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vp-conformance/testbed/core"
)

const (
	// PresentationLogValidatedEvent is emitted when a presentation log was validated.
	PresentationLogValidatedEvent = "PresentationLogValidated"
	// IssuanceLogValidatedEvent is emitted when an issuance log was validated.
	IssuanceLogValidatedEvent = "IssuanceLogValidated"
	// InvalidInputEvent is emitted when a validation was requested with input that couldn't be parsed.
	InvalidInputEvent = "InvalidInput"
	// AuthorizationRequestCreatedEvent is emitted when an authorization request URI was created.
	AuthorizationRequestCreatedEvent = "AuthorizationRequestCreated"
)

// Info contains contextual information for audit logs.
type Info struct {
	// Actor is the calling party, e.g. the IP address of the test bed invoking the validation.
	Actor string
	// Operation is the module and operation that was invoked, e.g. Validation.ValidatePresentationLog.
	Operation string
}

type auditContextKey struct{}

// Context returns a new context with audit information, derived from the given context.
func Context(ctx context.Context, actor, module, operation string) context.Context {
	return context.WithValue(ctx, auditContextKey{}, Info{
		Actor:     actor,
		Operation: module + "." + operation,
	})
}

// InfoFromContext returns the audit information from the given context, or nil if it isn't present.
func InfoFromContext(ctx context.Context) *Info {
	info, ok := ctx.Value(auditContextKey{}).(Info)
	if !ok {
		return nil
	}
	return &info
}

// Log returns an entry on the audit logger, with the fields of the given entry and the audit info from the context.
// It panics when the context carries no audit info or the event name is empty: that's a programming error.
func Log(ctx context.Context, logger *logrus.Entry, eventName string) *logrus.Entry {
	info := InfoFromContext(ctx)
	if info == nil || info.Actor == "" {
		panic("audit: no actor in context")
	}
	if eventName == "" {
		panic("audit: no event name")
	}
	return auditLogger().
		WithFields(logger.Data).
		WithField("log", "audit").
		WithField("actor", info.Actor).
		WithField("operation", info.Operation).
		WithField("event", eventName)
}

var auditLoggerInstance *logrus.Logger
var initAuditLoggerOnce = &sync.Once{}

// auditLogger returns a logger that writes to the same output as the standard logger, but on the "audit" level.
func auditLogger() *logrus.Logger {
	initAuditLoggerOnce.Do(func() {
		auditLoggerInstance = logrus.New()
		auditLoggerInstance.SetLevel(logrus.InfoLevel)
		auditLoggerInstance.SetOutput(logrus.StandardLogger().Out)
		auditLoggerInstance.SetFormatter(&auditFormatter{})
	})
	return auditLoggerInstance
}

// auditFormatter formats entries like the standard logger does, with "audit" as level.
type auditFormatter struct{}

func (a auditFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data, err := logrus.StandardLogger().Formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	data = bytes.Replace(data, []byte("level="+entry.Level.String()), []byte("level=audit"), 1)
	data = bytes.Replace(data, []byte(`"level":"`+entry.Level.String()+`"`), []byte(`"level":"audit"`), 1)
	return data, nil
}

// WithSubject adds what was acted upon (e.g. the transaction ID of a presentation log) to an audit entry.
func WithSubject(entry *logrus.Entry, subject string) *logrus.Entry {
	return entry.WithField(core.LogFieldAuditSubject, subject)
}
