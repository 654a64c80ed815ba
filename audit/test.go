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
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/vp-conformance/testbed/core"
	"go.uber.org/mock/gomock"
)

// TestActor is the actor of TestContext.
const TestActor = "test-actor"

// TestContext returns a context with audit info, for calling operations that write audit logs in tests.
func TestContext() context.Context {
	return Context(context.Background(), TestActor, "TestModule", "TestOperation")
}

// ContextWithAuditInfo matches a context.Context that carries audit info, as set by Middleware.
func ContextWithAuditInfo() gomock.Matcher {
	return contextWithAuditInfoMatcher{}
}

type contextWithAuditInfoMatcher struct{}

func (contextWithAuditInfoMatcher) Matches(x interface{}) bool {
	ctx, ok := x.(context.Context)
	return ok && InfoFromContext(ctx) != nil
}

func (contextWithAuditInfoMatcher) String() string {
	return "context carries audit info"
}

// CapturedLog holds the audit entries logged since CaptureLogs was called.
type CapturedLog struct {
	hook *test.Hook
}

// CaptureLogs captures audit entries until the test ends.
func CaptureLogs(t *testing.T) *CapturedLog {
	t.Helper()
	oldHooks := auditLogger().Hooks
	t.Cleanup(func() {
		auditLogger().ReplaceHooks(oldHooks)
	})
	hook := &test.Hook{}
	auditLogger().AddHook(hook)
	return &CapturedLog{hook: hook}
}

// Entries returns the captured entries of the given event.
func (c *CapturedLog) Entries(event string) []*logrus.Entry {
	var result []*logrus.Entry
	for _, entry := range c.hook.AllEntries() {
		if entry.Data["event"] == event {
			result = append(result, entry)
		}
	}
	return result
}

// AssertContains asserts an entry of the event was logged by the module, for the actor and with the message.
// The entry must be formatted on the "audit" level.
func (c *CapturedLog) AssertContains(t *testing.T, module string, event string, actor string, message string) {
	t.Helper()
	for _, entry := range c.Entries(event) {
		if entry.Data[core.LogFieldModule] != module || entry.Data["actor"] != actor || entry.Message != message {
			continue
		}
		formatted, err := entry.Logger.Formatter.Format(entry)
		if err != nil {
			t.Fatalf("unable to format audit entry: %v", err)
		}
		if !strings.Contains(string(formatted), "level=audit") && !strings.Contains(string(formatted), `"level":"audit"`) {
			t.Errorf("audit entry isn't logged on the audit level: %s", formatted)
		}
		return
	}
	t.Errorf("no audit entry with module=%s, event=%s, actor=%s, message=%s in:\n%s", module, event, actor, message, c.dump())
}

// AssertSubject asserts an entry of the event was logged about the subject.
func (c *CapturedLog) AssertSubject(t *testing.T, event string, subject string) {
	t.Helper()
	for _, entry := range c.Entries(event) {
		if entry.Data[core.LogFieldAuditSubject] == subject {
			return
		}
	}
	t.Errorf("no audit entry with event=%s, subject=%s in:\n%s", event, subject, c.dump())
}

func (c *CapturedLog) dump() string {
	var result strings.Builder
	for _, entry := range c.hook.AllEntries() {
		_, _ = fmt.Fprintf(&result, "  %s %v\n", entry.Message, entry.Data)
	}
	return result.String()
}
