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

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"schneider.vip/problem"
)

// StatusCodeResolverContextKey is the key of the Echo context parameter holding the ErrorStatusCodeResolver of the operation.
const StatusCodeResolverContextKey = "!!StatusCodeResolver"

// OperationIDContextKey is the key of the Echo context parameter holding the name of the operation being called.
const OperationIDContextKey = "!!OperationId"

// ModuleNameContextKey is the key of the Echo context parameter holding the module the called operation belongs to.
const ModuleNameContextKey = "!!ModuleName"

// CreateHTTPErrorHandler returns an Echo HTTPErrorHandler that logs the error and writes it as problem (RFC 7807).
func CreateHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		title := "Operation failed"
		if operationID := ctx.Get(OperationIDContextKey); operationID != nil {
			title = fmt.Sprintf("%s failed", operationID)
		}
		statusCode := httpStatusCode(err, ctx)
		detail := err.Error()
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			// e.g. binding or routing errors, of which the message is meant for the client
			detail = fmt.Sprintf("%v", echoErr.Message)
		}

		logger := requestLogger(ctx).WithError(err)
		if statusCode >= http.StatusInternalServerError {
			logger.Error(title)
		} else {
			logger.Warn(title)
		}
		if ctx.Response().Committed {
			logger.Warn("Unable to send error back to client, response already committed")
			return
		}
		result := problem.New(problem.Title(title), problem.Status(statusCode), problem.Detail(detail))
		if _, writeErr := result.WriteTo(ctx.Response()); writeErr != nil {
			logger.WithError(writeErr).Error("Unable to write problem response")
		}
	}
}

// httpStatusCode resolves the status code of an error returned by an operation. In order of precedence:
// the status code carried by the error, the status code given by the operation's resolver, 500 Internal Server Error.
func httpStatusCode(err error, ctx echo.Context) int {
	var statusErr HTTPStatusCodeError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode()
	}
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code
	}
	if resolver, ok := ctx.Get(StatusCodeResolverContextKey).(ErrorStatusCodeResolver); ok {
		if code := resolver.ResolveStatusCode(err); code != 0 {
			return code
		}
	}
	return http.StatusInternalServerError
}

func requestLogger(ctx echo.Context) *logrus.Entry {
	fields := logrus.Fields{
		"requestURI": ctx.Request().RequestURI,
	}
	if moduleName := ctx.Get(ModuleNameContextKey); moduleName != nil {
		fields[LogFieldModule] = moduleName
	}
	if operationID := ctx.Get(OperationIDContextKey); operationID != nil {
		fields["operation"] = operationID
	}
	return logrus.StandardLogger().WithFields(fields)
}
