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
	"github.com/labstack/echo/v4"
)

// unknownActor is the actor of requests of which the client address can't be determined.
const unknownActor = "unknown"

// Middleware stores the audit info of an HTTP operation in the request context, before the operation is invoked.
// The actor is the client IP address, as seen through X-Forwarded-For if the server is configured to trust it.
// The operation is moduleName.operationID.
func Middleware(echoCtx echo.Context, moduleName, operationID string) {
	actor := echoCtx.RealIP()
	if actor == "" {
		actor = unknownActor
	}
	ctx := Context(echoCtx.Request().Context(), actor, moduleName, operationID)
	echoCtx.SetRequest(echoCtx.Request().WithContext(ctx))
}
