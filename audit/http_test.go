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
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	server := echo.New()
	t.Run("direct", func(t *testing.T) {
		server.IPExtractor = echo.ExtractIPDirect()
		req := &http.Request{RemoteAddr: "1.2.3.4:1234", Header: http.Header{}}
		ctx := server.NewContext(req, nil)

		Middleware(ctx, "mod", "op")

		actual := InfoFromContext(ctx.Request().Context())
		require.NotNil(t, actual)
		assert.Equal(t, "mod.op", actual.Operation)
		assert.Equal(t, "1.2.3.4", actual.Actor)
	})
	t.Run("behind proxy", func(t *testing.T) {
		server.IPExtractor = echo.ExtractIPFromXFFHeader()
		req := &http.Request{RemoteAddr: "127.0.0.1:1234", Header: http.Header{}}
		req.Header.Set(echo.HeaderXForwardedFor, "5.6.7.8")
		ctx := server.NewContext(req, nil)

		Middleware(ctx, "mod", "op")

		actual := InfoFromContext(ctx.Request().Context())
		require.NotNil(t, actual)
		assert.Equal(t, "5.6.7.8", actual.Actor)
	})
	t.Run("unknown client address", func(t *testing.T) {
		server.IPExtractor = echo.ExtractIPDirect()
		req := &http.Request{Header: http.Header{}}
		ctx := server.NewContext(req, nil)

		Middleware(ctx, "mod", "op")

		actual := InfoFromContext(ctx.Request().Context())
		require.NotNil(t, actual)
		assert.Equal(t, "unknown", actual.Actor)
	})
}
