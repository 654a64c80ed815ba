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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewStatusEngine_Routes(t *testing.T) {
	system := NewSystem()
	system.RegisterEngine(NewStatusEngine(system))
	system.RegisterEngine(NewMetricsEngine())
	system.RegisterEngine(&TestEngine{})
	e := echo.New()
	system.Routes(e)

	get := func(path string) (int, string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		body, _ := io.ReadAll(rec.Result().Body)
		return rec.Code, string(body)
	}

	t.Run("status", func(t *testing.T) {
		code, body := get("/status")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "OK", body)
	})
	t.Run("diagnostics overview renders text output of diagnostics", func(t *testing.T) {
		code, body := get("/status/diagnostics")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Status\n\tRegistered engines: Status,Metrics,testengine\n\tVersion: "+Version()+"\ntestengine\n\ttest: ok", body)
	})
}
