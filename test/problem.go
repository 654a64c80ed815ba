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

package test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vp-conformance/testbed/json"
)

// problem is a helper struct to unmarshal an RFC 7807 problem response.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// AssertProblem asserts the response is a problem with the given status code, title and detail.
func AssertProblem(t *testing.T, response *httptest.ResponseRecorder, status int, title string, detail string) bool {
	t.Helper()
	require.Equal(t, status, response.Code)
	var prb problem
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &prb))
	return assert.Equal(t, problem{Title: title, Status: status, Detail: detail}, prb)
}
