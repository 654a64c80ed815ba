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

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vp-conformance/testbed/audit"
	"github.com/vp-conformance/testbed/authzreq"
	"github.com/vp-conformance/testbed/core"
	"github.com/vp-conformance/testbed/issuance"
	"github.com/vp-conformance/testbed/json"
	"github.com/vp-conformance/testbed/presentation"
	"github.com/vp-conformance/testbed/report"
	"github.com/vp-conformance/testbed/test"
	"github.com/vp-conformance/testbed/validation"
	"go.uber.org/mock/gomock"
)

var successReport = report.New(report.Success, &report.Counters{}, report.JSONContent(presentation.LogsItemName, []byte(`{}`)))

func TestWrapper_ValidatePresentationLog(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidatePresentationLog(audit.ContextWithAuditInfo(), `{"events":[]}`, "attestation_error").Return(successReport, nil)

		response := ctx.do(http.MethodPost, "/log/validation", `{"sessionId":"s1","input":[
			{"name":"text","value":"{\"events\":[]}","embeddingMethod":"STRING"},
			{"name":"expectedEvent","value":"attestation_error"}]}`)

		assert.Equal(t, http.StatusOK, response.Code)
		var actual ValidationResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &actual))
		assert.Equal(t, report.Success, actual.Report.Result())
		_, hasLogs := actual.Report.Item(presentation.LogsItemName)
		assert.True(t, hasLogs)
	})
	t.Run("FAILURE report is not an HTTP error", func(t *testing.T) {
		ctx := newMockContext(t)
		failure := report.New(report.Failure, &report.Counters{NrOfErrors: 1})
		ctx.service.EXPECT().ValidatePresentationLog(gomock.Any(), "log", "").Return(failure, nil)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"log"}]}`)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `"result":"FAILURE"`)
	})
	t.Run("base64 embedded input", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidatePresentationLog(gomock.Any(), "log", "").Return(successReport, nil)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"bG9n","embeddingMethod":"BASE64"}]}`)

		assert.Equal(t, http.StatusOK, response.Code)
	})
	t.Run("missing text", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"expectedEvent","value":"certificate_error"}]}`)

		test.AssertProblem(t, response, http.StatusBadRequest, "ValidatePresentationLog failed", "missing required input: text")
	})
	t.Run("empty text", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":""}]}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
	t.Run("unsupported embedding", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"http://example.com","embeddingMethod":"URI"}]}`)

		test.AssertProblem(t, response, http.StatusBadRequest, "ValidatePresentationLog failed", "input text: invalid input embedding: unsupported method URI")
	})
	t.Run("invalid base64", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"!!","embeddingMethod":"BASE64"}]}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
	t.Run("malformed body", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
	t.Run("invalid presentation log", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidatePresentationLog(gomock.Any(), "{}", "").
			Return(report.TAR{}, fmt.Errorf("%w: missing events", presentation.ErrInvalidEventLog))

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"{}"}]}`)

		test.AssertProblem(t, response, http.StatusBadRequest, "ValidatePresentationLog failed", "invalid presentation log: missing events")
	})
	t.Run("other error", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidatePresentationLog(gomock.Any(), "{}", "").Return(report.TAR{}, errors.New("b00m"))

		response := ctx.do(http.MethodPost, "/log/validation", `{"input":[{"name":"text","value":"{}"}]}`)

		test.AssertProblem(t, response, http.StatusInternalServerError, "ValidatePresentationLog failed", "b00m")
	})
}

func TestWrapper_ValidateIssuanceLog(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidateIssuanceLog(audit.ContextWithAuditInfo(), "log", "success").Return(successReport, nil)

		response := ctx.do(http.MethodPost, "/log/validation/issuance", `{"input":[{"name":"text","value":"log"},{"name":"expected","value":"success"}]}`)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `"result":"SUCCESS"`)
	})
	t.Run("invalid issuance log", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().ValidateIssuanceLog(gomock.Any(), "log", "").Return(report.TAR{}, issuance.ErrInvalidIssuanceLog)

		response := ctx.do(http.MethodPost, "/log/validation/issuance", `{"input":[{"name":"text","value":"log"}]}`)

		test.AssertProblem(t, response, http.StatusBadRequest, "ValidateIssuanceLog failed", "invalid issuance log")
	})
	t.Run("missing text", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodPost, "/log/validation/issuance", `{"input":[]}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestWrapper_ModuleDefinitions(t *testing.T) {
	t.Run("presentation", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodGet, "/log/validation/definition", "")

		assert.Equal(t, http.StatusOK, response.Code)
		var actual GetModuleDefinitionResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &actual))
		assert.Equal(t, "presentation-log-validator", actual.Module.ID)
		require.Len(t, actual.Module.Inputs, 2)
		assert.Equal(t, "text", actual.Module.Inputs[0].Name)
		assert.Equal(t, "R", actual.Module.Inputs[0].Use)
		assert.Equal(t, "expectedEvent", actual.Module.Inputs[1].Name)
		assert.Equal(t, "O", actual.Module.Inputs[1].Use)
	})
	t.Run("issuance", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodGet, "/log/validation/issuance/definition", "")

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "issuance-log-validator")
	})
}

func TestWrapper_CreateAuthorizationRequestURI(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx := newMockContext(t)
		expected := authzreq.JWTSecuredAuthorizationRequest{
			ClientID:         "verifier",
			RequestURI:       "https://verifier.example.com/request",
			RequestURIMethod: authzreq.RequestURIMethodGet,
		}
		ctx.service.EXPECT().CreateAuthorizationRequestURI(audit.ContextWithAuditInfo(), "", expected).Return("openid4vp://?client_id=verifier", nil)

		response := ctx.do(http.MethodPost, "/authorization/request-uri", `{"client_id":"verifier","request_uri":"https://verifier.example.com/request","request_uri_method":"get"}`)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"uri":"openid4vp://?client_id=verifier"}`, response.Body.String())
	})
	t.Run("invalid request", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().CreateAuthorizationRequestURI(gomock.Any(), "eudi", gomock.Any()).
			Return("", fmt.Errorf("%w: client_id is required", authzreq.ErrInvalidAuthorizationRequest))

		response := ctx.do(http.MethodPost, "/authorization/request-uri", `{"scheme":"eudi"}`)

		test.AssertProblem(t, response, http.StatusBadRequest, "CreateAuthorizationRequestURI failed", "invalid authorization request: client_id is required")
	})
}

func TestWrapper_GenerateQRCode(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().GenerateQRCode("openid4vp://?client_id=verifier", 100, 0).Return([]byte("png"), nil)

		response := ctx.do(http.MethodGet, "/authorization/qr?data=openid4vp%3A%2F%2F%3Fclient_id%3Dverifier&width=100", "")

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "image/png", response.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png", response.Body.String())
	})
	t.Run("invalid size parameter", func(t *testing.T) {
		ctx := newMockContext(t)

		response := ctx.do(http.MethodGet, "/authorization/qr?data=x&height=large", "")

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
	t.Run("size rejected", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().GenerateQRCode("x", -1, 0).Return(nil, authzreq.ErrInvalidQRCodeSize)

		response := ctx.do(http.MethodGet, "/authorization/qr?data=x&width=-1", "")

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestWrapper_Routes(t *testing.T) {
	t.Run("disabled features aren't routed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		server := echo.New()
		wrapper := &Wrapper{
			Service:  validation.NewMockService(ctrl),
			Features: features{presentation: true},
		}

		wrapper.Routes(server)

		var paths []string
		for _, route := range server.Routes() {
			paths = append(paths, route.Method+" "+route.Path)
		}
		assert.ElementsMatch(t, []string{"GET /log/validation/definition", "POST /log/validation"}, paths)
	})
	t.Run("operation context", func(t *testing.T) {
		ctx := newMockContext(t)
		ctx.service.EXPECT().GenerateQRCode(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{}, nil)
		var operationID, moduleName interface{}
		var info *audit.Info
		ctx.server.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				err := next(c)
				operationID = c.Get(core.OperationIDContextKey)
				moduleName = c.Get(core.ModuleNameContextKey)
				info = audit.InfoFromContext(c.Request().Context())
				return err
			}
		})

		ctx.do(http.MethodGet, "/authorization/qr?data=x", "")

		assert.Equal(t, "GenerateQRCode", operationID)
		assert.Equal(t, validation.ModuleName, moduleName)
		require.NotNil(t, info)
		assert.Equal(t, "192.0.2.1", info.Actor)
		assert.Equal(t, validation.ModuleName+".GenerateQRCode", info.Operation)
	})
}

func TestWrapper_ResolveStatusCode(t *testing.T) {
	expected := map[error]int{
		validation.ErrMissingInput:                                     http.StatusBadRequest,
		validation.ErrDisabled:                                         http.StatusNotFound,
		presentation.ErrUnknownEventKind:                               http.StatusBadRequest,
		fmt.Errorf("wrapped: %w", presentation.ErrInvalidEventLog):     http.StatusBadRequest,
		issuance.ErrInvalidIssuanceLog:                                 http.StatusBadRequest,
		authzreq.ErrInvalidAuthorizationRequest:                        http.StatusBadRequest,
		authzreq.ErrInvalidQRCodeSize:                                  http.StatusBadRequest,
		fmt.Errorf("input text: %w: unsupported", errInvalidEmbedding): http.StatusBadRequest,
		errors.New("foo"):                                              0,
	}
	wrapper := Wrapper{}
	for err, expectedCode := range expected {
		t.Run(err.Error(), func(t *testing.T) {
			assert.Equal(t, expectedCode, wrapper.ResolveStatusCode(err))
		})
	}
}

type features struct {
	presentation  bool
	issuance      bool
	authorization bool
}

func (f features) PresentationEnabled() bool {
	return f.presentation
}

func (f features) IssuanceEnabled() bool {
	return f.issuance
}

func (f features) AuthorizationEnabled() bool {
	return f.authorization
}

type mockContext struct {
	service *validation.MockService
	server  *echo.Echo
}

func newMockContext(t *testing.T) mockContext {
	ctrl := gomock.NewController(t)
	service := validation.NewMockService(ctrl)
	server := echo.New()
	server.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	server.IPExtractor = echo.ExtractIPDirect()
	wrapper := &Wrapper{Service: service}
	wrapper.Routes(server)
	return mockContext{service: service, server: server}
}

func (m mockContext) do(method string, target string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	m.server.ServeHTTP(recorder, request)
	return recorder
}
